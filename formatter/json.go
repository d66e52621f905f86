package formatter

import (
	"encoding/json"
	"sort"

	"github.com/speleotech/surveyd/survey"
)

type responseBuilder struct{}

func newResponseBuilder() *responseBuilder { return &responseBuilder{} }

// NewResponseBuilder creates a new response builder for formatting reduction responses
func NewResponseBuilder() *responseBuilder {
	return newResponseBuilder()
}

// BuildJSON serializes a reduction response to JSON
func (rb *responseBuilder) BuildJSON(res *ReduceResponse) []byte {
	b, _ := json.Marshal(res)
	return b
}

// StationOut is one positioned station on the wire.
type StationOut struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
}

// ReduceResponse is the complete wire shape of a reduction.
type ReduceResponse struct {
	Origin   survey.Origin `json:"origin"`
	Stations []StationOut  `json:"stations"`
	Edges    []survey.Edge `json:"edges"`
	Meta     survey.Meta   `json:"meta"`
}

// BuildReduceResponse wraps a reduction result, sorting stations by name.
func BuildReduceResponse(origin survey.Origin, res *survey.Result) *ReduceResponse {
	stations := make([]StationOut, 0, len(res.Stations))
	for name, p := range res.Stations {
		stations = append(stations, StationOut{Name: name, X: p.X, Y: p.Y, Z: p.Z})
	}
	sort.Slice(stations, func(i, j int) bool { return stations[i].Name < stations[j].Name })

	return &ReduceResponse{
		Origin:   origin,
		Stations: stations,
		Edges:    res.Edges,
		Meta:     res.Meta,
	}
}

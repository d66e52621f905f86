package formatter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/speleotech/surveyd/survey"
)

func sampleResult() *survey.Result {
	return &survey.Result{
		Stations: map[string]survey.Point3{
			"S2": {X: 10, Y: 10, Z: 0},
			"S0": {X: 0, Y: 0, Z: 0},
			"S1": {X: 0, Y: 10, Z: 0},
		},
		Edges: []survey.Edge{{From: "S0", To: "S1"}, {From: "S1", To: "S2"}},
		Meta: survey.Meta{
			NumStations:          3,
			NumShots:             2,
			Residuals:            []survey.Residual{},
			DisconnectedStations: []string{},
		},
	}
}

func TestBuildReduceResponse_SortsStations(t *testing.T) {
	origin := survey.Origin{Station: "S0"}
	resp := BuildReduceResponse(origin, sampleResult())

	if len(resp.Stations) != 3 {
		t.Fatalf("stations = %d, want 3", len(resp.Stations))
	}
	for i, want := range []string{"S0", "S1", "S2"} {
		if resp.Stations[i].Name != want {
			t.Errorf("stations[%d] = %q, want %q", i, resp.Stations[i].Name, want)
		}
	}
}

func TestBuildJSON_WireNames(t *testing.T) {
	origin := survey.Origin{Station: "S0"}
	buf := NewResponseBuilder().BuildJSON(BuildReduceResponse(origin, sampleResult()))

	var decoded map[string]any
	if err := json.Unmarshal(buf, &decoded); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	for _, key := range []string{"origin", "stations", "edges", "meta"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("response missing %q", key)
		}
	}
	s := string(buf)
	for _, field := range []string{"num_stations", "num_shots", "total_slope_distance", "total_horizontal_distance", "bbox", "residuals", "disconnected_stations"} {
		if !strings.Contains(s, field) {
			t.Errorf("meta missing wire field %q", field)
		}
	}
	// Empty lists serialize as [], never null.
	if strings.Contains(s, `"residuals":null`) || strings.Contains(s, `"disconnected_stations":null`) {
		t.Errorf("empty lists must serialize as []: %s", s)
	}
}

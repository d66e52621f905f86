package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/speleotech/surveyd/survey"
)

// shotsDocument is the on-disk input for oneshot mode: an optional origin
// plus the ordered shot list.
type shotsDocument struct {
	OriginStation string        `json:"origin_station"`
	OriginX       float64       `json:"origin_x"`
	OriginY       float64       `json:"origin_y"`
	OriginZ       float64       `json:"origin_z"`
	Section       string        `json:"section"`
	Shots         []survey.Shot `json:"shots"`
}

// loadShots reads a shots document from a local JSON file.
func loadShots(path string) (*shotsDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var doc shotsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(doc.Shots) == 0 {
		return nil, fmt.Errorf("%s contains no shots", path)
	}
	return &doc, nil
}

// origin resolves the anchor, defaulting to the first shot's from-station
// when the document names none.
func (d *shotsDocument) origin(flagStation string, x, y, z float64) survey.Origin {
	station := flagStation
	if station == "" {
		station = d.OriginStation
	}
	if station == "" && len(d.Shots) > 0 {
		station = d.Shots[0].FromStation
	}
	if x == 0 && y == 0 && z == 0 {
		x, y, z = d.OriginX, d.OriginY, d.OriginZ
	}
	return survey.Origin{Station: station, X: x, Y: y, Z: z}
}

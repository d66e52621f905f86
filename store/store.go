// Package store persists reduced surveys to sqlite.
//
// Each saved survey keeps a summary row (counts, totals, bounding box) for
// cheap listing plus the full reduction document as JSON.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/speleotech/surveyd/survey"
)

type Store struct {
	*sql.DB
}

// Open opens (creating if needed) the survey database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS surveys (
			survey_id TEXT PRIMARY KEY,
			section TEXT,
			origin_station TEXT,
			num_stations INTEGER,
			num_shots INTEGER,
			total_slope_distance DOUBLE,
			total_horizontal_distance DOUBLE,
			min_x DOUBLE, max_x DOUBLE,
			min_y DOUBLE, max_y DOUBLE,
			min_z DOUBLE, max_z DOUBLE,
			document TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db}, nil
}

// Summary is one row of the survey listing.
type Summary struct {
	ID                      string      `json:"id"`
	Section                 string      `json:"section"`
	OriginStation           string      `json:"origin_station"`
	NumStations             int         `json:"num_stations"`
	NumShots                int         `json:"num_shots"`
	TotalSlopeDistance      float64     `json:"total_slope_distance"`
	TotalHorizontalDistance float64     `json:"total_horizontal_distance"`
	BBox                    survey.BBox `json:"bbox"`
	CreatedAt               time.Time   `json:"created_at"`
}

// SaveSurvey stores a reduction result under a fresh id and returns it.
// The document argument is the full wire response; it is stored verbatim.
func (s *Store) SaveSurvey(section string, origin survey.Origin, res *survey.Result, document []byte) (string, error) {
	id := uuid.NewString()
	m := res.Meta
	_, err := s.Exec(`
		INSERT INTO surveys (
			survey_id, section, origin_station,
			num_stations, num_shots,
			total_slope_distance, total_horizontal_distance,
			min_x, max_x, min_y, max_y, min_z, max_z,
			document, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, section, origin.Station,
		m.NumStations, m.NumShots,
		m.TotalSlopeDistance, m.TotalHorizontalDistance,
		m.BBox.MinX, m.BBox.MaxX, m.BBox.MinY, m.BBox.MaxY, m.BBox.MinZ, m.BBox.MaxZ,
		string(document), time.Now().UTC(),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListSurveys returns summaries, newest first.
func (s *Store) ListSurveys(limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.Query(`
		SELECT survey_id, section, origin_station,
		       num_stations, num_shots,
		       total_slope_distance, total_horizontal_distance,
		       min_x, max_x, min_y, max_y, min_z, max_z,
		       created_at
		FROM surveys ORDER BY created_at DESC, survey_id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sm Summary
		if err := rows.Scan(
			&sm.ID, &sm.Section, &sm.OriginStation,
			&sm.NumStations, &sm.NumShots,
			&sm.TotalSlopeDistance, &sm.TotalHorizontalDistance,
			&sm.BBox.MinX, &sm.BBox.MaxX, &sm.BBox.MinY, &sm.BBox.MaxY, &sm.BBox.MinZ, &sm.BBox.MaxZ,
			&sm.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, sm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSurvey returns the stored wire document for a saved survey.
func (s *Store) GetSurvey(id string) (json.RawMessage, error) {
	var doc string
	err := s.QueryRow(`SELECT document FROM surveys WHERE survey_id = ?`, id).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("survey %s: not found", id)
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(doc), nil
}

package store

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/speleotech/surveyd/survey"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "surveyd.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func sampleResult() *survey.Result {
	return &survey.Result{
		Stations: map[string]survey.Point3{
			"S0": {X: 0, Y: 0, Z: 0},
			"S1": {X: 0, Y: 10, Z: 0},
		},
		Edges: []survey.Edge{{From: "S0", To: "S1"}},
		Meta: survey.Meta{
			NumStations:             2,
			NumShots:                1,
			TotalSlopeDistance:      10,
			TotalHorizontalDistance: 10,
			BBox:                    survey.BBox{MaxY: 10},
			Residuals:               []survey.Residual{},
			DisconnectedStations:    []string{},
		},
	}
}

func TestStore_SaveAndList(t *testing.T) {
	st := openTestStore(t)
	origin := survey.Origin{Station: "S0"}
	doc, err := json.Marshal(sampleResult())
	require.NoError(t, err)

	id, err := st.SaveSurvey("north passage", origin, sampleResult(), doc)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	surveys, err := st.ListSurveys(10)
	require.NoError(t, err)
	require.Len(t, surveys, 1)

	got := surveys[0]
	require.Equal(t, id, got.ID)
	require.Equal(t, "north passage", got.Section)
	require.Equal(t, "S0", got.OriginStation)
	require.Equal(t, 2, got.NumStations)
	require.Equal(t, 1, got.NumShots)
	require.InDelta(t, 10.0, got.TotalSlopeDistance, 1e-9)
	require.InDelta(t, 10.0, got.BBox.MaxY, 1e-9)
	require.False(t, got.CreatedAt.IsZero())
}

func TestStore_GetSurveyRoundTrip(t *testing.T) {
	st := openTestStore(t)
	origin := survey.Origin{Station: "S0"}
	doc, err := json.Marshal(sampleResult())
	require.NoError(t, err)

	id, err := st.SaveSurvey("default", origin, sampleResult(), doc)
	require.NoError(t, err)

	raw, err := st.GetSurvey(id)
	require.NoError(t, err)

	var decoded survey.Result
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, sampleResult().Stations, decoded.Stations)
}

func TestStore_GetSurveyNotFound(t *testing.T) {
	st := openTestStore(t)
	_, err := st.GetSurvey("no-such-id")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestStore_ListLimit(t *testing.T) {
	st := openTestStore(t)
	origin := survey.Origin{Station: "S0"}
	for range 5 {
		_, err := st.SaveSurvey("default", origin, sampleResult(), []byte(`{}`))
		require.NoError(t, err)
	}
	surveys, err := st.ListSurveys(3)
	require.NoError(t, err)
	require.Len(t, surveys, 3)
}

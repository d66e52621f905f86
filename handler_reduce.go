package surveyd

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/speleotech/surveyd/config"
	"github.com/speleotech/surveyd/formatter"
	"github.com/speleotech/surveyd/reducer"
	"github.com/speleotech/surveyd/render"
	"github.com/speleotech/surveyd/store"
	"github.com/speleotech/surveyd/survey"
)

// traverseRequest is the wire shape of a reduction request. OriginStation is
// optional; when absent the first shot's from-station anchors the survey.
type traverseRequest struct {
	OriginStation string        `json:"origin_station"`
	OriginX       float64       `json:"origin_x"`
	OriginY       float64       `json:"origin_y"`
	OriginZ       float64       `json:"origin_z"`
	Shots         []survey.Shot `json:"shots"`
	Section       string        `json:"section"`
}

func (t *traverseRequest) origin() survey.Origin {
	station := t.OriginStation
	if station == "" && len(t.Shots) > 0 {
		station = t.Shots[0].FromStation
	}
	return survey.Origin{Station: station, X: t.OriginX, Y: t.OriginY, Z: t.OriginZ}
}

func decodeTraverse(w http.ResponseWriter, r *http.Request) (*traverseRequest, bool) {
	var req traverseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input data", err.Error())
		return nil, false
	}
	if len(req.Shots) == 0 {
		writeError(w, http.StatusBadRequest, "Invalid input data", "at least one shot is required")
		return nil, false
	}
	return &req, true
}

func reduceOptions() reducer.Options {
	return reducer.Options{OriginMode: reducer.OriginMode(config.Config.Reduce.OriginMode)}
}

// runReduce normalizes azimuth/inclination at the boundary and runs the
// reduction. The reducer itself never re-normalizes.
func runReduce(req *traverseRequest) (survey.Origin, *survey.Result, error) {
	origin := req.origin()
	shots := survey.NormalizeShots(req.Shots)
	res, err := reducer.Reduce(shots, origin, reduceOptions())
	return origin, res, err
}

func handleReduce(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeTraverse(w, r)
	if !ok {
		return
	}
	origin, res, err := runReduce(req)
	if err != nil {
		writeReduceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(formatter.NewResponseBuilder().BuildJSON(formatter.BuildReduceResponse(origin, res)))
}

func handlePlanView(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeTraverse(w, r)
	if !ok {
		return
	}
	_, res, err := runReduce(req)
	if err != nil {
		writeReduceError(w, err)
		return
	}
	page, err := render.PlanView(res)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error", err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

type saveResponse struct {
	Saved    bool        `json:"saved"`
	SurveyID string      `json:"survey_id,omitempty"`
	Meta     survey.Meta `json:"meta"`
	Error    string      `json:"error,omitempty"`
}

func handleSaveSurvey(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeTraverse(w, r)
	if !ok {
		return
	}
	origin, res, err := runReduce(req)
	if err != nil {
		writeReduceError(w, err)
		return
	}
	section := req.Section
	if section == "" {
		section = "default"
	}
	doc := formatter.NewResponseBuilder().BuildJSON(formatter.BuildReduceResponse(origin, res))
	id, err := db.SaveSurvey(section, origin, res, doc)
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		log.Printf("save survey failed: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(saveResponse{Saved: false, Meta: res.Meta, Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(saveResponse{Saved: true, SurveyID: id, Meta: res.Meta})
}

func handleListSurveys(w http.ResponseWriter, r *http.Request) {
	surveys, err := db.ListSurveys(100)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error", err.Error())
		return
	}
	if surveys == nil {
		surveys = []store.Summary{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"surveys": surveys})
}

func handleGetSurvey(w http.ResponseWriter, r *http.Request) {
	doc, err := db.GetSurvey(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Survey not found", err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(doc)
}

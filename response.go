package surveyd

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/speleotech/surveyd/reducer"
	"github.com/speleotech/surveyd/survey"
)

type errorPayload struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func writeError(w http.ResponseWriter, code int, msg, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorPayload{Error: msg, Detail: detail})
}

// writeReduceError maps reduction failures onto HTTP statuses: boundary
// validation and a strict-mode missing origin are client errors, anything
// else is a 500.
func writeReduceError(w http.ResponseWriter, err error) {
	var invalid *survey.InvalidShotError
	if errors.As(err, &invalid) {
		writeError(w, http.StatusBadRequest, "Invalid input data", invalid.Error())
		return
	}
	var noOrigin *reducer.OriginNotFoundError
	if errors.As(err, &noOrigin) {
		writeError(w, http.StatusBadRequest, "Origin not found", noOrigin.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, "Internal server error", err.Error())
}

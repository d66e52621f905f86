package surveyd

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status            string `json:"status"`
	DatabaseConnected bool   `json:"database_connected"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{Status: "ok"}
	if db != nil && db.Ping() == nil {
		resp.DatabaseConnected = true
	}
	_ = json.NewEncoder(w).Encode(resp)
}

package handler

import (
	"encoding/json"
	"net/http"
)

// response is the uniform JSON envelope for every API endpoint. The
// frontend form handler keys off success and shows message verbatim.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func respond(w http.ResponseWriter, status int, success bool, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(response{Success: success, Message: message})
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Health handles GET /api/health.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:  "ok",
		Message: "Yasodha PG API",
	})
}

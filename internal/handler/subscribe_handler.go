package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/DanushArun/Yasodha-pg-website/internal/model"
	"github.com/DanushArun/Yasodha-pg-website/internal/service"
)

// SubscribeHandler handles newsletter email signups.
type SubscribeHandler struct {
	subscriptionService service.SubscriptionService
}

// NewSubscribeHandler creates a SubscribeHandler with the given service.
func NewSubscribeHandler(subscriptionService service.SubscriptionService) *SubscribeHandler {
	return &SubscribeHandler{subscriptionService: subscriptionService}
}

// subscribeRequest is the expected JSON body for POST /subscribe_email.
type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe handles POST /subscribe_email. Submitting an email that is
// already stored answers success without writing a second row.
func (h *SubscribeHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, false, "No data received.")
		return
	}

	email, verr := model.ValidateEmail(req.Email)
	if verr != nil {
		respond(w, http.StatusBadRequest, false, verr.Error())
		return
	}

	already, err := h.subscriptionService.Subscribe(r.Context(), email)
	if err != nil {
		slog.Error("subscription failed", "error", err)
		respond(w, http.StatusInternalServerError, false, "Failed to save subscription. Please try again.")
		return
	}

	if already {
		respond(w, http.StatusOK, true, "You're already subscribed!")
		return
	}
	respond(w, http.StatusOK, true, "Successfully subscribed! We'll keep you updated.")
}

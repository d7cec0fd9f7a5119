package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/DanushArun/Yasodha-pg-website/internal/model"
	"github.com/DanushArun/Yasodha-pg-website/internal/service"
)

// InquiryHandler handles the booking inquiry form.
type InquiryHandler struct {
	inquiryService service.InquiryService
	validateOpts   model.ValidateOptions
}

// NewInquiryHandler creates an InquiryHandler with the given service and
// deployment validation settings.
func NewInquiryHandler(inquiryService service.InquiryService, opts model.ValidateOptions) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService, validateOpts: opts}
}

// Submit handles POST /submit_booking.
// name, email and message are required; phone and visitDate are optional.
// Validation failures are client errors and get the field-specific
// message; storage failures get the uniform server-error message.
func (h *InquiryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in model.InquiryInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond(w, http.StatusBadRequest, false, "No data received.")
		return
	}

	inq, verr := model.ValidateInquiry(in, h.validateOpts)
	if verr != nil {
		respond(w, http.StatusBadRequest, false, verr.Error())
		return
	}

	if err := h.inquiryService.Submit(r.Context(), inq); err != nil {
		slog.Error("inquiry submit failed", "error", err)
		respond(w, http.StatusInternalServerError, false, "Failed to save inquiry. Please try again.")
		return
	}

	respond(w, http.StatusOK, true, "Inquiry received successfully!")
}

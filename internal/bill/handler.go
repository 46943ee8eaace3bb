package bill

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/discountsplit/internal/allocation"
	"github.com/fkhayef/discountsplit/pkg/response"
)

// Handler handles HTTP requests for bill calculations
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler creates a new bill handler
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, logger: logger}
}

// Routes returns the router for calculation endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Calculate)
	r.Post("/summary", h.Summary)
	r.Post("/share", h.Share)

	return r
}

// Calculate handles POST /calculations
// @Summary      Split a discounted bill
// @Description  Allocate the post-discount total among participants in proportion to their prices, rounded to the step
// @Tags         calculations
// @Accept       json
// @Produce      json
// @Param        request body CalculateRequest true "Bill to split"
// @Success      200 {object} response.APIResponse{data=CalculationResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /calculations [post]
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	req, ok := decode(w, r)
	if !ok {
		return
	}

	calc, err := h.service.Calculate(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, calc.ToResponse())
}

// Summary handles POST /calculations/summary
// @Summary      Render a bill summary
// @Description  Split the bill and return a plain-text summary for copying or sharing
// @Tags         calculations
// @Accept       json
// @Produce      plain
// @Param        request body CalculateRequest true "Bill to split"
// @Success      200 {string} string
// @Failure      400 {object} response.APIResponse
// @Router       /calculations/summary [post]
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	req, ok := decode(w, r)
	if !ok {
		return
	}

	calc, err := h.service.Calculate(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.Text(w, http.StatusOK, h.service.Summary(calc))
}

// Share handles POST /calculations/share
// @Summary      Prepare a bill for sharing
// @Description  Split the bill and return the summary with WhatsApp and Telegram deep links
// @Tags         calculations
// @Accept       json
// @Produce      json
// @Param        request body CalculateRequest true "Bill to split"
// @Success      200 {object} response.APIResponse{data=ShareResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /calculations/share [post]
func (h *Handler) Share(w http.ResponseWriter, r *http.Request) {
	req, ok := decode(w, r)
	if !ok {
		return
	}

	shared, err := h.service.Share(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, shared.ToResponse())
}

func decode(w http.ResponseWriter, r *http.Request) (*CalculateRequest, bool) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return nil, false
	}
	return &req, true
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, allocation.ErrInvalidInput) {
		response.InvalidInput(w, err.Error())
		return
	}
	h.logger.ErrorContext(r.Context(), "calculation failed", "error", err)
	response.InternalError(w, "Failed to calculate bill")
}

package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/campuskit/examsched-backend/internal/model"
	"github.com/campuskit/examsched-backend/internal/response"
	"github.com/campuskit/examsched-backend/internal/seating"
	"github.com/campuskit/examsched-backend/internal/service"
	"github.com/campuskit/examsched-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type SeatingHandler struct {
	seatingService *service.SeatingService
	log            zerolog.Logger
}

func NewSeatingHandler(seatingService *service.SeatingService, log zerolog.Logger) *SeatingHandler {
	return &SeatingHandler{
		seatingService: seatingService,
		log:            log.With().Str("component", "seating_handler").Logger(),
	}
}

// parseDateParam reads the :date path segment as YYYY-MM-DD.
func parseDateParam(c *gin.Context) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidDate)
		return time.Time{}, false
	}
	return date, true
}

// Generate godoc
// POST /api/v1/admin/seating/:date/generate
// Builds the seating plan for one exam date, replacing any existing plan.
func (h *SeatingHandler) Generate(c *gin.Context) {
	date, ok := parseDateParam(c)
	if !ok {
		return
	}

	result, err := h.seatingService.Generate(c.Request.Context(), date)
	switch {
	case errors.Is(err, service.ErrNoSchedule):
		response.Fail(c, http.StatusNotFound, response.ErrNoSchedule)
	case errors.Is(err, service.ErrNoExamsOnDate):
		response.FailWithDetail(c, http.StatusNotFound, response.ErrNotFound, "no exams scheduled on this date")
	case errors.Is(err, seating.ErrNoEnrollments):
		response.Fail(c, http.StatusUnprocessableEntity, response.ErrNoEnrollments)
	case err != nil:
		h.log.Error().Err(err).Msg("Seating generation failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	default:
		response.Success(c, http.StatusCreated, result)
	}
}

// Get godoc
// GET /api/v1/admin/seating/:date
func (h *SeatingHandler) Get(c *gin.Context) {
	date, ok := parseDateParam(c)
	if !ok {
		return
	}

	result, err := h.seatingService.Get(c.Request.Context(), date)
	if errors.Is(err, service.ErrNoSeating) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Swap godoc
// POST /api/v1/admin/seating/:date/swap
// Exchanges the occupants of two seats, possibly across venues.
func (h *SeatingHandler) Swap(c *gin.Context) {
	date, ok := parseDateParam(c)
	if !ok {
		return
	}

	var req model.SwapSeatsRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.seatingService.Swap(c.Request.Context(), date, &req)
	switch {
	case errors.Is(err, service.ErrNoSeating):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, service.ErrInvalidSwap):
		response.FailWithDetail(c, http.StatusUnprocessableEntity, response.ErrInvalidSwap, err.Error())
	case err != nil:
		h.log.Error().Err(err).Msg("Seat swap failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	default:
		response.Success(c, http.StatusOK, result)
	}
}

// Delete godoc
// DELETE /api/v1/admin/seating/:date
func (h *SeatingHandler) Delete(c *gin.Context) {
	date, ok := parseDateParam(c)
	if !ok {
		return
	}

	if err := h.seatingService.DeletePlan(c.Request.Context(), date); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "seating plan deleted successfully"})
}

package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/campuskit/examsched-backend/internal/middleware"
	"github.com/campuskit/examsched-backend/internal/model"
	"github.com/campuskit/examsched-backend/internal/response"
	"github.com/campuskit/examsched-backend/internal/service"
	"github.com/campuskit/examsched-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type ScheduleHandler struct {
	scheduleService *service.ScheduleService
	log             zerolog.Logger
}

func NewScheduleHandler(scheduleService *service.ScheduleService, log zerolog.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
		log:             log.With().Str("component", "schedule_handler").Logger(),
	}
}

// CreateRun godoc
// POST /api/v1/admin/schedule/runs
// Queues a date assignment run over the requested exam window.
func (h *ScheduleHandler) CreateRun(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
		return
	}

	var req model.CreateScheduleRunRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	windowStart, err := time.Parse("2006-01-02", req.WindowStart)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidDate)
		return
	}
	windowEnd, err := time.Parse("2006-01-02", req.WindowEnd)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidDate)
		return
	}
	if windowEnd.Before(windowStart) {
		response.FailWithDetail(c, http.StatusBadRequest, response.ErrValidation, "window_end must not precede window_start")
		return
	}

	run, err := h.scheduleService.EnqueueRun(c.Request.Context(), claims.AdminID, windowStart, windowEnd)
	if errors.Is(err, service.ErrRunAlreadyActive) {
		response.Fail(c, http.StatusConflict, response.ErrRunInProgress)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Enqueue schedule run failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusAccepted, gin.H{"run": run})
}

// GetRun godoc
// GET /api/v1/admin/schedule/runs/:run_id
func (h *ScheduleHandler) GetRun(c *gin.Context) {
	runID, err := uuid.Parse(c.Param("run_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	run, err := h.scheduleService.GetRun(c.Request.Context(), runID)
	if errors.Is(err, pgx.ErrNoRows) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"run": run})
}

// GetCurrent godoc
// GET /api/v1/schedule
// Public: the latest published exam calendar.
func (h *ScheduleHandler) GetCurrent(c *gin.Context) {
	items, err := h.scheduleService.GetCurrentSchedule(c.Request.Context())
	if errors.Is(err, service.ErrNoSchedule) {
		response.Fail(c, http.StatusNotFound, response.ErrNoSchedule)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Get current schedule failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if items == nil {
		items = []model.ScheduleItem{}
	}

	response.Success(c, http.StatusOK, gin.H{"schedule": items})
}

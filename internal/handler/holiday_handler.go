package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/campuskit/examsched-backend/internal/model"
	"github.com/campuskit/examsched-backend/internal/response"
	"github.com/campuskit/examsched-backend/internal/service"
	"github.com/campuskit/examsched-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

type HolidayHandler struct {
	holidayService *service.HolidayService
}

func NewHolidayHandler(holidayService *service.HolidayService) *HolidayHandler {
	return &HolidayHandler{holidayService: holidayService}
}

// GetAll godoc
// GET /api/v1/admin/holidays
func (h *HolidayHandler) GetAll(c *gin.Context) {
	holidays, err := h.holidayService.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if holidays == nil {
		holidays = []model.Holiday{}
	}

	response.Success(c, http.StatusOK, gin.H{"holidays": holidays})
}

// Create godoc
// POST /api/v1/admin/holidays
func (h *HolidayHandler) Create(c *gin.Context) {
	var req model.CreateHolidayRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidDate)
		return
	}

	holiday := &model.Holiday{Date: date, Name: req.Name}
	if err := h.holidayService.Create(c.Request.Context(), holiday); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"holiday": holiday})
}

// Delete godoc
// DELETE /api/v1/admin/holidays/:id
func (h *HolidayHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.holidayService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "holiday deleted successfully"})
}

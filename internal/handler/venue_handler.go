package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/campuskit/examsched-backend/internal/model"
	"github.com/campuskit/examsched-backend/internal/response"
	"github.com/campuskit/examsched-backend/internal/service"
	"github.com/campuskit/examsched-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type VenueHandler struct {
	venueService *service.VenueService
}

func NewVenueHandler(venueService *service.VenueService) *VenueHandler {
	return &VenueHandler{venueService: venueService}
}

// GetAll godoc
// GET /api/v1/admin/venues
func (h *VenueHandler) GetAll(c *gin.Context) {
	venues, err := h.venueService.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if venues == nil {
		venues = []model.Venue{}
	}

	response.Success(c, http.StatusOK, gin.H{"venues": venues})
}

// GetByID godoc
// GET /api/v1/admin/venues/:id
func (h *VenueHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	venue, err := h.venueService.GetByID(c.Request.Context(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"venue": venue})
}

// Create godoc
// POST /api/v1/admin/venues
func (h *VenueHandler) Create(c *gin.Context) {
	var req model.CreateVenueRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	venue := &model.Venue{
		Name:       req.Name,
		Department: req.Department,
		Rows:       req.Rows,
		Cols:       req.Cols,
	}
	if err := h.venueService.Create(c.Request.Context(), venue); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"venue": venue})
}

// Update godoc
// PUT /api/v1/admin/venues/:id
func (h *VenueHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateVenueRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	venue := &model.Venue{
		ID:         id,
		Name:       req.Name,
		Department: req.Department,
		Rows:       req.Rows,
		Cols:       req.Cols,
	}
	if err := h.venueService.Update(c.Request.Context(), venue); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "venue updated successfully"})
}

// Delete godoc
// DELETE /api/v1/admin/venues/:id
func (h *VenueHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.venueService.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "venue deleted successfully"})
}

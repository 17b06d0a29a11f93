package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/myrp-alexandre/ubsvoce/internal/core/domain"
	"github.com/myrp-alexandre/ubsvoce/internal/core/port"
	"github.com/myrp-alexandre/ubsvoce/internal/core/service"
)

type UnitHandler struct {
	search  *service.SearchService
	geocode *service.GeocodeService
	store   port.UnitStore
}

func NewUnitHandler(search *service.SearchService, geocode *service.GeocodeService, store port.UnitStore) *UnitHandler {
	return &UnitHandler{
		search:  search,
		geocode: geocode,
		store:   store,
	}
}

type SearchUnitsRequest struct {
	Lat     *float64 `form:"lat" binding:"omitempty,latitude"`
	Lng     *float64 `form:"lng" binding:"omitempty,longitude"`
	Address string   `form:"address"`
	Radius  *float64 `form:"radius" binding:"required"`
	Page    *int     `form:"page"`
	PerPage *int     `form:"per_page"`
}

type unitResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	Phone          string  `json:"phone,omitempty"`
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
	DistanceMeters float64 `json:"distance_meters"`
}

// SearchUnits serves GET /units/near. The center comes either from lat+lng
// or from a geocoded address; radius is meters.
func (h *UnitHandler) SearchUnits(c *gin.Context) {
	var req SearchUnitsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var center domain.Point
	switch {
	case req.Address != "":
		resolved, err := h.geocode.Resolve(c.Request.Context(), req.Address)
		if err != nil {
			if errors.Is(err, domain.ErrAddressNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "address could not be resolved"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "geocoding failed"})
			return
		}
		center = resolved
	case req.Lat != nil && req.Lng != nil:
		center = domain.Point{Lat: *req.Lat, Lng: *req.Lng}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "either address or lat and lng are required"})
		return
	}

	units, err := h.search.SearchNear(c.Request.Context(), service.SearchParams{
		Center:       center,
		RadiusMeters: *req.Radius,
		Page:         req.Page,
		PerPage:      req.PerPage,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRadius), errors.Is(err, domain.ErrInvalidPaging):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrNoSuchPage):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		}
		return
	}

	results := make([]unitResponse, len(units))
	for i, u := range units {
		results[i] = unitResponse{
			ID:             u.ID.String(),
			Name:           u.Name,
			Address:        u.Address,
			Phone:          u.Phone,
			Lat:            u.Location.Lat,
			Lng:            u.Location.Lng,
			DistanceMeters: u.Distance,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"center":        center,
		"radius_meters": *req.Radius,
		"count":         len(results),
		"units":         results,
	})
}

func (h *UnitHandler) GetUnit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid unit id"})
		return
	}

	u, err := h.store.GetUnit(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUnitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch unit"})
		return
	}

	c.JSON(http.StatusOK, unitResponse{
		ID:      u.ID.String(),
		Name:    u.Name,
		Address: u.Address,
		Phone:   u.Phone,
		Lat:     u.Location.Lat,
		Lng:     u.Location.Lng,
	})
}

type CreateUnitRequest struct {
	Name    string   `json:"name" binding:"required"`
	Address string   `json:"address" binding:"required"`
	Phone   string   `json:"phone"`
	Lat     *float64 `json:"lat" binding:"required,latitude"`
	Lng     *float64 `json:"lng" binding:"required,longitude"`
}

func (h *UnitHandler) CreateUnit(c *gin.Context) {
	var req CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := h.store.CreateUnit(c.Request.Context(), port.CreateUnitParams{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		Location: domain.Point{Lat: *req.Lat, Lng: *req.Lng},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create unit"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         u.ID,
		"created_at": u.CreatedAt,
		"status":     "success",
	})
}

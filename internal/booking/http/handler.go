package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ferrovale/workspace-booking-backend/internal/auth"
	"github.com/ferrovale/workspace-booking-backend/internal/booking"
	"github.com/ferrovale/workspace-booking-backend/internal/pkg/request"
	"github.com/ferrovale/workspace-booking-backend/internal/pkg/response"
	"github.com/ferrovale/workspace-booking-backend/internal/schedule"
	"github.com/ferrovale/workspace-booking-backend/internal/user"
)

type Handler struct {
	service     booking.Service
	userService user.Service
}

func NewHandler(service booking.Service, userService user.Service) *Handler {
	return &Handler{service: service, userService: userService}
}

// isSysAdmin looks up the caller's admin flag. Lookup failure degrades to a
// plain user, never an error.
func (h *Handler) isSysAdmin(c *gin.Context) bool {
	u, err := h.userService.GetByID(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		return false
	}
	return u.IsSystemAdmin
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	svcReq, err := req.Parse(auth.GetUserID(c), time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, conflicts, err := h.service.Create(c.Request.Context(), svcReq)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewMutationResponse(b, conflicts))
}

func (h *Handler) GetByID(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) List(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	filter := booking.Filter{
		ResourceID: req.ResourceID,
		CreatedBy:  req.CreatedBy,
		Status:     req.Status,
		Search:     req.Search,
		SortBy:     req.SortBy,
		SortOrder:  req.SortOrder,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}

	// Plain users only see their own bookings regardless of the filter.
	if !h.isSysAdmin(c) {
		filter.CreatedBy = auth.GetUserID(c)
	}

	if req.DateFrom != "" {
		d, err := schedule.ParseDateStamp(req.DateFrom)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_from"})
			return
		}
		filter.DateFrom = &d
	}
	if req.DateTo != "" {
		d, err := schedule.ParseDateStamp(req.DateTo)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_to"})
			return
		}
		filter.DateTo = &d
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	svcReq, err := req.Parse(time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, conflicts, err := h.service.Update(c.Request.Context(), uri.ID, svcReq, auth.GetUserID(c), h.isSysAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewMutationResponse(b, conflicts))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID, auth.GetUserID(c), h.isSysAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Calendar(c *gin.Context) {
	var req CalendarRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	today := schedule.DateOf(time.Now().UTC())
	cells, err := h.service.Calendar(c.Request.Context(), req.Year, time.Month(req.Month), today)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewCalendarResponse(req.Year, time.Month(req.Month), cells))
}

func (h *Handler) Availability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	d, err := schedule.ParseDateStamp(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	free, err := h.service.Availability(c.Request.Context(), req.ResourceID, d)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"resource_id": req.ResourceID,
		"date":        req.Date,
		"free":        NewIntervalResponses(free),
	})
}

func (h *Handler) Utilization(c *gin.Context) {
	var req UtilizationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	d, err := schedule.ParseDateStamp(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	pct, capacity, err := h.service.Utilization(c.Request.Context(), req.ResourceID, d, req.CapacityHours)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, UtilizationResponse{
		ResourceID:    req.ResourceID,
		Date:          req.Date,
		CapacityHours: capacity,
		Percentage:    pct,
	})
}

func (h *Handler) Stats(c *gin.Context) {
	var req CalendarRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), req.Year, time.Month(req.Month))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewStatsResponse(stats))
}

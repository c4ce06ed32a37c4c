package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ferrovale/workspace-booking-backend/internal/pkg/request"
	"github.com/ferrovale/workspace-booking-backend/internal/pkg/response"
	"github.com/ferrovale/workspace-booking-backend/internal/registry"
)

type Handler struct {
	service registry.Service
}

func NewHandler(service registry.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	m, err := h.service.Create(c.Request.Context(), registry.CreateRequest{
		Name:        req.Name,
		Version:     req.Version,
		Category:    req.Category,
		Status:      registry.Status(req.Status),
		OwnerTeam:   req.OwnerTeam,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewModuleResponse(m))
}

func (h *Handler) GetByID(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid module id"})
		return
	}

	m, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewModuleResponse(m))
}

func (h *Handler) List(c *gin.Context) {
	var req ListModulesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	modules, err := h.service.List(c.Request.Context(), registry.Filter{
		Category:  req.Category,
		Status:    req.Status,
		Search:    req.Search,
		SortBy:    req.SortBy,
		Ascending: req.SortOrder != "desc",
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ModuleResponse, len(modules))
	for i := range modules {
		items[i] = NewModuleResponse(&modules[i])
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid module id"})
		return
	}

	var req UpdateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	svcReq := registry.UpdateRequest{
		Name:        req.Name,
		Version:     req.Version,
		Category:    req.Category,
		OwnerTeam:   req.OwnerTeam,
		Description: req.Description,
	}
	if req.Status != nil {
		st := registry.Status(*req.Status)
		svcReq.Status = &st
	}

	m, err := h.service.Update(c.Request.Context(), uri.ID, svcReq)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewModuleResponse(m))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid module id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

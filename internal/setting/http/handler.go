package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ferrovale/workspace-booking-backend/internal/auth"
	"github.com/ferrovale/workspace-booking-backend/internal/pkg/response"
	"github.com/ferrovale/workspace-booking-backend/internal/setting"
)

type Handler struct {
	service setting.Service
}

func NewHandler(service setting.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Put(c *gin.Context) {
	var uri SettingURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid setting path"})
		return
	}

	var req PutSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	doc, err := h.service.Put(c.Request.Context(), uri.Namespace, uri.Key, req.Value, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSettingResponse(doc))
}

func (h *Handler) Get(c *gin.Context) {
	var uri SettingURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid setting path"})
		return
	}

	doc, err := h.service.Get(c.Request.Context(), uri.Namespace, uri.Key)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSettingResponse(doc))
}

func (h *Handler) ListNamespace(c *gin.Context) {
	var uri NamespaceURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid namespace"})
		return
	}

	docs, err := h.service.ListNamespace(c.Request.Context(), uri.Namespace)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]SettingResponse, len(docs))
	for i := range docs {
		items[i] = NewSettingResponse(&docs[i])
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

func (h *Handler) Delete(c *gin.Context) {
	var uri SettingURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid setting path"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.Namespace, uri.Key); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ferrovale/workspace-booking-backend/internal/auth"
	"github.com/ferrovale/workspace-booking-backend/internal/file"
	"github.com/ferrovale/workspace-booking-backend/internal/pkg/request"
	"github.com/ferrovale/workspace-booking-backend/internal/pkg/response"
	"github.com/ferrovale/workspace-booking-backend/internal/resource"
)

type Handler struct {
	service    file.Service
	resService resource.Service
}

func NewHandler(service file.Service, resService resource.Service) *Handler {
	return &Handler{service: service, resService: resService}
}

// Upload stores an image. When resource_id is supplied the image also
// becomes that resource's photo.
func (h *Handler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}

	f, err := h.service.Upload(c.Request.Context(), header, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	if resourceID := c.PostForm("resource_id"); resourceID != "" {
		if err := h.resService.SetPhoto(c.Request.Context(), resourceID, &f.ID); err != nil {
			// Roll back the orphan upload before reporting the failure.
			_ = h.service.Delete(c.Request.Context(), f.ID)
			response.Error(c, err)
			return
		}
	}

	c.JSON(http.StatusCreated, NewFileResponse(f))
}

func (h *Handler) Download(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file id"})
		return
	}

	stream, f, err := h.service.Download(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Disposition", `inline; filename="`+f.Filename+`"`)
	c.DataFromReader(http.StatusOK, f.Size, f.ContentType, stream, nil)
}

func (h *Handler) Thumbnail(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file id"})
		return
	}

	stream, _, err := h.service.DownloadThumbnail(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	// Thumbnails are always JPEG; size is unknown without a stat call.
	c.DataFromReader(http.StatusOK, -1, "image/jpeg", stream, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

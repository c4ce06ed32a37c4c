package http

import (
	"time"

	"github.com/ferrovale/workspace-booking-backend/internal/file"
)

type FileResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	ContentType  string `json:"content_type"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	CreatedAt    string `json:"created_at"`
}

func NewFileResponse(f *file.File) FileResponse {
	resp := FileResponse{
		ID:          f.ID,
		Filename:    f.Filename,
		ContentType: f.ContentType,
		Size:        f.Size,
		URL:         file.URL(f.ID),
		CreatedAt:   f.CreatedAt.Format(time.RFC3339),
	}
	if f.ThumbnailPath != nil {
		resp.ThumbnailURL = file.ThumbnailURL(f.ID)
	}
	return resp
}

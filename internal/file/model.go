package file

import (
	"net/http"
	"time"

	"github.com/ferrovale/workspace-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "file not found")
	ErrNoThumbnail        = apperror.New(http.StatusNotFound, "thumbnail not available for this file")
	ErrUnsupportedContent = apperror.New(http.StatusBadRequest, "unsupported content type")
	ErrTooLarge           = apperror.New(http.StatusRequestEntityTooLarge, "file exceeds the upload size limit")
)

// MaxUploadBytes caps uploads; resource photos do not need more.
const MaxUploadBytes = 10 << 20

// File is an uploaded blob's metadata. Storage paths stay internal; callers
// address files by ID through the download endpoints.
type File struct {
	ID            string
	UserID        string
	Filename      string
	StoragePath   string
	ThumbnailPath *string
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// URL returns the public download path for a file ID.
func URL(id string) string {
	return "/v1/files/" + id
}

// ThumbnailURL returns the public thumbnail path for a file ID.
func ThumbnailURL(id string) string {
	return "/v1/files/" + id + "/thumbnail"
}

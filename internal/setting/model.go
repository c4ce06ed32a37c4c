package setting

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ferrovale/workspace-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "setting not found")
	ErrEmptyKey     = apperror.New(http.StatusBadRequest, "namespace and key cannot be empty")
	ErrInvalidValue = apperror.New(http.StatusBadRequest, "value must be valid JSON")
)

// Setting is one namespaced configuration document. Value is an opaque JSON
// payload; the service only guarantees it parses.
type Setting struct {
	Namespace string
	Key       string
	Value     json.RawMessage
	UpdatedBy string
	UpdatedAt time.Time
}

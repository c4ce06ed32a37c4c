package resource

import (
	"net/http"
	"time"

	"github.com/ferrovale/workspace-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "resource not found")
	ErrEmptyName       = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrInvalidType     = apperror.New(http.StatusBadRequest, "invalid resource type")
	ErrInvalidStatus   = apperror.New(http.StatusBadRequest, "invalid resource status")
	ErrInvalidCapacity = apperror.New(http.StatusBadRequest, "capacity must be positive")
	ErrInvalidPolicy   = apperror.New(http.StatusBadRequest, "min booking hours cannot exceed max booking hours")
)

// ValidTypes enumerates the bookable resource categories.
var ValidTypes = []string{
	"conference_room",
	"training_room",
	"auditorium",
	"equipment",
	"facility",
}

type Status string

const (
	StatusAvailable   Status = "available"
	StatusBusy        Status = "busy"
	StatusMaintenance Status = "maintenance"
)

// Resource represents a bookable unit (room, equipment, facility) together
// with its booking policy.
type Resource struct {
	ID          string
	Name        string
	Type        string
	Location    string
	Capacity    int
	HourlyRate  float64
	Description string
	Amenities   []string
	Status      Status

	// Booking policy
	MinBookingHours    int
	MaxBookingHours    int
	AdvanceNoticeHours int
	RequiresApproval   bool

	PhotoFileID *string
	CreatedAt   time.Time
}

// Filter defines parameters for listing resources.
type Filter struct {
	Type     string
	Status   string
	Search   string
	Page     int
	PageSize int
}

package registry

import (
	"net/http"
	"time"

	"github.com/ferrovale/workspace-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "module not found")
	ErrEmptyName     = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrInvalidStatus = apperror.New(http.StatusBadRequest, "invalid module status")
	ErrNameTaken     = apperror.New(http.StatusConflict, "module name already registered")
)

type Status string

const (
	StatusActive      Status = "active"
	StatusInactive    Status = "inactive"
	StatusDeprecated  Status = "deprecated"
	StatusMaintenance Status = "maintenance"
)

// ValidStatus reports whether s is a known module status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusActive, StatusInactive, StatusDeprecated, StatusMaintenance:
		return true
	}
	return false
}

// Module is one entry in the platform's module catalog.
type Module struct {
	ID          string
	Name        string
	Version     string
	Category    string
	Status      Status
	OwnerTeam   string
	Description string
	UpdatedAt   time.Time
}

// Filter defines parameters for listing catalog entries. Search matches
// name, category, owner team and description, case-insensitively.
type Filter struct {
	Category  string
	Status    string
	Search    string
	SortBy    string
	Ascending bool
}

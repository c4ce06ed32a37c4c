package http

import (
	"time"

	"github.com/ferrovale/workspace-booking-backend/internal/registry"
)

type CreateModuleRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Version     string `json:"version" binding:"max=50"`
	Category    string `json:"category" binding:"max=50"`
	Status      string `json:"status"`
	OwnerTeam   string `json:"owner_team" binding:"max=100"`
	Description string `json:"description" binding:"max=2000"`
}

type UpdateModuleRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Version     *string `json:"version" binding:"omitempty,max=50"`
	Category    *string `json:"category" binding:"omitempty,max=50"`
	Status      *string `json:"status"`
	OwnerTeam   *string `json:"owner_team" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

type ListModulesRequest struct {
	Category  string `form:"category"`
	Status    string `form:"status"`
	Search    string `form:"search" binding:"max=100"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order,default=asc" binding:"omitempty,oneof=asc desc"`
}

type ModuleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Version     string `json:"version"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	OwnerTeam   string `json:"owner_team"`
	Description string `json:"description,omitempty"`
	UpdatedAt   string `json:"updated_at"`
}

func NewModuleResponse(m *registry.Module) ModuleResponse {
	return ModuleResponse{
		ID:          m.ID,
		Name:        m.Name,
		Version:     m.Version,
		Category:    m.Category,
		Status:      string(m.Status),
		OwnerTeam:   m.OwnerTeam,
		Description: m.Description,
		UpdatedAt:   m.UpdatedAt.Format(time.RFC3339),
	}
}

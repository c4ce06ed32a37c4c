package registry

import (
	"context"
	"strings"

	"github.com/ferrovale/workspace-booking-backend/internal/schedule"
)

type CreateRequest struct {
	Name        string
	Version     string
	Category    string
	Status      Status
	OwnerTeam   string
	Description string
}

// UpdateRequest carries editable catalog fields; nil means "unchanged".
type UpdateRequest struct {
	Name        *string
	Version     *string
	Category    *string
	Status      *Status
	OwnerTeam   *string
	Description *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Module, error)
	GetByID(ctx context.Context, id string) (*Module, error)
	List(ctx context.Context, filter Filter) ([]Module, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Module, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Module, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.Status == "" {
		req.Status = StatusActive
	}
	if !ValidStatus(req.Status) {
		return nil, ErrInvalidStatus
	}

	m := &Module{
		Name:        req.Name,
		Version:     req.Version,
		Category:    req.Category,
		Status:      req.Status,
		OwnerTeam:   req.OwnerTeam,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Module, error) {
	return s.repo.GetByID(ctx, id)
}

// List loads the catalog and shapes it with the generic pipeline: one stable
// pass of filtering, then a stable keyed sort.
func (s *service) List(ctx context.Context, filter Filter) ([]Module, error) {
	modules, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	keep := func(m Module) bool {
		if filter.Category != "" && m.Category != filter.Category {
			return false
		}
		if filter.Status != "" && string(m.Status) != filter.Status {
			return false
		}
		if filter.Search != "" &&
			!schedule.MatchesSearch(filter.Search, m.Name, m.Category, m.OwnerTeam, m.Description) {
			return false
		}
		return true
	}

	less := lessFor(filter.SortBy)

	return schedule.FilterAndSort(modules, keep, less, filter.Ascending), nil
}

func lessFor(sortBy string) func(a, b Module) bool {
	switch sortBy {
	case "version":
		return func(a, b Module) bool { return a.Version < b.Version }
	case "category":
		return func(a, b Module) bool { return a.Category < b.Category }
	case "status":
		return func(a, b Module) bool { return a.Status < b.Status }
	case "owner_team":
		return func(a, b Module) bool { return a.OwnerTeam < b.OwnerTeam }
	case "updated_at":
		return func(a, b Module) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	default:
		return func(a, b Module) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Module, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		m.Name = *req.Name
	}
	if req.Version != nil {
		m.Version = *req.Version
	}
	if req.Category != nil {
		m.Category = *req.Category
	}
	if req.Status != nil {
		if !ValidStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		m.Status = *req.Status
	}
	if req.OwnerTeam != nil {
		m.OwnerTeam = *req.OwnerTeam
	}
	if req.Description != nil {
		m.Description = *req.Description
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

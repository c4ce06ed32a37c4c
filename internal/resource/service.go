package resource

import (
	"context"
	"slices"
	"strings"
)

type CreateRequest struct {
	Name               string
	Type               string
	Location           string
	Capacity           int
	HourlyRate         float64
	Description        string
	Amenities          []string
	MinBookingHours    int
	MaxBookingHours    int
	AdvanceNoticeHours int
	RequiresApproval   bool
}

// UpdateRequest carries editable resource fields; nil means "unchanged".
type UpdateRequest struct {
	Name               *string
	Location           *string
	Capacity           *int
	HourlyRate         *float64
	Description        *string
	Amenities          *[]string
	Status             *string
	MinBookingHours    *int
	MaxBookingHours    *int
	AdvanceNoticeHours *int
	RequiresApproval   *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Resource, error)
	GetByID(ctx context.Context, id string) (*Resource, error)
	List(ctx context.Context, filter Filter) ([]*Resource, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Resource, error)
	SetPhoto(ctx context.Context, id string, fileID *string) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Resource, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if !slices.Contains(ValidTypes, req.Type) {
		return nil, ErrInvalidType
	}
	if req.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	// MaxBookingHours of zero means no upper bound.
	if req.MaxBookingHours > 0 && req.MinBookingHours > req.MaxBookingHours {
		return nil, ErrInvalidPolicy
	}

	res := &Resource{
		Name:               req.Name,
		Type:               req.Type,
		Location:           req.Location,
		Capacity:           req.Capacity,
		HourlyRate:         req.HourlyRate,
		Description:        req.Description,
		Amenities:          req.Amenities,
		Status:             StatusAvailable,
		MinBookingHours:    req.MinBookingHours,
		MaxBookingHours:    req.MaxBookingHours,
		AdvanceNoticeHours: req.AdvanceNoticeHours,
		RequiresApproval:   req.RequiresApproval,
	}

	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Resource, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Resource, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Resource, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		res.Name = *req.Name
	}
	if req.Location != nil {
		res.Location = *req.Location
	}
	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return nil, ErrInvalidCapacity
		}
		res.Capacity = *req.Capacity
	}
	if req.HourlyRate != nil {
		res.HourlyRate = *req.HourlyRate
	}
	if req.Description != nil {
		res.Description = *req.Description
	}
	if req.Amenities != nil {
		res.Amenities = *req.Amenities
	}
	if req.Status != nil {
		st := Status(*req.Status)
		if st != StatusAvailable && st != StatusBusy && st != StatusMaintenance {
			return nil, ErrInvalidStatus
		}
		res.Status = st
	}
	if req.MinBookingHours != nil {
		res.MinBookingHours = *req.MinBookingHours
	}
	if req.MaxBookingHours != nil {
		res.MaxBookingHours = *req.MaxBookingHours
	}
	if res.MaxBookingHours > 0 && res.MinBookingHours > res.MaxBookingHours {
		return nil, ErrInvalidPolicy
	}
	if req.AdvanceNoticeHours != nil {
		res.AdvanceNoticeHours = *req.AdvanceNoticeHours
	}
	if req.RequiresApproval != nil {
		res.RequiresApproval = *req.RequiresApproval
	}

	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) SetPhoto(ctx context.Context, id string, fileID *string) error {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	res.PhotoFileID = fileID
	return s.repo.Update(ctx, res)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

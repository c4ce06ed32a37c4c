package slot

import (
	"context"
	"errors"
	"time"

	"github.com/ferrovale/workspace-booking-backend/internal/resource"
	"github.com/ferrovale/workspace-booking-backend/internal/schedule"
)

type CreateRequest struct {
	ResourceID string
	Date       schedule.DateStamp
	Start      schedule.TimeOfDay
	End        schedule.TimeOfDay
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Slot, error)
	GetByID(ctx context.Context, id string) (*Slot, error)
	List(ctx context.Context, filter Filter) ([]*Slot, int, error)
	ListForResourceDate(ctx context.Context, resourceID string, date schedule.DateStamp) ([]*Slot, error)
	ListForMonth(ctx context.Context, year int, month time.Month) ([]*Slot, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo       Repository
	resService resource.Service
}

func NewService(repo Repository, resService resource.Service) Service {
	return &service{
		repo:       repo,
		resService: resService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Slot, error) {
	// Degenerate and inverted windows are rejected here, before the
	// scheduling core ever sees them.
	if !req.Start.Before(req.End) {
		return nil, ErrInvalidTimeRange
	}

	if _, err := s.resService.GetByID(ctx, req.ResourceID); err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}

	sl := &Slot{
		ResourceID: req.ResourceID,
		Date:       req.Date,
		Start:      req.Start,
		End:        req.End,
	}

	if err := s.repo.Create(ctx, sl); err != nil {
		return nil, err
	}
	return sl, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Slot, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Slot, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) ListForResourceDate(ctx context.Context, resourceID string, date schedule.DateStamp) ([]*Slot, error) {
	return s.repo.ListForResourceDate(ctx, resourceID, date)
}

func (s *service) ListForMonth(ctx context.Context, year int, month time.Month) ([]*Slot, error) {
	return s.repo.ListForMonth(ctx, year, month)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

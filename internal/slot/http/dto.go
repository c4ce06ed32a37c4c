package http

import (
	"time"

	"github.com/ferrovale/workspace-booking-backend/internal/pkg/request"
	"github.com/ferrovale/workspace-booking-backend/internal/schedule"
	"github.com/ferrovale/workspace-booking-backend/internal/slot"
)

// ListSlotsRequest defines query parameters for listing slots.
type ListSlotsRequest struct {
	request.ListParams
	ResourceID string `form:"resource_id" binding:"omitempty,uuid"`
	DateFrom   string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo     string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
}

type SlotResponse struct {
	ID         string    `json:"id"`
	ResourceID string    `json:"resource_id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewSlotResponse(s *slot.Slot) SlotResponse {
	return SlotResponse{
		ID:         s.ID,
		ResourceID: s.ResourceID,
		Date:       s.Date.String(),
		StartTime:  s.Start.String(),
		EndTime:    s.End.String(),
		CreatedAt:  s.CreatedAt,
	}
}

type CreateSlotRequest struct {
	ResourceID string `json:"resource_id" binding:"required,uuid"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime  string `json:"start_time" binding:"required"`
	EndTime    string `json:"end_time" binding:"required"`
}

// Parse converts the validated payload to a service request.
func (r *CreateSlotRequest) Parse() (slot.CreateRequest, error) {
	date, err := schedule.ParseDateStamp(r.Date)
	if err != nil {
		return slot.CreateRequest{}, err
	}
	start, err := schedule.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return slot.CreateRequest{}, err
	}
	end, err := schedule.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return slot.CreateRequest{}, err
	}

	return slot.CreateRequest{
		ResourceID: r.ResourceID,
		Date:       date,
		Start:      start,
		End:        end,
	}, nil
}

package http

import (
	"time"

	"github.com/ferrovale/workspace-booking-backend/internal/pkg/request"
	"github.com/ferrovale/workspace-booking-backend/internal/resource"
)

// ListResourcesRequest defines query parameters for listing resources.
type ListResourcesRequest struct {
	request.ListParams
	Type   string `form:"type" binding:"omitempty,oneof=conference_room training_room auditorium equipment facility"`
	Status string `form:"status" binding:"omitempty,oneof=available busy maintenance"`
	Search string `form:"search"`
}

// ResourceResponse is the API shape of a resource.
type ResourceResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Type               string    `json:"type"`
	Location           string    `json:"location"`
	Capacity           int       `json:"capacity"`
	HourlyRate         float64   `json:"hourly_rate"`
	Description        string    `json:"description"`
	Amenities          []string  `json:"amenities"`
	Status             string    `json:"status"`
	MinBookingHours    int       `json:"min_booking_hours"`
	MaxBookingHours    int       `json:"max_booking_hours"`
	AdvanceNoticeHours int       `json:"advance_notice_hours"`
	RequiresApproval   bool      `json:"requires_approval"`
	PhotoURL           *string   `json:"photo_url"`
	CreatedAt          time.Time `json:"created_at"`
}

// ResourceTag is a brief representation for embedding in other responses.
type ResourceTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewResourceResponse(res *resource.Resource) ResourceResponse {
	amenities := res.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	var photoURL *string
	if res.PhotoFileID != nil {
		u := "/v1/files/" + *res.PhotoFileID
		photoURL = &u
	}

	return ResourceResponse{
		ID:                 res.ID,
		Name:               res.Name,
		Type:               res.Type,
		Location:           res.Location,
		Capacity:           res.Capacity,
		HourlyRate:         res.HourlyRate,
		Description:        res.Description,
		Amenities:          amenities,
		Status:             string(res.Status),
		MinBookingHours:    res.MinBookingHours,
		MaxBookingHours:    res.MaxBookingHours,
		AdvanceNoticeHours: res.AdvanceNoticeHours,
		RequiresApproval:   res.RequiresApproval,
		PhotoURL:           photoURL,
		CreatedAt:          res.CreatedAt,
	}
}

type CreateResourceRequest struct {
	Name               string   `json:"name" binding:"required"`
	Type               string   `json:"type" binding:"required,oneof=conference_room training_room auditorium equipment facility"`
	Location           string   `json:"location"`
	Capacity           int      `json:"capacity" binding:"required,min=1"`
	HourlyRate         float64  `json:"hourly_rate" binding:"omitempty,min=0"`
	Description        string   `json:"description"`
	Amenities          []string `json:"amenities"`
	MinBookingHours    int      `json:"min_booking_hours" binding:"omitempty,min=0"`
	MaxBookingHours    int      `json:"max_booking_hours" binding:"omitempty,min=0"`
	AdvanceNoticeHours int      `json:"advance_notice_hours" binding:"omitempty,min=0"`
	RequiresApproval   bool     `json:"requires_approval"`
}

type UpdateResourceRequest struct {
	Name               *string   `json:"name"`
	Location           *string   `json:"location"`
	Capacity           *int      `json:"capacity" binding:"omitempty,min=1"`
	HourlyRate         *float64  `json:"hourly_rate" binding:"omitempty,min=0"`
	Description        *string   `json:"description"`
	Amenities          *[]string `json:"amenities"`
	Status             *string   `json:"status" binding:"omitempty,oneof=available busy maintenance"`
	MinBookingHours    *int      `json:"min_booking_hours" binding:"omitempty,min=0"`
	MaxBookingHours    *int      `json:"max_booking_hours" binding:"omitempty,min=0"`
	AdvanceNoticeHours *int      `json:"advance_notice_hours" binding:"omitempty,min=0"`
	RequiresApproval   *bool     `json:"requires_approval"`
}

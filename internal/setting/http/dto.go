package http

import (
	"encoding/json"
	"time"

	"github.com/ferrovale/workspace-booking-backend/internal/setting"
)

type PutSettingRequest struct {
	Value json.RawMessage `json:"value" binding:"required"`
}

type SettingURI struct {
	Namespace string `uri:"namespace" binding:"required,max=100"`
	Key       string `uri:"key" binding:"required,max=100"`
}

type NamespaceURI struct {
	Namespace string `uri:"namespace" binding:"required,max=100"`
}

type SettingResponse struct {
	Namespace string          `json:"namespace"`
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedBy string          `json:"updated_by"`
	UpdatedAt string          `json:"updated_at"`
}

func NewSettingResponse(s *setting.Setting) SettingResponse {
	return SettingResponse{
		Namespace: s.Namespace,
		Key:       s.Key,
		Value:     s.Value,
		UpdatedBy: s.UpdatedBy,
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}

package setting

import (
	"context"
	"encoding/json"
	"strings"
)

type Service interface {
	// Put validates the JSON payload and inserts or replaces the document.
	Put(ctx context.Context, namespace, key string, value json.RawMessage, updatedBy string) (*Setting, error)
	Get(ctx context.Context, namespace, key string) (*Setting, error)
	ListNamespace(ctx context.Context, namespace string) ([]Setting, error)
	Delete(ctx context.Context, namespace, key string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Put(ctx context.Context, namespace, key string, value json.RawMessage, updatedBy string) (*Setting, error) {
	if strings.TrimSpace(namespace) == "" || strings.TrimSpace(key) == "" {
		return nil, ErrEmptyKey
	}
	if !json.Valid(value) {
		return nil, ErrInvalidValue
	}

	doc := &Setting{
		Namespace: namespace,
		Key:       key,
		Value:     value,
		UpdatedBy: updatedBy,
	}
	if err := s.repo.Upsert(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *service) Get(ctx context.Context, namespace, key string) (*Setting, error) {
	return s.repo.Get(ctx, namespace, key)
}

func (s *service) ListNamespace(ctx context.Context, namespace string) ([]Setting, error) {
	return s.repo.ListNamespace(ctx, namespace)
}

func (s *service) Delete(ctx context.Context, namespace, key string) error {
	return s.repo.Delete(ctx, namespace, key)
}

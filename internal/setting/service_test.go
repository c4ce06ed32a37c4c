package setting

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	docs map[string]Setting
}

func key(namespace, k string) string { return namespace + "/" + k }

func newFakeRepo() *fakeRepo {
	return &fakeRepo{docs: map[string]Setting{}}
}

func (f *fakeRepo) Upsert(_ context.Context, s *Setting) error {
	s.UpdatedAt = time.Now()
	f.docs[key(s.Namespace, s.Key)] = *s
	return nil
}

func (f *fakeRepo) Get(_ context.Context, namespace, k string) (*Setting, error) {
	s, ok := f.docs[key(namespace, k)]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (f *fakeRepo) ListNamespace(_ context.Context, namespace string) ([]Setting, error) {
	var out []Setting
	for _, s := range f.docs {
		if s.Namespace == namespace {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(_ context.Context, namespace, k string) error {
	if _, ok := f.docs[key(namespace, k)]; !ok {
		return ErrNotFound
	}
	delete(f.docs, key(namespace, k))
	return nil
}

func TestPutValidatesJSON(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Put(ctx, "booking", "limits", json.RawMessage(`{"max_per_day": 3`), "admin")
	require.ErrorIs(t, err, ErrInvalidValue)

	_, err = svc.Put(ctx, "", "limits", json.RawMessage(`{}`), "admin")
	require.ErrorIs(t, err, ErrEmptyKey)

	doc, err := svc.Put(ctx, "booking", "limits", json.RawMessage(`{"max_per_day": 3}`), "admin")
	require.NoError(t, err)
	require.Equal(t, "admin", doc.UpdatedBy)
}

func TestPutReplacesExisting(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Put(ctx, "ui", "theme", json.RawMessage(`{"dark": false}`), "a")
	require.NoError(t, err)
	_, err = svc.Put(ctx, "ui", "theme", json.RawMessage(`{"dark": true}`), "b")
	require.NoError(t, err)

	doc, err := svc.Get(ctx, "ui", "theme")
	require.NoError(t, err)
	require.JSONEq(t, `{"dark": true}`, string(doc.Value))
	require.Equal(t, "b", doc.UpdatedBy)
}

func TestNamespaceIsolation(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Put(ctx, "booking", "limits", json.RawMessage(`1`), "a")
	require.NoError(t, err)
	_, err = svc.Put(ctx, "ui", "limits", json.RawMessage(`2`), "a")
	require.NoError(t, err)

	docs, err := svc.ListNamespace(ctx, "booking")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "booking", docs[0].Namespace)

	require.NoError(t, svc.Delete(ctx, "booking", "limits"))
	_, err = svc.Get(ctx, "booking", "limits")
	require.ErrorIs(t, err, ErrNotFound)

	// The other namespace's document is untouched.
	_, err = svc.Get(ctx, "ui", "limits")
	require.NoError(t, err)
}

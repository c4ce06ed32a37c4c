package registry

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	modules []Module
	nextID  int
}

func (f *fakeRepo) Create(_ context.Context, m *Module) error {
	for _, existing := range f.modules {
		if existing.Name == m.Name {
			return ErrNameTaken
		}
	}
	f.nextID++
	m.ID = fmt.Sprintf("mod-%d", f.nextID)
	m.UpdatedAt = time.Now()
	f.modules = append(f.modules, *m)
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Module, error) {
	for i := range f.modules {
		if f.modules[i].ID == id {
			clone := f.modules[i]
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) ListAll(_ context.Context) ([]Module, error) {
	out := make([]Module, len(f.modules))
	copy(out, f.modules)
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, m *Module) error {
	for i := range f.modules {
		if f.modules[i].ID == m.ID {
			f.modules[i] = *m
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	for i := range f.modules {
		if f.modules[i].ID == id {
			f.modules = append(f.modules[:i], f.modules[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func seededService(t *testing.T) (Service, *fakeRepo) {
	t.Helper()
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	seeds := []CreateRequest{
		{Name: "Booking Engine", Version: "2.1.0", Category: "core", Status: StatusActive, OwnerTeam: "platform"},
		{Name: "Analytics", Version: "1.4.2", Category: "reporting", Status: StatusActive, OwnerTeam: "data"},
		{Name: "Legacy Importer", Version: "0.9.0", Category: "tooling", Status: StatusDeprecated, OwnerTeam: "platform"},
		{Name: "access control", Version: "3.0.1", Category: "core", Status: StatusMaintenance, OwnerTeam: "security"},
	}
	for _, seed := range seeds {
		_, err := svc.Create(ctx, seed)
		require.NoError(t, err)
	}
	return svc, repo
}

func TestCreateValidation(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{Name: "   "})
	require.ErrorIs(t, err, ErrEmptyName)

	_, err = svc.Create(ctx, CreateRequest{Name: "Thing", Status: "retired"})
	require.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.Create(ctx, CreateRequest{Name: "Analytics"})
	require.ErrorIs(t, err, ErrNameTaken)

	m, err := svc.Create(ctx, CreateRequest{Name: "Notifier"})
	require.NoError(t, err)
	require.Equal(t, StatusActive, m.Status)
}

func TestListSortsCaseInsensitivelyByName(t *testing.T) {
	svc, _ := seededService(t)

	modules, err := svc.List(context.Background(), Filter{Ascending: true})
	require.NoError(t, err)
	require.Len(t, modules, 4)

	names := make([]string, len(modules))
	for i, m := range modules {
		names[i] = m.Name
	}
	require.Equal(t, []string{"access control", "Analytics", "Booking Engine", "Legacy Importer"}, names)
}

func TestListFiltersByCategoryAndStatus(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	core, err := svc.List(ctx, Filter{Category: "core", Ascending: true})
	require.NoError(t, err)
	require.Len(t, core, 2)

	deprecated, err := svc.List(ctx, Filter{Status: string(StatusDeprecated), Ascending: true})
	require.NoError(t, err)
	require.Len(t, deprecated, 1)
	require.Equal(t, "Legacy Importer", deprecated[0].Name)
}

func TestListSearchSpansFields(t *testing.T) {
	svc, _ := seededService(t)

	// "platform" only appears in the owner team field.
	hits, err := svc.List(context.Background(), Filter{Search: "PLATFORM", Ascending: true})
	require.NoError(t, err)
	require.Len(t, hits, 2)
	require.Equal(t, "Booking Engine", hits[0].Name)
	require.Equal(t, "Legacy Importer", hits[1].Name)
}

func TestListDescendingReversesOrder(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	asc, err := svc.List(ctx, Filter{SortBy: "version", Ascending: true})
	require.NoError(t, err)
	desc, err := svc.List(ctx, Filter{SortBy: "version", Ascending: false})
	require.NoError(t, err)

	require.Len(t, desc, len(asc))
	for i := range asc {
		require.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	all, err := svc.List(ctx, Filter{Ascending: true})
	require.NoError(t, err)
	target := all[0]

	newVersion := "3.1.0"
	updated, err := svc.Update(ctx, target.ID, UpdateRequest{Version: &newVersion})
	require.NoError(t, err)
	require.Equal(t, "3.1.0", updated.Version)

	badStatus := Status("gone")
	_, err = svc.Update(ctx, target.ID, UpdateRequest{Status: &badStatus})
	require.ErrorIs(t, err, ErrInvalidStatus)

	require.NoError(t, svc.Delete(ctx, target.ID))
	_, err = svc.GetByID(ctx, target.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, "missing"), ErrNotFound)
}

package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type record struct {
	Key int
	ID  string
}

func TestFilterAndSortStability(t *testing.T) {
	items := []record{
		{Key: 1, ID: "a"},
		{Key: 1, ID: "b"},
	}

	got := FilterAndSort(items, nil, func(a, b record) bool { return a.Key < b.Key }, true)
	require.Equal(t, []record{{Key: 1, ID: "a"}, {Key: 1, ID: "b"}}, got)

	// Equal keys keep input order in descending direction too.
	got = FilterAndSort(items, nil, func(a, b record) bool { return a.Key < b.Key }, false)
	require.Equal(t, []record{{Key: 1, ID: "a"}, {Key: 1, ID: "b"}}, got)
}

func TestFilterAndSort(t *testing.T) {
	items := []record{
		{Key: 3, ID: "c"},
		{Key: 1, ID: "a"},
		{Key: 2, ID: "b"},
		{Key: 1, ID: "dropped"},
	}

	got := FilterAndSort(items,
		func(r record) bool { return r.ID != "dropped" },
		func(a, b record) bool { return a.Key < b.Key },
		true)
	require.Equal(t, []record{{Key: 1, ID: "a"}, {Key: 2, ID: "b"}, {Key: 3, ID: "c"}}, got)

	got = FilterAndSort(items,
		func(r record) bool { return r.ID != "dropped" },
		func(a, b record) bool { return a.Key < b.Key },
		false)
	require.Equal(t, []record{{Key: 3, ID: "c"}, {Key: 2, ID: "b"}, {Key: 1, ID: "a"}}, got)
}

func TestFilterAndSortDoesNotMutateInput(t *testing.T) {
	items := []record{
		{Key: 2, ID: "b"},
		{Key: 1, ID: "a"},
	}

	_ = FilterAndSort(items, nil, func(a, b record) bool { return a.Key < b.Key }, true)
	require.Equal(t, []record{{Key: 2, ID: "b"}, {Key: 1, ID: "a"}}, items)
}

func TestMatchesSearch(t *testing.T) {
	require.True(t, MatchesSearch("", "anything"))
	require.True(t, MatchesSearch("ROOM", "Conference Room A", ""))
	require.True(t, MatchesSearch("alpha", "Auditorium", "auditorium ALPHA"))
	require.False(t, MatchesSearch("beta", "Auditorium", "auditorium alpha"))
}

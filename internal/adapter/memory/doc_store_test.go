package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campsync/internal/core/port"
)

func TestSetMergeSemantics(t *testing.T) {
	s := NewDocStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "clients/a", port.Document{"x": "1", "y": "2"}, false))
	require.NoError(t, s.Set(ctx, "clients/a", port.Document{"y": "3"}, true))

	doc, err := s.Get(ctx, "clients/a")
	require.NoError(t, err)
	assert.Equal(t, "1", doc["x"])
	assert.Equal(t, "3", doc["y"])

	// replace drops fields absent from the payload
	require.NoError(t, s.Set(ctx, "clients/a", port.Document{"z": "4"}, false))
	doc, err = s.Get(ctx, "clients/a")
	require.NoError(t, err)
	assert.NotContains(t, doc, "x")
	assert.Equal(t, "4", doc["z"])
}

func TestGetReturnsCopy(t *testing.T) {
	s := NewDocStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "clients/a", port.Document{"list": []any{"one"}}, false))
	doc, err := s.Get(ctx, "clients/a")
	require.NoError(t, err)
	doc["list"].([]any)[0] = "mutated"

	doc, err = s.Get(ctx, "clients/a")
	require.NoError(t, err)
	assert.Equal(t, "one", doc["list"].([]any)[0])
}

func TestListChildrenDirectOnly(t *testing.T) {
	s := NewDocStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "clients/a/adgroups/c1", port.Document{}, false))
	require.NoError(t, s.Set(ctx, "clients/a/adgroups/c2", port.Document{}, false))
	require.NoError(t, s.Set(ctx, "clients/a/adgroups/c1/adtypes/g1", port.Document{}, false))

	keys, err := s.ListChildren(ctx, "clients/a/adgroups")
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, keys)
}

func TestDeleteIdempotent(t *testing.T) {
	s := NewDocStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "clients/a", port.Document{}, false))
	require.NoError(t, s.Delete(ctx, "clients/a"))
	require.NoError(t, s.Delete(ctx, "clients/a"))
	_, err := s.Get(ctx, "clients/a")
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestIndexEntries(t *testing.T) {
	s := NewDocStore()
	ctx := context.Background()

	e := port.IndexEntry{ClientKey: "a", CampaignKey: "c", AdGroupKey: "g", AdKey: "x", DisplayName: "X"}
	require.NoError(t, s.PutIndexEntry(ctx, e))
	e.DisplayName = "X2"
	require.NoError(t, s.PutIndexEntry(ctx, e))

	entries, err := s.ListIndexEntries(ctx, "a")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "X2", entries[0].DisplayName)
	assert.NotEmpty(t, entries[0].ID)

	n, err := s.DeleteIndexEntries(ctx, port.IndexRef{ClientKey: "a", CampaignKey: "c"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

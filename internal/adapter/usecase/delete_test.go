package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campsync/internal/core/domain"
	"campsync/internal/core/port"
)

func TestDeleteNodeCascadesFromClient(t *testing.T) {
	svc, store := newTestService()
	importAndSave(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.DeleteNode(ctx, domain.ClientPath("acme")))

	assert.Equal(t, 0, store.Len())

	for _, collection := range []string{
		domain.ClientPath("acme") + "/adgroups",
		domain.CampaignPath("acme", "Summer Sale") + "/adtypes",
		domain.AdGroupPath("acme", "Summer Sale", "Shoes") + "/categories",
	} {
		keys, err := store.ListChildren(ctx, collection)
		require.NoError(t, err)
		assert.Empty(t, keys, "children remain under %s", collection)
	}

	entries, err := store.ListIndexEntries(ctx, "acme")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeleteNodeScopedToSubtree(t *testing.T) {
	svc, store := newTestService()
	importAndSave(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.DeleteNode(ctx, domain.AdGroupPath("acme", "Summer Sale", "Shoes")))

	_, err := store.Get(ctx, domain.AdGroupPath("acme", "Summer Sale", "Shoes"))
	assert.ErrorIs(t, err, port.ErrNotFound)
	_, err = store.Get(ctx, domain.AdPath("acme", "Summer Sale", "Shoes", "Buy Now"))
	assert.ErrorIs(t, err, port.ErrNotFound)

	// siblings and the rest of the tree survive
	_, err = store.Get(ctx, domain.AdGroupPath("acme", "Summer Sale", "Boots"))
	assert.NoError(t, err)
	_, err = store.Get(ctx, domain.CampaignPath("acme", "Winter Sale"))
	assert.NoError(t, err)

	entries, err := store.ListIndexEntries(ctx, "acme")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.NotEqual(t, "Shoes", e.AdGroupKey)
	}
}

func TestDeleteNodeIdempotent(t *testing.T) {
	svc, _ := newTestService()
	importAndSave(t, svc)
	ctx := context.Background()

	path := domain.CampaignPath("acme", "Winter Sale")
	require.NoError(t, svc.DeleteNode(ctx, path))
	// deleting an already-absent subtree succeeds
	assert.NoError(t, svc.DeleteNode(ctx, path))
}

// A delete failure partway down the cascade surfaces the level and path it
// stopped at, and the failing node's ancestors survive. Retrying the same
// delete with the store healthy finishes the cascade.
func TestDeleteNodeReportsFailingLevelAndPath(t *testing.T) {
	svc, store := newFailingService()
	importAndSave(t, svc)
	ctx := context.Background()

	adPath := domain.AdPath("acme", "Summer Sale", "Shoes", "Buy Now")
	store.failDeletePath = adPath
	err := svc.DeleteNode(ctx, domain.ClientPath("acme"))

	var cascade *port.CascadeDeleteError
	require.ErrorAs(t, err, &cascade)
	assert.Equal(t, domain.LevelAd, cascade.Level)
	assert.Equal(t, adPath, cascade.Path)

	_, err = store.Get(ctx, domain.ClientPath("acme"))
	assert.NoError(t, err)
	_, err = store.Get(ctx, domain.AdGroupPath("acme", "Summer Sale", "Shoes"))
	assert.NoError(t, err)

	store.failDeletePath = ""
	require.NoError(t, svc.DeleteNode(ctx, domain.ClientPath("acme")))
	assert.Equal(t, 0, store.Len())
}

func TestDeleteNodeRejectsMalformedPath(t *testing.T) {
	svc, _ := newTestService()
	err := svc.DeleteNode(context.Background(), "clients/acme/bogus/x")
	assert.Error(t, err)
}

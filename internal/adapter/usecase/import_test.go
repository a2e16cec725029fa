package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campsync/internal/adapter/memory"
	"campsync/internal/core/domain"
	"campsync/internal/core/port"
)

func newTestService() (*SyncService, *memory.DocStore) {
	store := memory.NewDocStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSyncService(store, logger, ImportConfig{}), store
}

var errStoreDown = errors.New("store unavailable")

// failingStore wraps the in-memory store and fails selected operations on
// one path, standing in for a store outage partway through a walk.
type failingStore struct {
	*memory.DocStore
	failSetPath    string
	failDeletePath string
}

func (s *failingStore) Set(ctx context.Context, path string, data port.Document, merge bool) error {
	if s.failSetPath != "" && path == s.failSetPath {
		return errStoreDown
	}
	return s.DocStore.Set(ctx, path, data, merge)
}

func (s *failingStore) Delete(ctx context.Context, path string) error {
	if s.failDeletePath != "" && path == s.failDeletePath {
		return errStoreDown
	}
	return s.DocStore.Delete(ctx, path)
}

func newFailingService() (*SyncService, *failingStore) {
	store := &failingStore{DocStore: memory.NewDocStore()}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSyncService(store, logger, ImportConfig{}), store
}

func TestImportSummerSale(t *testing.T) {
	svc, store := newTestService()

	text := "Campaign\tAd Group\tAd type\tHeadline 1\tBid Strategy Type\tBudget\n" +
		"Summer Sale\tShoes\tResponsive search ad\tBuy Now\tMaximize clicks\t100"
	tree, err := svc.ImportFromText(context.Background(), "acme", "Acme", text)
	require.NoError(t, err)

	// parsing and building persist nothing
	assert.Equal(t, 0, store.Len())

	require.Len(t, tree.Campaigns, 1)
	camp := tree.Campaigns[0]
	assert.Equal(t, "Summer Sale", camp.DisplayName)
	assert.Equal(t, domain.BidMaximizeClicks, camp.Settings.BidStrategy)
	assert.Equal(t, "100", camp.Settings.DailyBudget)

	require.Len(t, camp.AdGroups, 1)
	group := camp.AdGroups[0]
	assert.Equal(t, "Shoes", group.DisplayName)

	require.Len(t, group.Ads, 1)
	ad := group.Ads[0]
	assert.Equal(t, "Buy Now", ad.DisplayName)
	require.NotEmpty(t, ad.Headlines)
	assert.Equal(t, "Buy Now", ad.Headlines[0].Text)
}

func TestImportSkipRules(t *testing.T) {
	svc, _ := newTestService()

	text := "Campaign\tAd Group\tAd type\tHeadline 1\tBudget\n" +
		// sentinel row contributes settings scanning only
		"Generic\tIgnored\tResponsive search ad\tNope\t999\n" +
		// no campaign: dropped entirely
		"\tOrphan\tResponsive search ad\tNope\t\n" +
		// no ad group: campaign kept alive but nothing below
		"Sale\t\t\t\t100\n" +
		// text ad: ad group but no ad
		"Sale\tShoes\tExpanded text ad\tOld Style\t\n" +
		// the one real ad
		"Sale\tShoes\tResponsive search ad\tBuy Now\t\n"
	tree, err := svc.ImportFromText(context.Background(), "acme", "Acme", text)
	require.NoError(t, err)

	require.Len(t, tree.Campaigns, 1)
	camp := tree.Campaigns[0]
	assert.Equal(t, "Sale", camp.DisplayName)
	assert.Equal(t, "100", camp.Settings.DailyBudget)
	require.Len(t, camp.AdGroups, 1)
	assert.Equal(t, "Shoes", camp.AdGroups[0].DisplayName)
	require.Len(t, camp.AdGroups[0].Ads, 1)
	assert.Equal(t, "Buy Now", camp.AdGroups[0].Ads[0].DisplayName)
}

func TestImportNoValidCampaigns(t *testing.T) {
	svc, _ := newTestService()

	// settings-only rows build no tree
	text := "Campaign\tBudget\nSale\t100\nGeneric\t50"
	_, err := svc.ImportFromText(context.Background(), "acme", "Acme", text)
	assert.ErrorIs(t, err, port.ErrNoValidCampaigns)
}

func TestImportHeadlinePinsAndPaths(t *testing.T) {
	svc, _ := newTestService()

	text := "Campaign\tAd Group\tAd type\tHeadline 1\tHeadline 1 position\tHeadline 2\tDescription 1\tDescription 1 position\tPath 1\tPath 2\tFinal URL\tLabels\n" +
		"Sale\tShoes\tResponsive search ad\tBuy Now\t1\tGreat Deals\tShip free worldwide.\t2\tdeals\tsummer\thttps://example.com\tpromo;summer"
	tree, err := svc.ImportFromText(context.Background(), "acme", "Acme", text)
	require.NoError(t, err)

	ad := tree.Campaigns[0].AdGroups[0].Ads[0]
	require.Len(t, ad.Headlines, 2)
	assert.Equal(t, domain.Asset{Text: "Buy Now", Pin: 1}, ad.Headlines[0])
	assert.Equal(t, domain.Asset{Text: "Great Deals", Pin: 0}, ad.Headlines[1])
	require.Len(t, ad.Descriptions, 1)
	assert.Equal(t, domain.Asset{Text: "Ship free worldwide.", Pin: 2}, ad.Descriptions[0])
	assert.Equal(t, []string{"deals", "summer"}, ad.Paths)
	assert.Equal(t, []string{"https://example.com"}, ad.FinalURLs)
	assert.Equal(t, []string{"promo", "summer"}, ad.Labels)
}

// Pins are bounded per asset kind: headlines accept 1-3, descriptions only
// 1-2. Out-of-range cells read as unpinned.
func TestImportPinBounds(t *testing.T) {
	svc, _ := newTestService()

	text := "Campaign\tAd Group\tAd type\tHeadline 1\tHeadline 1 position\tDescription 1\tDescription 1 position\tDescription 2\tDescription 2 position\n" +
		"Sale\tShoes\tResponsive search ad\tBuy Now\t3\tShip free.\t3\tEasy returns.\t2"
	tree, err := svc.ImportFromText(context.Background(), "acme", "Acme", text)
	require.NoError(t, err)

	ad := tree.Campaigns[0].AdGroups[0].Ads[0]
	require.Len(t, ad.Headlines, 1)
	assert.Equal(t, 3, ad.Headlines[0].Pin)
	require.Len(t, ad.Descriptions, 2)
	assert.Equal(t, 0, ad.Descriptions[0].Pin)
	assert.Equal(t, 2, ad.Descriptions[1].Pin)
}

// The ad display name falls back from passthrough group name to first
// headline to group name.
func TestImportAdDisplayNameChain(t *testing.T) {
	store := memory.NewDocStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewSyncService(store, logger, ImportConfig{
		SentinelCampaign:  "Generic",
		PassthroughAdName: "Keep Me",
	})

	text := "Campaign\tAd Group\tAd type\tHeadline 1\n" +
		"Sale\tKeep Me\tResponsive search ad\tSome Headline\n" +
		"Sale\tShoes\tResponsive search ad\tBuy Now\n" +
		"Sale\tBoots\tResponsive search ad\t"
	tree, err := svc.ImportFromText(context.Background(), "acme", "Acme", text)
	require.NoError(t, err)

	camp := tree.Campaigns[0]
	assert.Equal(t, "Keep Me", camp.AdGroup("Keep Me").Ads[0].DisplayName)
	assert.Equal(t, "Buy Now", camp.AdGroup("Shoes").Ads[0].DisplayName)
	assert.Equal(t, "Boots", camp.AdGroup("Boots").Ads[0].DisplayName)
}

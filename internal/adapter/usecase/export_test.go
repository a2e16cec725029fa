package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campsync/internal/core/domain"
	"campsync/internal/core/port"
)

func cellsOf(line string) []string { return strings.Split(line, "\t") }

func cellAt(t *testing.T, header, line []string, col string) string {
	t.Helper()
	for i, h := range header {
		if h == col {
			require.Less(t, i, len(line))
			return line[i]
		}
	}
	t.Fatalf("column %q not in header %v", col, header)
	return ""
}

func TestExportMaximizeClicks(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	campPath := domain.CampaignPath("acme", "Summer Sale")
	require.NoError(t, store.Set(ctx, campPath, port.Document{
		"displayName": "Summer Sale",
		"status":      "Active",
		"bidStrategy": string(domain.BidMaximizeClicks),
		"dailyBudget": "100",
		"maxCpc":      "2.50",
		"networks":    []any{"Google search", "Search partners"},
		"languages":   []any{"en"},
	}, false))
	require.NoError(t, store.Set(ctx, domain.AdGroupPath("acme", "Summer Sale", "Shoes"), port.Document{
		"displayName": "Shoes",
		"status":      "Active",
		"maxCpc":      "1.20",
	}, false))

	text, err := svc.ExportCampaign(ctx, campPath)
	require.NoError(t, err)
	lines := strings.Split(text, "\n")
	require.Len(t, lines, 3)

	header := cellsOf(lines[0])
	assert.Contains(t, header, "Maximum CPC bid limit")

	campRow := cellsOf(lines[1])
	require.Equal(t, len(header), len(campRow))
	assert.Equal(t, "Summer Sale", cellAt(t, header, campRow, colCampaign))
	assert.Equal(t, "", cellAt(t, header, campRow, colAdGroup))
	assert.Equal(t, "2.50", cellAt(t, header, campRow, colMaxCPCLimit))
	assert.Equal(t, "100", cellAt(t, header, campRow, colBudget))
	assert.Equal(t, "Maximize clicks", cellAt(t, header, campRow, colBidStrategy))
	assert.Equal(t, "Google search;Search partners", cellAt(t, header, campRow, colNetworks))

	groupRow := cellsOf(lines[2])
	require.Equal(t, len(header), len(groupRow))
	assert.Equal(t, "Summer Sale", cellAt(t, header, groupRow, colCampaign))
	assert.Equal(t, "Shoes", cellAt(t, header, groupRow, colAdGroup))
	assert.Equal(t, "1.20", cellAt(t, header, groupRow, colMaxCPCLimit))
	assert.Equal(t, "", cellAt(t, header, groupRow, colBudget))
}

func TestExportStrategyColumns(t *testing.T) {
	cases := []struct {
		strategy domain.BidStrategy
		want     []string
		absent   []string
	}{
		{domain.BidManualCPC, nil, []string{colMaxCPCLimit, colTargetCPA, colTargetROAS, colTargetImprShare}},
		{domain.BidTargetImpressionShare, []string{colTargetImprShare, colMaxCPCLimit}, []string{colTargetCPA}},
		{domain.BidTargetROAS, []string{colTargetROAS}, []string{colMaxCPCLimit}},
	}
	for _, tc := range cases {
		header := exportHeader(tc.strategy)
		for _, col := range tc.want {
			assert.Contains(t, header, col, "strategy %s", tc.strategy)
		}
		for _, col := range tc.absent {
			assert.NotContains(t, header, col, "strategy %s", tc.strategy)
		}
	}
}

func TestExportTargetImpressionShareValues(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	campPath := domain.CampaignPath("acme", "Brand")
	require.NoError(t, store.Set(ctx, campPath, port.Document{
		"displayName":           "Brand",
		"bidStrategy":           string(domain.BidTargetImpressionShare),
		"targetImpressionShare": "65",
		"maxCpc":                "1.10",
	}, false))

	text, err := svc.ExportCampaign(ctx, campPath)
	require.NoError(t, err)
	lines := strings.Split(text, "\n")
	header := cellsOf(lines[0])
	campRow := cellsOf(lines[1])
	assert.Equal(t, "65", cellAt(t, header, campRow, colTargetImprShare))
	assert.Equal(t, "1.10", cellAt(t, header, campRow, colMaxCPCLimit))
}

func TestExportEscapesQuotes(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	campPath := domain.CampaignPath("acme", "Quoted")
	require.NoError(t, store.Set(ctx, campPath, port.Document{
		"displayName": `The "Best" Campaign`,
		"bidStrategy": string(domain.BidManualCPC),
	}, false))

	text, err := svc.ExportCampaign(ctx, campPath)
	require.NoError(t, err)
	assert.Contains(t, text, `The ""Best"" Campaign`)
}

func TestExportRejectsNonCampaignPath(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.ExportCampaign(context.Background(), domain.ClientPath("acme"))
	assert.Error(t, err)
}

// Exported settings survive a re-import: the strategy column value comes
// back as the campaign's bid.
func TestExportImportRoundTrip(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	campPath := domain.CampaignPath("acme", "Summer Sale")
	require.NoError(t, store.Set(ctx, campPath, port.Document{
		"displayName": "Summer Sale",
		"bidStrategy": string(domain.BidMaximizeClicks),
		"dailyBudget": "100",
		"maxCpc":      "2.50",
	}, false))
	require.NoError(t, store.Set(ctx, domain.AdGroupPath("acme", "Summer Sale", "Shoes"), port.Document{
		"displayName": "Shoes",
	}, false))

	text, err := svc.ExportCampaign(ctx, campPath)
	require.NoError(t, err)

	tree, err := svc.ImportFromText(ctx, "acme2", "Acme Two", text)
	require.NoError(t, err)
	require.Len(t, tree.Campaigns, 1)
	camp := tree.Campaigns[0]
	assert.Equal(t, domain.BidMaximizeClicks, camp.Settings.BidStrategy)
	assert.Equal(t, "100", camp.Settings.DailyBudget)
	assert.Equal(t, "2.50", camp.Settings.MaxCPC)
	require.Len(t, camp.AdGroups, 1)
	assert.Equal(t, "Shoes", camp.AdGroups[0].DisplayName)
}

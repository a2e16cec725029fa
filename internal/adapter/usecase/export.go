package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"campsync/internal/core/domain"
	"campsync/internal/core/port"
)

// ExportCampaign serializes the campaign at path and its ad groups into
// tab-separated text. The header is a fixed prefix, then the columns the
// campaign's bid strategy contributes, then a fixed suffix; body cells are
// rendered strictly in header order because the downstream import tool
// matches cells to columns positionally.
func (s *SyncService) ExportCampaign(ctx context.Context, path string) (string, error) {
	level, keys, err := domain.ParsePath(path)
	if err != nil {
		return "", err
	}
	if level != domain.LevelCampaign {
		return "", fmt.Errorf("export expects a campaign path, got %s %q", level, path)
	}

	doc, err := s.store.Get(ctx, path)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return "", fmt.Errorf("campaign %q not found", path)
		}
		return "", fmt.Errorf("read campaign %q: %w", path, err)
	}
	camp := campaignFromDoc(keys[1], doc)

	collection := domain.ChildCollection(level, path)
	groupKeys, err := s.store.ListChildren(ctx, collection)
	if err != nil {
		return "", fmt.Errorf("list ad groups of %q: %w", path, err)
	}
	groups := make([]*domain.AdGroup, 0, len(groupKeys))
	for _, key := range groupKeys {
		gd, err := s.store.Get(ctx, collection+"/"+key)
		if err != nil {
			return "", fmt.Errorf("read ad group %q: %w", key, err)
		}
		groups = append(groups, adGroupFromDoc(key, gd))
	}

	header := exportHeader(camp.Settings.BidStrategy)
	lines := make([]string, 0, len(groups)+2)
	lines = append(lines, renderRow(header, nil))
	lines = append(lines, renderRow(header, campaignRow(camp)))
	for _, g := range groups {
		lines = append(lines, renderRow(header, adGroupRow(camp, g)))
	}
	return strings.Join(lines, "\n"), nil
}

func exportHeader(bs domain.BidStrategy) []string {
	header := make([]string, 0, len(exportPrefix)+2+len(exportSuffix))
	header = append(header, exportPrefix...)
	header = append(header, strategyColumns[bs]...)
	header = append(header, exportSuffix...)
	return header
}

// campaignRow renders the settings row: campaign fields populated, ad group
// fields blank.
func campaignRow(c *domain.Campaign) map[string]string {
	row := map[string]string{
		colCampaign:       c.DisplayName,
		colStatus:         string(c.Status),
		colCampaignStatus: string(c.Status),
		colCampaignType:   c.Settings.CampaignType,
		colNetworks:       strings.Join(c.Settings.Networks, ";"),
		colBudget:         c.Settings.DailyBudget,
		colLanguages:      strings.Join(c.Settings.Languages, ";"),
		colBidStrategy:    string(c.Settings.BidStrategy),

		colAdRotation:      c.Settings.AdRotation,
		colTargetingMethod: c.Settings.TargetingMethod,
		colLocation:        c.Settings.Location,
		colBroadMatch:      c.Settings.BroadMatchKeywords,
		colStartDate:       c.Settings.StartDate,
		colEndDate:         c.Settings.EndDate,
		colLabels:          c.Settings.Labels,
	}
	for _, col := range strategyColumns[c.Settings.BidStrategy] {
		switch col {
		case colMaxCPCLimit:
			row[col] = c.Settings.MaxCPC
		case colTargetCPA:
			row[col] = c.Settings.TargetCPA
		case colTargetROAS:
			row[col] = c.Settings.TargetROAS
		case colTargetImprShare:
			row[col] = c.Settings.TargetImpressionShare
		}
	}
	return row
}

// adGroupRow renders one ad group: campaign name repeated so the file stays
// importable, everything else blank except the group's own fields. The
// group bid lands in the strategy-specific column when the strategy has
// one, in the plain Max CPC column otherwise.
func adGroupRow(c *domain.Campaign, g *domain.AdGroup) map[string]string {
	row := map[string]string{
		colCampaign:      c.DisplayName,
		colAdGroup:       g.DisplayName,
		colStatus:        string(g.Status),
		colAdGroupStatus: string(g.Status),

		colFirstPageBid:     g.FirstPageBid,
		colTopOfPageBid:     g.TopOfPageBid,
		colFirstPositionBid: g.FirstPositionBid,
	}
	hasLimitCol := false
	for _, col := range strategyColumns[c.Settings.BidStrategy] {
		if col == colMaxCPCLimit {
			hasLimitCol = true
		}
	}
	if hasLimitCol {
		row[colMaxCPCLimit] = g.MaxCPC
	} else {
		row[colMaxCPC] = g.MaxCPC
	}
	return row
}

func renderRow(header []string, values map[string]string) string {
	cells := make([]string, len(header))
	for i, col := range header {
		if values == nil {
			cells[i] = escapeCell(col)
		} else {
			cells[i] = escapeCell(values[col])
		}
	}
	return strings.Join(cells, "\t")
}

// escapeCell doubles embedded quote characters so the downstream tool can
// round-trip the value.
func escapeCell(s string) string {
	if !strings.Contains(s, `"`) {
		return s
	}
	return strings.ReplaceAll(s, `"`, `""`)
}

package usecase

import "campsync/internal/core/domain"

// aggregateSettings reconstructs one authoritative settings record per
// campaign from rows that each carry only a fragment of them. Real exports
// put the full campaign settings on the first ad group's row and leave the
// columns blank on the rest, so the pass applies non-empty-value overwrite:
// a blank cell never clears a value a previous row supplied.
//
// Rows naming the sentinel campaign are scanned but contribute to no
// campaign. The map is keyed by campaign display name.
func aggregateSettings(rows []row, sentinel string) map[string]*domain.CampaignSettings {
	out := make(map[string]*domain.CampaignSettings)
	for _, r := range rows {
		name := r.get(colCampaign)
		if name == "" || name == sentinel {
			continue
		}
		s := out[name]
		if s == nil {
			s = &domain.CampaignSettings{}
			out[name] = s
		}
		applyRowSettings(s, r)
	}
	for _, s := range out {
		s.BidStrategy = domain.ClassifyBidStrategy(s.BidStrategyLabel)
	}
	return out
}

func applyRowSettings(s *domain.CampaignSettings, r row) {
	setIf(&s.DailyBudget, domain.CleanNumeric(r.get(colBudget)))
	setIf(&s.CampaignType, r.get(colCampaignType))
	setIf(&s.AdRotation, r.get(colAdRotation))
	setIf(&s.Location, r.get(colLocation))
	setIf(&s.BroadMatchKeywords, r.get(colBroadMatch))
	setIf(&s.TargetingMethod, r.get(colTargetingMethod))
	setIf(&s.StartDate, r.get(colStartDate))
	setIf(&s.EndDate, r.get(colEndDate))

	if v := domain.SplitList(r.get(colNetworks)); len(v) > 0 {
		s.Networks = v
	}
	if v := domain.SplitList(r.get(colLanguages)); len(v) > 0 {
		s.Languages = v
	}

	setIf(&s.MaxCPC, domain.CleanNumeric(r.first(colMaxCPC, colMaxCPCLimit)))
	setIf(&s.TargetCPA, domain.CleanNumeric(r.get(colTargetCPA)))
	setIf(&s.TargetROAS, domain.CleanNumeric(r.get(colTargetROAS)))
	setIf(&s.TargetImpressionShare, domain.CleanNumeric(r.get(colTargetImprShare)))

	// The strategy label can arrive under three legacy headers. A later
	// exact canonical label overrides an earlier fuzzy one; otherwise any
	// non-empty label wins over the current value.
	if label := r.first(bidStrategyAliases...); label != "" {
		if s.BidStrategyLabel == "" || domain.IsExactBidStrategyLabel(label) ||
			!domain.IsExactBidStrategyLabel(s.BidStrategyLabel) {
			s.BidStrategyLabel = label
		}
	}
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

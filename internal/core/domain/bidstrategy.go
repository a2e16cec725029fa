package domain

import "strings"

// BidStrategy is the closed set of bid strategies a campaign can carry. The
// string values are the canonical display labels used on export.
type BidStrategy string

const (
	BidManualCPC               BidStrategy = "Manual CPC"
	BidMaximizeClicks          BidStrategy = "Maximize clicks"
	BidMaximizeConversions     BidStrategy = "Maximize conversions"
	BidMaximizeConversionValue BidStrategy = "Maximize conversion value"
	BidTargetImpressionShare   BidStrategy = "Target impression share"
	BidTargetCPA               BidStrategy = "Target CPA"
	BidTargetROAS              BidStrategy = "Target ROAS"
)

// AllBidStrategies lists every strategy in a stable order.
var AllBidStrategies = []BidStrategy{
	BidManualCPC,
	BidMaximizeClicks,
	BidMaximizeConversions,
	BidMaximizeConversionValue,
	BidTargetImpressionShare,
	BidTargetCPA,
	BidTargetROAS,
}

// ClassifyBidStrategy maps a free-text bid strategy label onto a
// BidStrategy. It is a total function: exact label match first, then keyword
// heuristics in fixed precedence, and Manual CPC for anything else.
// Spreadsheet exports carry non-standard labels ("max clicks", "tCPA"), so
// an unrecognized label resolves to the conservative default instead of
// failing the import.
func ClassifyBidStrategy(raw string) BidStrategy {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return BidManualCPC
	}
	for _, b := range AllBidStrategies {
		if s == strings.ToLower(string(b)) {
			return b
		}
	}
	has := func(sub string) bool { return strings.Contains(s, sub) }
	switch {
	case has("manual") || (has("cpc") && !has("maximize")):
		return BidManualCPC
	case has("maximize") && has("click"):
		return BidMaximizeClicks
	case has("maximize") && has("conversion") && !has("value"):
		return BidMaximizeConversions
	case has("maximize") && has("conversion") && has("value"):
		return BidMaximizeConversionValue
	case (has("target") && has("impression")) || has("impression share"):
		return BidTargetImpressionShare
	case has("target") && has("cpa"):
		return BidTargetCPA
	case has("target") && has("roas"):
		return BidTargetROAS
	case has("max") && has("click"):
		return BidMaximizeClicks
	}
	return BidManualCPC
}

// IsExactBidStrategyLabel reports whether the label matches one of the
// canonical display strings, ignoring case. The settings aggregator lets an
// exact label override an earlier fuzzy one.
func IsExactBidStrategyLabel(raw string) bool {
	s := strings.ToLower(strings.TrimSpace(raw))
	for _, b := range AllBidStrategies {
		if s == strings.ToLower(string(b)) {
			return true
		}
	}
	return false
}

package usecase

import "campsync/internal/core/domain"

// Column names of the tabular format. The importer reads them permissively
// (missing columns default to empty); the exporter must emit them in exactly
// the header order or the downstream import tool rejects the file.
const (
	colCampaign       = "Campaign"
	colAdGroup        = "Ad Group"
	colAdType         = "Ad type"
	colStatus         = "Status"
	colCampaignStatus = "Campaign Status"
	colAdGroupStatus  = "Ad Group Status"
	colCampaignType   = "Campaign Type"
	colNetworks       = "Networks"
	colBudget         = "Budget"
	colLanguages      = "Languages"
	colBidStrategy    = "Bid Strategy Type"

	colMaxCPC           = "Max CPC"
	colMaxCPCLimit      = "Maximum CPC bid limit"
	colTargetCPA        = "Target CPA"
	colTargetROAS       = "Target ROAS"
	colTargetImprShare  = "Target impression share"
	colFirstPageBid     = "First page bid"
	colTopOfPageBid     = "Top of page bid"
	colFirstPositionBid = "First position bid"

	colAdRotation      = "Ad Rotation"
	colTargetingMethod = "Targeting method"
	colLocation        = "Location"
	colBroadMatch      = "Broad match keywords"
	colStartDate       = "Start Date"
	colEndDate         = "End Date"
	colLabels          = "Labels"

	colPath1    = "Path 1"
	colPath2    = "Path 2"
	colFinalURL = "Final URL"

	headlinePrefix    = "Headline "
	descriptionPrefix = "Description "
	positionSuffix    = " position"

	maxHeadlines    = 15
	maxDescriptions = 4

	maxHeadlinePin    = 3
	maxDescriptionPin = 2
)

// adTypeResponsiveSearch gates ad creation: rows carrying any other ad type
// still contribute an ad group but no ad.
const adTypeResponsiveSearch = "Responsive search ad"

// bidStrategyAliases are the legacy header spellings a bid strategy label
// may arrive under, checked in order.
var bidStrategyAliases = []string{colBidStrategy, "Bid Strategy", "BidStrategyType"}

// strategyColumns selects the extra export columns for a bid strategy. The
// slice order is the column order in the header.
var strategyColumns = map[domain.BidStrategy][]string{
	domain.BidManualCPC:               nil,
	domain.BidMaximizeClicks:          {colMaxCPCLimit},
	domain.BidMaximizeConversions:     {colTargetCPA},
	domain.BidMaximizeConversionValue: {colTargetROAS},
	domain.BidTargetImpressionShare:   {colTargetImprShare, colMaxCPCLimit},
	domain.BidTargetCPA:               {colTargetCPA},
	domain.BidTargetROAS:              {colTargetROAS},
}

// exportPrefix and exportSuffix frame the strategy-specific columns in the
// export header.
var exportPrefix = []string{
	colCampaign, colAdGroup, colStatus, colCampaignStatus, colAdGroupStatus,
	colCampaignType, colNetworks, colBudget, colLanguages, colBidStrategy,
}

var exportSuffix = []string{
	colMaxCPC, colFirstPageBid, colTopOfPageBid, colFirstPositionBid,
	colAdRotation, colTargetingMethod, colLocation, colBroadMatch,
	colStartDate, colEndDate, colLabels,
}

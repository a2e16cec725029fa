package usecase

import (
	"campsync/internal/core/domain"
	"campsync/internal/core/port"
)

// Document field names. Ads store their external analytics cross-reference
// under fieldXref; it is owned elsewhere and only carried through here.
const (
	fieldDisplayName = "displayName"
	fieldStatus      = "status"
	fieldXref        = "xrefId"
)

// Converters between domain nodes and store documents. Docs written with
// merge semantics (client, campaign, ad group) omit empty fields so a
// partial payload never clears a stored value; ad docs are written as full
// replacements and include everything.

func clientDoc(c *domain.Client) port.Document {
	d := port.Document{fieldStatus: string(c.Status)}
	putIf(d, fieldDisplayName, c.DisplayName)
	return d
}

func campaignDoc(c *domain.Campaign) port.Document {
	d := port.Document{fieldStatus: string(c.Status)}
	putIf(d, fieldDisplayName, c.DisplayName)
	putIf(d, "dailyBudget", c.Settings.DailyBudget)
	putIf(d, "campaignType", c.Settings.CampaignType)
	putList(d, "networks", c.Settings.Networks)
	putList(d, "languages", c.Settings.Languages)
	d["bidStrategy"] = string(c.Settings.BidStrategy)
	putIf(d, "bidStrategyLabel", c.Settings.BidStrategyLabel)
	putIf(d, "maxCpc", c.Settings.MaxCPC)
	putIf(d, "targetCpa", c.Settings.TargetCPA)
	putIf(d, "targetRoas", c.Settings.TargetROAS)
	putIf(d, "targetImpressionShare", c.Settings.TargetImpressionShare)
	putIf(d, "adRotation", c.Settings.AdRotation)
	putIf(d, "location", c.Settings.Location)
	putIf(d, "broadMatchKeywords", c.Settings.BroadMatchKeywords)
	putIf(d, "targetingMethod", c.Settings.TargetingMethod)
	putIf(d, "labels", c.Settings.Labels)
	putIf(d, "startDate", c.Settings.StartDate)
	putIf(d, "endDate", c.Settings.EndDate)
	return d
}

func adGroupDoc(g *domain.AdGroup) port.Document {
	d := port.Document{fieldStatus: string(g.Status)}
	putIf(d, fieldDisplayName, g.DisplayName)
	putIf(d, "maxCpc", g.MaxCPC)
	putIf(d, "firstPageBid", g.FirstPageBid)
	putIf(d, "topOfPageBid", g.TopOfPageBid)
	putIf(d, "firstPositionBid", g.FirstPositionBid)
	return d
}

func adDoc(a *domain.Ad) port.Document {
	return port.Document{
		fieldDisplayName: a.DisplayName,
		fieldStatus:      string(a.Status),
		"headlines":      assetMaps(a.Headlines),
		"descriptions":   assetMaps(a.Descriptions),
		"paths":          anyList(a.Paths),
		"finalUrls":      anyList(a.FinalURLs),
		"labels":         anyList(a.Labels),
		fieldXref:        a.XrefID,
	}
}

func campaignFromDoc(key string, d port.Document) *domain.Campaign {
	c := &domain.Campaign{
		Key:         key,
		DisplayName: docStr(d, fieldDisplayName),
		Status:      domain.NormalizeStatus(docStr(d, fieldStatus)),
	}
	if c.DisplayName == "" {
		c.DisplayName = key
	}
	c.Settings = domain.CampaignSettings{
		DailyBudget:           docStr(d, "dailyBudget"),
		CampaignType:          docStr(d, "campaignType"),
		Networks:              docStrList(d, "networks"),
		Languages:             docStrList(d, "languages"),
		BidStrategy:           domain.ClassifyBidStrategy(docStr(d, "bidStrategy")),
		BidStrategyLabel:      docStr(d, "bidStrategyLabel"),
		MaxCPC:                docStr(d, "maxCpc"),
		TargetCPA:             docStr(d, "targetCpa"),
		TargetROAS:            docStr(d, "targetRoas"),
		TargetImpressionShare: docStr(d, "targetImpressionShare"),
		AdRotation:            docStr(d, "adRotation"),
		Location:              docStr(d, "location"),
		BroadMatchKeywords:    docStr(d, "broadMatchKeywords"),
		TargetingMethod:       docStr(d, "targetingMethod"),
		Labels:                docStr(d, "labels"),
		StartDate:             docStr(d, "startDate"),
		EndDate:               docStr(d, "endDate"),
	}
	return c
}

func adGroupFromDoc(key string, d port.Document) *domain.AdGroup {
	g := &domain.AdGroup{
		Key:         key,
		DisplayName: docStr(d, fieldDisplayName),
		Status:      domain.NormalizeStatus(docStr(d, fieldStatus)),

		MaxCPC:           docStr(d, "maxCpc"),
		FirstPageBid:     docStr(d, "firstPageBid"),
		TopOfPageBid:     docStr(d, "topOfPageBid"),
		FirstPositionBid: docStr(d, "firstPositionBid"),
	}
	if g.DisplayName == "" {
		g.DisplayName = key
	}
	return g
}

func putIf(d port.Document, key, v string) {
	if v != "" {
		d[key] = v
	}
}

func putList(d port.Document, key string, v []string) {
	if len(v) > 0 {
		d[key] = anyList(v)
	}
}

func assetMaps(assets []domain.Asset) []any {
	out := make([]any, 0, len(assets))
	for _, a := range assets {
		m := map[string]any{"text": a.Text}
		if a.Pin > 0 {
			m["pin"] = float64(a.Pin)
		}
		out = append(out, m)
	}
	return out
}

func anyList(ss []string) []any {
	out := make([]any, 0, len(ss))
	for _, s := range ss {
		out = append(out, s)
	}
	return out
}

// Documents round-trip through JSON, so values come back as string,
// float64, []any and map[string]any. A field of an unexpected type reads
// as absent.

func docStr(d port.Document, key string) string {
	if v, ok := d[key].(string); ok {
		return v
	}
	return ""
}

func docStrList(d port.Document, key string) []string {
	raw, ok := d[key].([]any)
	if !ok || len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

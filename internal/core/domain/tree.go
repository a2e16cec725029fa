package domain

// Client is the root of a campaign hierarchy. A client owns zero or more
// campaigns; no entity below it may outlive it.
type Client struct {
	Key         string
	DisplayName string
	Status      Status
	Campaigns   []*Campaign
}

// Campaign groups ad groups under a client and carries the settings that
// apply to every descendant: budget, networks, languages and the bid
// strategy with its strategy-specific numeric fields.
type Campaign struct {
	Key         string
	DisplayName string
	Status      Status
	Settings    CampaignSettings
	AdGroups    []*AdGroup
}

// CampaignSettings holds campaign-level configuration reconstructed from
// tabular imports. Numeric fields are kept as strings: exports carry them
// as free text and an unparseable cell resolves to "" rather than an error.
// Only the fields relevant to BidStrategy are populated; the rest stay empty.
type CampaignSettings struct {
	DailyBudget  string
	CampaignType string
	Networks     []string
	Languages    []string

	BidStrategy      BidStrategy
	BidStrategyLabel string

	MaxCPC                string
	TargetCPA             string
	TargetROAS            string
	TargetImpressionShare string

	AdRotation         string
	Location           string
	BroadMatchKeywords string
	TargetingMethod    string
	Labels             string
	StartDate          string
	EndDate            string
}

// AdGroup sits between a campaign and its ads. The bid fields are optional
// per-group overrides of the campaign-level strategy values.
type AdGroup struct {
	Key         string
	DisplayName string
	Status      Status

	MaxCPC           string
	FirstPageBid     string
	TopOfPageBid     string
	FirstPositionBid string

	Ads []*Ad
}

// Asset is a single headline or description with an optional pin. A pin is
// an advisory ordering hint (1-3 for headlines, 1-2 for descriptions) and
// never affects identity; zero means unpinned.
type Asset struct {
	Text string
	Pin  int
}

// Ad is a leaf of the hierarchy. Headlines and descriptions are ordered and
// must be carried through unchanged: the engine never truncates or
// re-validates their text. XrefID is a foreign key into analytics data this
// engine does not own; it must survive full-replace writes verbatim.
type Ad struct {
	Key         string
	DisplayName string
	Status      Status

	Headlines    []Asset
	Descriptions []Asset
	Paths        []string
	FinalURLs    []string
	Labels       []string

	XrefID string
}

// Campaign returns the child campaign with the given key, or nil.
func (c *Client) Campaign(key string) *Campaign {
	for _, camp := range c.Campaigns {
		if camp.Key == key {
			return camp
		}
	}
	return nil
}

// AdGroup returns the child ad group with the given key, or nil.
func (c *Campaign) AdGroup(key string) *AdGroup {
	for _, g := range c.AdGroups {
		if g.Key == key {
			return g
		}
	}
	return nil
}

// Ad returns the child ad with the given key, or nil.
func (g *AdGroup) Ad(key string) *Ad {
	for _, a := range g.Ads {
		if a.Key == key {
			return a
		}
	}
	return nil
}

package usecase

import (
	"fmt"

	"campsync/internal/core/domain"
	"campsync/internal/core/port"
)

// buildTree turns parsed rows plus aggregated settings into a hierarchy
// rooted at one client. Structurally invalid rows are skipped, never fatal:
// a row without a campaign (or naming the sentinel) is dropped entirely, a
// row without an ad group keeps the campaign but adds nothing below it, and
// only "Responsive search ad" rows produce an ad.
func buildTree(clientKey, clientName string, rows []row,
	settings map[string]*domain.CampaignSettings, cfg ImportConfig) (*domain.Client, error) {

	client := &domain.Client{
		Key:         clientKey,
		DisplayName: clientName,
		Status:      domain.StatusActive,
	}

	for _, r := range rows {
		campName := r.get(colCampaign)
		if campName == "" || campName == cfg.SentinelCampaign {
			continue
		}
		campKey := domain.StorageKey(campName)
		if campKey == "" {
			continue
		}
		camp := client.Campaign(campKey)
		if camp == nil {
			camp = &domain.Campaign{
				Key:         campKey,
				DisplayName: campName,
				Status:      domain.NormalizeStatus(r.first(colCampaignStatus, colStatus)),
			}
			if s := settings[campName]; s != nil {
				camp.Settings = *s
			} else {
				camp.Settings.BidStrategy = domain.BidManualCPC
			}
			client.Campaigns = append(client.Campaigns, camp)
		}

		groupName := r.get(colAdGroup)
		if groupName == "" {
			continue
		}
		groupKey := domain.StorageKey(groupName)
		if groupKey == "" {
			continue
		}
		group := camp.AdGroup(groupKey)
		if group == nil {
			group = &domain.AdGroup{
				Key:         groupKey,
				DisplayName: groupName,
				Status:      domain.NormalizeStatus(r.first(colAdGroupStatus, colStatus)),
			}
			camp.AdGroups = append(camp.AdGroups, group)
		}
		setIf(&group.MaxCPC, domain.CleanNumeric(r.get(colMaxCPC)))
		setIf(&group.FirstPageBid, domain.CleanNumeric(r.get(colFirstPageBid)))
		setIf(&group.TopOfPageBid, domain.CleanNumeric(r.get(colTopOfPageBid)))
		setIf(&group.FirstPositionBid, domain.CleanNumeric(r.get(colFirstPositionBid)))

		if r.get(colAdType) != adTypeResponsiveSearch {
			continue
		}
		ad := buildAd(r, groupName, cfg)
		if ad == nil {
			continue
		}
		if group.Ad(ad.Key) == nil {
			group.Ads = append(group.Ads, ad)
		}
	}

	// Campaigns that gathered settings but no ad groups carry nothing worth
	// persisting.
	kept := client.Campaigns[:0]
	for _, camp := range client.Campaigns {
		if len(camp.AdGroups) > 0 {
			kept = append(kept, camp)
		}
	}
	client.Campaigns = kept
	if len(client.Campaigns) == 0 {
		return nil, port.ErrNoValidCampaigns
	}
	return client, nil
}

func buildAd(r row, groupName string, cfg ImportConfig) *domain.Ad {
	ad := &domain.Ad{
		Status: domain.NormalizeStatus(r.get(colStatus)),
	}

	for i := 1; i <= maxHeadlines; i++ {
		col := fmt.Sprintf("%s%d", headlinePrefix, i)
		if text := r.get(col); text != "" {
			ad.Headlines = append(ad.Headlines, domain.Asset{
				Text: text,
				Pin:  parsePin(r.get(col+positionSuffix), maxHeadlinePin),
			})
		}
	}
	for i := 1; i <= maxDescriptions; i++ {
		col := fmt.Sprintf("%s%d", descriptionPrefix, i)
		if text := r.get(col); text != "" {
			ad.Descriptions = append(ad.Descriptions, domain.Asset{
				Text: text,
				Pin:  parsePin(r.get(col+positionSuffix), maxDescriptionPin),
			})
		}
	}
	for _, col := range []string{colPath1, colPath2} {
		if v := r.get(col); v != "" {
			ad.Paths = append(ad.Paths, v)
		}
	}
	if v := r.get(colFinalURL); v != "" {
		ad.FinalURLs = append(ad.FinalURLs, v)
	}
	ad.Labels = domain.SplitList(r.get(colLabels))

	// Display name fallback chain: the ad group name when it equals the
	// configured passthrough value, else the first headline, else the ad
	// group name again.
	switch {
	case groupName == cfg.PassthroughAdName:
		ad.DisplayName = groupName
	case len(ad.Headlines) > 0:
		ad.DisplayName = ad.Headlines[0].Text
	default:
		ad.DisplayName = groupName
	}
	ad.Key = domain.StorageKey(ad.DisplayName)
	if ad.Key == "" {
		return nil
	}
	return ad
}

// parsePin reads a "Headline N position" style cell. Valid pins run from 1
// to the asset kind's maximum (3 for headlines, 2 for descriptions);
// out-of-range and unparseable cells mean unpinned.
func parsePin(s string, max int) int {
	var pin int
	switch domain.CleanField(s) {
	case "1":
		pin = 1
	case "2":
		pin = 2
	case "3":
		pin = 3
	}
	if pin > max {
		return 0
	}
	return pin
}

package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"campsync/internal/core/domain"
)

// Seed inserts a small demo hierarchy for local runs: one client, two
// campaigns with different bid strategies, a couple of ad groups each and
// one responsive search ad per group, plus the matching ad_index rows.
// Inserts are upserts, so reseeding an existing database is harmless.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	const clientKey = "Demo Client"

	put := func(path string, doc map[string]any) error {
		raw, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		_, err = pool.Exec(ctx, `INSERT INTO documents (path, parent, data, updated_at)
            VALUES ($1, $2, $3, now())
            ON CONFLICT (path) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
			path, domain.ParentPath(path), raw)
		return err
	}

	if err := put(domain.ClientPath(clientKey), map[string]any{
		"displayName": clientKey,
		"status":      string(domain.StatusActive),
	}); err != nil {
		return err
	}

	campaigns := []struct {
		name     string
		strategy domain.BidStrategy
		budget   string
		extra    map[string]any
	}{
		{"Summer Sale", domain.BidMaximizeClicks, "100", map[string]any{"maxCpc": "2.50"}},
		{"Brand Awareness", domain.BidTargetImpressionShare, "250", map[string]any{
			"targetImpressionShare": "65", "maxCpc": "1.20",
		}},
	}

	for ci, c := range campaigns {
		campKey := domain.StorageKey(c.name)
		doc := map[string]any{
			"displayName": c.name,
			"status":      string(domain.StatusActive),
			"dailyBudget": c.budget,
			"bidStrategy": string(c.strategy),
			"networks":    []string{"Google search", "Search partners"},
			"languages":   []string{"en"},
		}
		for k, v := range c.extra {
			doc[k] = v
		}
		if err := put(domain.CampaignPath(clientKey, campKey), doc); err != nil {
			return err
		}

		for gi := 1; gi <= 2; gi++ {
			groupName := fmt.Sprintf("Ad Group %d-%d", ci+1, gi)
			groupKey := domain.StorageKey(groupName)
			if err := put(domain.AdGroupPath(clientKey, campKey, groupKey), map[string]any{
				"displayName": groupName,
				"status":      string(domain.StatusActive),
				"maxCpc":      "1.00",
			}); err != nil {
				return err
			}

			adName := fmt.Sprintf("Headline %d-%d", ci+1, gi)
			adKey := domain.StorageKey(adName)
			if err := put(domain.AdPath(clientKey, campKey, groupKey, adKey), map[string]any{
				"displayName": adName,
				"status":      string(domain.StatusActive),
				"headlines": []map[string]any{
					{"text": adName, "pin": 1},
					{"text": "Shop Today"},
				},
				"descriptions": []map[string]any{
					{"text": "Free shipping on every order."},
				},
				"paths":     []string{"deals"},
				"finalUrls": []string{"https://example.com/deals"},
			}); err != nil {
				return err
			}

			_, err := pool.Exec(ctx, `INSERT INTO ad_index
                (id, client_key, campaign_key, ad_group_key, ad_key, display_name, created_at)
                VALUES ($1, $2, $3, $4, $5, $6, now())
                ON CONFLICT (client_key, campaign_key, ad_group_key, ad_key) DO NOTHING`,
				uuid.NewString(), clientKey, campKey, groupKey, adKey, adName)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

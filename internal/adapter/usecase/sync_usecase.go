package usecase

import (
	"context"
	"log/slog"

	"campsync/internal/core/domain"
	"campsync/internal/core/port"
)

// ImportConfig carries the tunable names the import pipeline keys on.
type ImportConfig struct {
	// SentinelCampaign is the reserved campaign name marking rows that
	// contribute only to settings aggregation, never to the tree.
	SentinelCampaign string
	// PassthroughAdName is the ad group name whose ads keep the group name
	// as their own instead of deriving it from the first headline.
	PassthroughAdName string
}

// SyncService implements port.SyncUseCase on top of a DocumentStore. It
// owns no state beyond its dependencies; each operation runs to completion
// or failure before returning and every mutating primitive is idempotent,
// so a partial failure is always safe to retry.
type SyncService struct {
	store  port.DocumentStore
	logger *slog.Logger
	cfg    ImportConfig
}

// NewSyncService creates the engine with the provided store and logger.
func NewSyncService(store port.DocumentStore, logger *slog.Logger, cfg ImportConfig) *SyncService {
	if cfg.SentinelCampaign == "" {
		cfg.SentinelCampaign = "Generic"
	}
	if cfg.PassthroughAdName == "" {
		cfg.PassthroughAdName = cfg.SentinelCampaign
	}
	return &SyncService{store: store, logger: logger, cfg: cfg}
}

// ImportFromText parses tab-separated text into a tree rooted at the given
// client. It is pure with respect to the store: either a fully-built tree
// comes back, or a single input error and nothing was written.
func (s *SyncService) ImportFromText(ctx context.Context, clientKey, clientName, text string) (*domain.Client, error) {
	rows, err := parseTabular(text)
	if err != nil {
		return nil, err
	}

	settings := aggregateSettings(rows, s.cfg.SentinelCampaign)
	for name, st := range settings {
		if st.BidStrategyLabel != "" && st.BidStrategy == domain.BidManualCPC &&
			!domain.IsExactBidStrategyLabel(st.BidStrategyLabel) {
			// Fallback classification can mask data-entry errors; leave a
			// trace without failing the import.
			s.logger.DebugContext(ctx, "bid strategy label fell back to Manual CPC",
				slog.String("campaign", name),
				slog.String("label", st.BidStrategyLabel))
		}
	}

	client, err := buildTree(clientKey, clientName, rows, settings, s.cfg)
	if err != nil {
		return nil, err
	}
	return client, nil
}

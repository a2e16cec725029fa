package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"campsync/internal/core/domain"
	"campsync/internal/core/port"
)

// SaveTree upserts the tree into the store, strictly parent before child so
// no document ever references an absent parent. Client, campaign and ad
// group documents are written with merge semantics; ad documents are fully
// replaced except for the analytics cross-reference id, which is read back
// and carried over verbatim. The whole walk is idempotent but not atomic:
// on a partial failure the caller re-runs the save.
func (s *SyncService) SaveTree(ctx context.Context, client *domain.Client) error {
	clientPath := domain.ClientPath(client.Key)
	if err := s.store.Set(ctx, clientPath, clientDoc(client), true); err != nil {
		return fmt.Errorf("save client %q: %w", client.Key, err)
	}

	for _, camp := range client.Campaigns {
		campPath := domain.CampaignPath(client.Key, camp.Key)
		if err := s.store.Set(ctx, campPath, campaignDoc(camp), true); err != nil {
			return fmt.Errorf("save campaign %q: %w", campPath, err)
		}
		for _, group := range camp.AdGroups {
			groupPath := domain.AdGroupPath(client.Key, camp.Key, group.Key)
			if err := s.store.Set(ctx, groupPath, adGroupDoc(group), true); err != nil {
				return fmt.Errorf("save ad group %q: %w", groupPath, err)
			}
			for _, ad := range group.Ads {
				if err := s.saveAd(ctx, client.Key, camp.Key, group.Key, ad); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (s *SyncService) saveAd(ctx context.Context, clientKey, campKey, groupKey string, ad *domain.Ad) error {
	path := domain.AdPath(clientKey, campKey, groupKey, ad.Key)

	doc := adDoc(ad)
	if ad.XrefID == "" {
		existing, err := s.store.Get(ctx, path)
		if err != nil && !errors.Is(err, port.ErrNotFound) {
			return fmt.Errorf("read ad %q: %w", path, err)
		}
		if prev := docStr(existing, fieldXref); prev != "" {
			doc[fieldXref] = prev
		}
	}
	if err := s.store.Set(ctx, path, doc, false); err != nil {
		return fmt.Errorf("save ad %q: %w", path, err)
	}

	err := s.store.PutIndexEntry(ctx, port.IndexEntry{
		ID:          uuid.NewString(),
		ClientKey:   clientKey,
		CampaignKey: campKey,
		AdGroupKey:  groupKey,
		AdKey:       ad.Key,
		DisplayName: ad.DisplayName,
	})
	if err != nil {
		return fmt.Errorf("index ad %q: %w", path, err)
	}
	return nil
}

// loadSubtree reads a node and all of its descendants into memory as raw
// documents. The rename engine copies and merges from this snapshot.
type subtree struct {
	level    domain.Level
	key      string
	doc      port.Document
	children []*subtree
}

func (s *SyncService) loadSubtree(ctx context.Context, level domain.Level, path string) (*subtree, error) {
	doc, err := s.store.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	node := &subtree{level: level, key: domain.LastKey(path), doc: doc}
	if level == domain.LevelAd {
		return node, nil
	}

	collection := domain.ChildCollection(level, path)
	keys, err := s.store.ListChildren(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("list children of %q: %w", path, err)
	}
	for _, key := range keys {
		child, err := s.loadSubtree(ctx, level.Child(), collection+"/"+key)
		if err != nil {
			return nil, err
		}
		node.children = append(node.children, child)
	}
	return node, nil
}

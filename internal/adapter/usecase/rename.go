package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"campsync/internal/core/domain"
	"campsync/internal/core/port"
)

// RenameNode relocates the subtree at (level, parentPath, oldKey) to the
// key derived from NewName. When the destination already exists the two
// subtrees are merged instead of overwritten. The source is deleted only
// after the copy or merge finished; a failure partway leaves the source in
// place, favoring data preservation, and the whole operation can be retried
// because every copy uses upsert semantics.
func (s *SyncService) RenameNode(ctx context.Context, req port.RenameReq) error {
	newKey := domain.StorageKey(req.NewName)
	if newKey == "" {
		return fmt.Errorf("new name %q sanitizes to an empty key", req.NewName)
	}
	if req.OldKey == newKey {
		return nil
	}

	srcPath := domain.NodePath(req.Level, req.ParentPath, req.OldKey)
	src, err := s.loadSubtree(ctx, req.Level, srcPath)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return fmt.Errorf("%w: %s %q", port.ErrSourceNotFound, req.Level, srcPath)
		}
		return fmt.Errorf("load source %q: %w", srcPath, err)
	}

	dstPath := domain.NodePath(req.Level, req.ParentPath, newKey)
	_, err = s.store.Get(ctx, dstPath)
	switch {
	case errors.Is(err, port.ErrNotFound):
		if err := s.copySubtree(ctx, src, dstPath, req.NewName); err != nil {
			return fmt.Errorf("copy to %q: %w", dstPath, err)
		}
	case err != nil:
		return fmt.Errorf("read destination %q: %w", dstPath, err)
	default:
		if err := s.mergeSubtree(ctx, src, dstPath); err != nil {
			return fmt.Errorf("merge into %q: %w", dstPath, err)
		}
	}

	if err := s.reindexSubtree(ctx, src, srcPath, dstPath); err != nil {
		return err
	}

	if err := s.deleteSubtreeDocs(ctx, src, srcPath); err != nil {
		return fmt.Errorf("delete source %q after copy: %w", srcPath, err)
	}
	s.logger.InfoContext(ctx, "node renamed",
		slog.String("level", req.Level.String()),
		slog.String("from", srcPath),
		slog.String("to", dstPath))
	return nil
}

// copySubtree writes the snapshot under a new path. The root document gets
// the new display name; descendants are copied verbatim.
func (s *SyncService) copySubtree(ctx context.Context, node *subtree, dstPath, newName string) error {
	doc := make(port.Document, len(node.doc))
	for k, v := range node.doc {
		doc[k] = v
	}
	if newName != "" {
		doc[fieldDisplayName] = newName
	}
	if err := s.store.Set(ctx, dstPath, doc, false); err != nil {
		return err
	}
	for _, child := range node.children {
		childPath := domain.NodePath(child.level, dstPath, child.key)
		if err := s.copySubtree(ctx, child, childPath, ""); err != nil {
			return err
		}
	}
	return nil
}

// mergeSubtree merges the snapshot into an existing destination. Container
// levels merge child by child: absent children are copied, present ones
// recurse. Ad leaves merge by appending the source's headline and
// description lists onto the target's; de-duplication of equal texts is the
// caller's concern, not this layer's.
func (s *SyncService) mergeSubtree(ctx context.Context, node *subtree, dstPath string) error {
	if node.level == domain.LevelAd {
		return s.mergeAdInto(ctx, node.doc, dstPath)
	}
	for _, child := range node.children {
		childPath := domain.NodePath(child.level, dstPath, child.key)
		_, err := s.store.Get(ctx, childPath)
		switch {
		case errors.Is(err, port.ErrNotFound):
			if err := s.copySubtree(ctx, child, childPath, ""); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := s.mergeSubtree(ctx, child, childPath); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *SyncService) mergeAdInto(ctx context.Context, srcDoc port.Document, dstPath string) error {
	dstDoc, err := s.store.Get(ctx, dstPath)
	if err != nil {
		return err
	}
	// A destination whose asset lists already equal the source's is a
	// leftover from an interrupted copy, not a genuine collision. Appending
	// would duplicate every asset each time an interrupted rename is
	// retried.
	if reflect.DeepEqual(dstDoc["headlines"], srcDoc["headlines"]) &&
		reflect.DeepEqual(dstDoc["descriptions"], srcDoc["descriptions"]) {
		return nil
	}
	merged := port.Document{
		"headlines":    appendLists(dstDoc["headlines"], srcDoc["headlines"]),
		"descriptions": appendLists(dstDoc["descriptions"], srcDoc["descriptions"]),
	}
	return s.store.Set(ctx, dstPath, merged, true)
}

func appendLists(dst, src any) []any {
	out, _ := dst.([]any)
	if more, ok := src.([]any); ok {
		out = append(out, more...)
	}
	if out == nil {
		out = []any{}
	}
	return out
}

// reindexSubtree moves the flat-collection entries of every ad in the
// snapshot from the source path to the destination path.
func (s *SyncService) reindexSubtree(ctx context.Context, node *subtree, srcPath, dstPath string) error {
	_, srcKeys, err := domain.ParsePath(srcPath)
	if err != nil {
		return err
	}
	if _, err := s.store.DeleteIndexEntries(ctx, indexRef(srcKeys)); err != nil {
		return fmt.Errorf("drop index entries under %q: %w", srcPath, err)
	}

	_, dstKeys, err := domain.ParsePath(dstPath)
	if err != nil {
		return err
	}
	return s.walkAds(node, dstKeys, func(keys []string, doc port.Document) error {
		return s.store.PutIndexEntry(ctx, port.IndexEntry{
			ClientKey:   keys[0],
			CampaignKey: keys[1],
			AdGroupKey:  keys[2],
			AdKey:       keys[3],
			DisplayName: docStr(doc, fieldDisplayName),
		})
	})
}

// walkAds visits every ad in the snapshot, passing the full key path the ad
// would have when the snapshot is rooted at rootKeys.
func (s *SyncService) walkAds(node *subtree, rootKeys []string, fn func(keys []string, doc port.Document) error) error {
	if node.level == domain.LevelAd {
		return fn(rootKeys, node.doc)
	}
	for _, child := range node.children {
		keys := append(append([]string(nil), rootKeys...), child.key)
		if err := s.walkAds(child, keys, fn); err != nil {
			return err
		}
	}
	return nil
}

// deleteSubtreeDocs removes the snapshot's documents bottom-up, deepest
// descendants first, so a parent is never deleted while children remain.
func (s *SyncService) deleteSubtreeDocs(ctx context.Context, node *subtree, path string) error {
	for _, child := range node.children {
		childPath := domain.NodePath(child.level, path, child.key)
		if err := s.deleteSubtreeDocs(ctx, child, childPath); err != nil {
			return err
		}
	}
	return s.store.Delete(ctx, path)
}

func indexRef(keys []string) port.IndexRef {
	var ref port.IndexRef
	if len(keys) > 0 {
		ref.ClientKey = keys[0]
	}
	if len(keys) > 1 {
		ref.CampaignKey = keys[1]
	}
	if len(keys) > 2 {
		ref.AdGroupKey = keys[2]
	}
	if len(keys) > 3 {
		ref.AdKey = keys[3]
	}
	return ref
}

package usecase

import (
	"context"
	"log/slog"

	"campsync/internal/core/domain"
	"campsync/internal/core/port"
)

// DeleteNode removes the node at path and every descendant, deepest level
// first, then cleans matching flat-collection entries. The cascade is not
// transactional: descendants deleted before a failure stay deleted, and the
// failure comes back as *port.CascadeDeleteError with the level and path
// that stopped it. Retrying is safe, deleting an absent node succeeds.
func (s *SyncService) DeleteNode(ctx context.Context, path string) error {
	level, keys, err := domain.ParsePath(path)
	if err != nil {
		return err
	}

	if err := s.cascadeDelete(ctx, level, path); err != nil {
		return err
	}

	if _, err := s.store.DeleteIndexEntries(ctx, indexRef(keys)); err != nil {
		return &port.CascadeDeleteError{Level: level, Path: path, Err: err}
	}
	s.logger.InfoContext(ctx, "node deleted",
		slog.String("level", level.String()),
		slog.String("path", path))
	return nil
}

func (s *SyncService) cascadeDelete(ctx context.Context, level domain.Level, path string) error {
	if level < domain.LevelAd {
		collection := domain.ChildCollection(level, path)
		keys, err := s.store.ListChildren(ctx, collection)
		if err != nil {
			return &port.CascadeDeleteError{Level: level, Path: path, Err: err}
		}
		for _, key := range keys {
			if err := s.cascadeDelete(ctx, level.Child(), collection+"/"+key); err != nil {
				return err
			}
		}
	}
	if err := s.store.Delete(ctx, path); err != nil {
		return &port.CascadeDeleteError{Level: level, Path: path, Err: err}
	}
	return nil
}

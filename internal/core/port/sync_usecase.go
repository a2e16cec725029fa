package port

import (
	"context"
	"fmt"

	"campsync/internal/core/domain"
)

// RenameReq describes a rename or merge of one node. ParentPath is the
// document path of the node's parent ("" for a client). NewName is the new
// display name; the new storage key is derived from it.
type RenameReq struct {
	Level      domain.Level
	ParentPath string
	OldKey     string
	NewName    string
}

// CascadeDeleteError reports the level and path at which a cascade delete
// stopped. Descendants deleted before the failure stay deleted; retrying
// the same delete is safe because deletion is idempotent on absent nodes.
type CascadeDeleteError struct {
	Level domain.Level
	Path  string
	Err   error
}

func (e *CascadeDeleteError) Error() string {
	return fmt.Sprintf("cascade delete failed at %s %q: %v", e.Level, e.Path, e.Err)
}

func (e *CascadeDeleteError) Unwrap() error { return e.Err }

// SyncUseCase is the inbound port of the hierarchy synchronization engine.
//
// ImportFromText is pure: it returns either a fully-built tree or a single
// input error, with nothing persisted. SaveTree persists a tree with
// idempotent, parent-before-child upserts. The mutation operations act
// directly on the store; callers must serialize structural mutations on
// overlapping subtrees themselves, the store offers no cross-document
// locking.
type SyncUseCase interface {
	// ImportFromText parses tab-separated text into a hierarchy rooted at
	// the given client. Input errors (empty text, no data rows, missing
	// Campaign header, no valid campaigns) are returned before any write.
	ImportFromText(ctx context.Context, clientKey, clientName, text string) (*domain.Client, error)

	// SaveTree upserts the tree level by level, parent before child. It is
	// idempotent but not atomic; on partial failure the caller re-runs it.
	SaveTree(ctx context.Context, client *domain.Client) error

	// RenameNode relocates a subtree to a key derived from NewName. When
	// the destination exists the contents are merged instead; the source
	// is deleted only after the copy or merge completed.
	RenameNode(ctx context.Context, req RenameReq) error

	// DeleteNode removes the node at path with all descendants, deepest
	// first, then cleans matching flat-collection entries. Failures are
	// reported as *CascadeDeleteError.
	DeleteNode(ctx context.Context, path string) error

	// ExportCampaign serializes the campaign at path and its ad groups to
	// tab-separated text with bid-strategy-conditional columns.
	ExportCampaign(ctx context.Context, path string) (string, error)
}

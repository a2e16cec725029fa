package port

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no document exists at the path.
var ErrNotFound = errors.New("document not found")

// Document is the raw field set of one stored node. The store offers
// single-document atomicity only; the engine layers ordering and idempotency
// on top, never multi-path transactions.
type Document = map[string]any

// IndexEntry is one row of the denormalized flat collection that mirrors
// ads for fast listing. It must be kept consistent with the hierarchy:
// upsert writes it, cascade delete removes it.
type IndexEntry struct {
	ID          string
	ClientKey   string
	CampaignKey string
	AdGroupKey  string
	AdKey       string
	DisplayName string
}

// IndexRef selects index entries by key prefix. Empty fields match any
// value, so {ClientKey: "acme"} addresses every entry under the client.
type IndexRef struct {
	ClientKey   string
	CampaignKey string
	AdGroupKey  string
	AdKey       string
}

// DocumentStore is the outbound port onto the external hierarchical store.
// Implementations must make Set and Delete idempotent and must not assume
// cross-document transactions. Paths are built by the domain package
// (domain.ClientPath and friends).
type DocumentStore interface {
	// Get returns the document at path, or ErrNotFound.
	Get(ctx context.Context, path string) (Document, error)
	// Set writes the document. With merge, fields absent from data are
	// preserved; without, the document is replaced whole.
	Set(ctx context.Context, path string, data Document, merge bool) error
	// Delete removes the document at path. Deleting an absent document
	// succeeds.
	Delete(ctx context.Context, path string) error
	// ListChildren returns the sorted keys of documents directly under the
	// collection path.
	ListChildren(ctx context.Context, collectionPath string) ([]string, error)

	// PutIndexEntry upserts a flat-collection row, keyed by the
	// (client, campaign, adGroup, ad) tuple.
	PutIndexEntry(ctx context.Context, e IndexEntry) error
	// DeleteIndexEntries removes every row matching ref and reports how
	// many were removed.
	DeleteIndexEntries(ctx context.Context, ref IndexRef) (int, error)
	// ListIndexEntries returns all rows under a client.
	ListIndexEntries(ctx context.Context, clientKey string) ([]IndexEntry, error)
}

package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campsync/internal/core/domain"
	"campsync/internal/core/port"
)

// DocStore implements port.DocumentStore on PostgreSQL. Documents live in a
// single path-keyed table with a jsonb payload; merge-on-write maps onto
// the jsonb concatenation operator, which gives the same shallow-merge
// semantics as the external store. The flat analytics collection is the
// ad_index table.
type DocStore struct {
	pool *pgxpool.Pool
}

// NewDocStore returns a new store instance.
func NewDocStore(pool *pgxpool.Pool) *DocStore {
	return &DocStore{pool: pool}
}

// Get returns the document at path, or port.ErrNotFound.
func (s *DocStore) Get(ctx context.Context, path string) (port.Document, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT data FROM documents WHERE path = $1`, path).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var doc port.Document
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document %q: %w", path, err)
	}
	return doc, nil
}

// Set upserts the document. With merge, stored fields absent from data are
// preserved via jsonb concatenation; without, the payload replaces the
// stored document whole. Either form is a single-row write, so each call is
// atomic and idempotent.
func (s *DocStore) Set(ctx context.Context, path string, data port.Document, merge bool) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode document %q: %w", path, err)
	}
	parent := domain.ParentPath(path)

	query := `INSERT INTO documents (path, parent, data, updated_at)
        VALUES ($1, $2, $3, now())
        ON CONFLICT (path) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`
	if merge {
		query = `INSERT INTO documents (path, parent, data, updated_at)
        VALUES ($1, $2, $3, now())
        ON CONFLICT (path) DO UPDATE SET data = documents.data || EXCLUDED.data, updated_at = now()`
	}
	_, err = s.pool.Exec(ctx, query, path, parent, raw)
	return err
}

// Delete removes the document at path. Absent documents delete cleanly.
func (s *DocStore) Delete(ctx context.Context, path string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM documents WHERE path = $1`, path)
	return err
}

// ListChildren returns the sorted keys of documents directly under the
// collection path.
func (s *DocStore) ListChildren(ctx context.Context, collectionPath string) ([]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT path FROM documents WHERE parent = $1 ORDER BY path`, collectionPath)
	if err != nil {
		return nil, err
	}
	paths, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(paths))
	for i, p := range paths {
		keys[i] = domain.LastKey(p)
	}
	return keys, nil
}

// PutIndexEntry upserts a flat-collection row keyed by the full key tuple.
// An existing row keeps its id.
func (s *DocStore) PutIndexEntry(ctx context.Context, e port.IndexEntry) error {
	id := e.ID
	if id == "" {
		id = uuid.NewString()
	}
	_, err := s.pool.Exec(ctx, `INSERT INTO ad_index
        (id, client_key, campaign_key, ad_group_key, ad_key, display_name, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, now())
        ON CONFLICT (client_key, campaign_key, ad_group_key, ad_key)
        DO UPDATE SET display_name = EXCLUDED.display_name`,
		id, e.ClientKey, e.CampaignKey, e.AdGroupKey, e.AdKey, e.DisplayName)
	return err
}

// DeleteIndexEntries removes rows matching the ref; empty ref fields match
// any value.
func (s *DocStore) DeleteIndexEntries(ctx context.Context, ref port.IndexRef) (int, error) {
	query := `DELETE FROM ad_index WHERE true`
	args := []any{}
	for _, f := range []struct {
		col string
		val string
	}{
		{"client_key", ref.ClientKey},
		{"campaign_key", ref.CampaignKey},
		{"ad_group_key", ref.AdGroupKey},
		{"ad_key", ref.AdKey},
	} {
		if f.val != "" {
			args = append(args, f.val)
			query += fmt.Sprintf(" AND %s = $%d", f.col, len(args))
		}
	}
	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// ListIndexEntries returns all flat-collection rows under a client.
func (s *DocStore) ListIndexEntries(ctx context.Context, clientKey string) ([]port.IndexEntry, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, client_key, campaign_key, ad_group_key, ad_key, display_name
        FROM ad_index WHERE client_key = $1
        ORDER BY campaign_key, ad_group_key, ad_key`, clientKey)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.IndexEntry, error) {
		var e port.IndexEntry
		err := row.Scan(&e.ID, &e.ClientKey, &e.CampaignKey, &e.AdGroupKey, &e.AdKey, &e.DisplayName)
		return e, err
	})
}

package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"campsync/internal/core/port"
)

// DocStore is an in-memory port.DocumentStore. It backs tests and the
// local no-database mode, and mirrors the semantics of the real store:
// single-document atomicity, shallow merge-on-write, idempotent deletes.
type DocStore struct {
	mu    sync.RWMutex
	docs  map[string]port.Document
	index map[string]port.IndexEntry // keyed by key tuple
}

// NewDocStore returns an empty store.
func NewDocStore() *DocStore {
	return &DocStore{
		docs:  make(map[string]port.Document),
		index: make(map[string]port.IndexEntry),
	}
}

func (s *DocStore) Get(_ context.Context, path string) (port.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[path]
	if !ok {
		return nil, port.ErrNotFound
	}
	return copyDoc(doc), nil
}

func (s *DocStore) Set(_ context.Context, path string, data port.Document, merge bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.docs[path]
	if merge && ok {
		merged := copyDoc(existing)
		for k, v := range data {
			merged[k] = v
		}
		s.docs[path] = merged
		return nil
	}
	s.docs[path] = copyDoc(data)
	return nil
}

func (s *DocStore) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, path)
	return nil
}

func (s *DocStore) ListChildren(_ context.Context, collectionPath string) ([]string, error) {
	prefix := strings.TrimSuffix(collectionPath, "/") + "/"
	s.mu.RLock()
	defer s.mu.RUnlock()
	var keys []string
	for path := range s.docs {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		rest := strings.TrimPrefix(path, prefix)
		if !strings.Contains(rest, "/") {
			keys = append(keys, rest)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *DocStore) PutIndexEntry(_ context.Context, e port.IndexEntry) error {
	key := indexKey(e.ClientKey, e.CampaignKey, e.AdGroupKey, e.AdKey)
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.index[key]; ok {
		e.ID = prev.ID
	} else if e.ID == "" {
		e.ID = uuid.NewString()
	}
	s.index[key] = e
	return nil
}

func (s *DocStore) DeleteIndexEntries(_ context.Context, ref port.IndexRef) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for key, e := range s.index {
		if matchRef(ref, e) {
			delete(s.index, key)
			n++
		}
	}
	return n, nil
}

func (s *DocStore) ListIndexEntries(_ context.Context, clientKey string) ([]port.IndexEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []port.IndexEntry
	for _, e := range s.index {
		if e.ClientKey == clientKey {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return indexKey(out[i].ClientKey, out[i].CampaignKey, out[i].AdGroupKey, out[i].AdKey) <
			indexKey(out[j].ClientKey, out[j].CampaignKey, out[j].AdGroupKey, out[j].AdKey)
	})
	return out, nil
}

// Len reports the number of stored documents.
func (s *DocStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

func matchRef(ref port.IndexRef, e port.IndexEntry) bool {
	if ref.ClientKey != "" && ref.ClientKey != e.ClientKey {
		return false
	}
	if ref.CampaignKey != "" && ref.CampaignKey != e.CampaignKey {
		return false
	}
	if ref.AdGroupKey != "" && ref.AdGroupKey != e.AdGroupKey {
		return false
	}
	if ref.AdKey != "" && ref.AdKey != e.AdKey {
		return false
	}
	return true
}

func indexKey(parts ...string) string {
	return strings.Join(parts, "\x00")
}

// copyDoc clones a document one level deep plus nested lists and maps, the
// shapes documents actually take after a JSON round-trip.
func copyDoc(d port.Document) port.Document {
	out := make(port.Document, len(d))
	for k, v := range d {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = copyValue(e)
		}
		return out
	default:
		return v
	}
}

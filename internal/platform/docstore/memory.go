package docstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/bet-hub/internal/platform/id"
)

type memoryDocument struct {
	data       map[string]any
	createTime time.Time
	updateTime time.Time
	seq        uint64
}

// MemoryStore keeps documents in process memory. It is safe for concurrent
// use and every batch commit happens under a single lock.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]*memoryDocument
	ids         id.Generator
	now         func() time.Time
	seq         uint64
}

type MemoryOption func(*MemoryStore)

func WithIDGenerator(gen id.Generator) MemoryOption {
	return func(s *MemoryStore) {
		if gen != nil {
			s.ids = gen
		}
	}
}

func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		collections: make(map[string]map[string]*memoryDocument),
		ids:         id.NewRandomGenerator(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) Get(ctx context.Context, collection, docID string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	if err := ValidateDocument(collection, docID); err != nil {
		return Document{}, &StoreError{Op: "get", Path: DocumentPath(collection, docID), Err: err}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.collections[collection][docID]
	if !ok {
		return Document{}, fmt.Errorf("%s: %w", DocumentPath(collection, docID), ErrNotFound)
	}
	return s.snapshot(collection, docID, doc)
}

func (s *MemoryStore) Set(ctx context.Context, collection, docID string, data map[string]any, opts ...SetOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	batch := s.Batch()
	batch.Set(collection, docID, data, opts...)
	return batch.Commit(ctx)
}

func (s *MemoryStore) Add(ctx context.Context, collection string, data map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := ValidateCollection(collection); err != nil {
		return "", &StoreError{Op: "add", Path: collection, Err: err}
	}

	docID, err := s.ids.NewID()
	if err != nil {
		return "", &StoreError{Op: "add", Path: collection, Err: err}
	}
	if err := s.Set(ctx, collection, docID, data); err != nil {
		return "", err
	}
	return docID, nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection, docID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	batch := s.Batch()
	batch.Delete(collection, docID)
	return batch.Commit(ctx)
}

func (s *MemoryStore) Query(ctx context.Context, q Query) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := q.Validate(); err != nil {
		return nil, &StoreError{Op: "query", Path: q.Collection, Err: err}
	}

	filters := make([]Filter, 0, len(q.Filters))
	for _, f := range q.Filters {
		value, err := normalizeValue(f.Value)
		if err != nil {
			return nil, &StoreError{Op: "query", Path: q.Collection, Err: fmt.Errorf("filter %s: %w", f.Field, err)}
		}
		filters = append(filters, Filter{Field: f.Field, Value: value})
	}

	s.mu.RLock()
	type candidate struct {
		id  string
		doc *memoryDocument
	}
	matches := make([]candidate, 0)
	for docID, doc := range s.collections[q.Collection] {
		if matchesFilters(doc.data, filters) {
			matches = append(matches, candidate{id: docID, doc: doc})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		left, right := matches[i], matches[j]
		for _, order := range q.Orders {
			var cmp int
			if order.Field == CreateTimeField {
				cmp = left.doc.createTime.Compare(right.doc.createTime)
				if cmp == 0 {
					cmp = compareSeq(left.doc.seq, right.doc.seq)
				}
			} else {
				cmp = compareValues(left.doc.data[order.Field], right.doc.data[order.Field])
			}
			if cmp == 0 {
				continue
			}
			if order.Direction == Desc {
				return cmp > 0
			}
			return cmp < 0
		}
		return left.id < right.id
	})

	if q.Limit > 0 && len(matches) > q.Limit {
		matches = matches[:q.Limit]
	}

	out := make([]Document, 0, len(matches))
	for _, m := range matches {
		doc, err := s.snapshot(q.Collection, m.id, m.doc)
		if err != nil {
			s.mu.RUnlock()
			return nil, err
		}
		out = append(out, doc)
	}
	s.mu.RUnlock()

	return out, nil
}

func (s *MemoryStore) Batch() WriteBatch {
	return &memoryBatch{store: s}
}

// snapshot copies a stored document so callers cannot mutate store state.
func (s *MemoryStore) snapshot(collection, docID string, doc *memoryDocument) (Document, error) {
	data, err := Normalize(doc.data)
	if err != nil {
		return Document{}, &StoreError{Op: "read", Path: DocumentPath(collection, docID), Err: err}
	}
	return Document{
		Collection: collection,
		ID:         docID,
		Data:       data,
		CreateTime: doc.createTime,
		UpdateTime: doc.updateTime,
	}, nil
}

func matchesFilters(data map[string]any, filters []Filter) bool {
	for _, f := range filters {
		value, ok := data[f.Field]
		if !ok || !equalValues(value, f.Value) {
			return false
		}
	}
	return true
}

func compareSeq(left, right uint64) int {
	switch {
	case left < right:
		return -1
	case left > right:
		return 1
	default:
		return 0
	}
}

type memoryWrite struct {
	collection string
	id         string
	data       map[string]any
	merge      bool
	delete     bool
}

type memoryBatch struct {
	store  *MemoryStore
	writes []memoryWrite
}

func (b *memoryBatch) Set(collection, docID string, data map[string]any, opts ...SetOption) {
	b.writes = append(b.writes, memoryWrite{
		collection: collection,
		id:         docID,
		data:       data,
		merge:      applySetOptions(opts).merge,
	})
}

func (b *memoryBatch) Delete(collection, docID string) {
	b.writes = append(b.writes, memoryWrite{collection: collection, id: docID, delete: true})
}

func (b *memoryBatch) Len() int {
	return len(b.writes)
}

func (b *memoryBatch) Commit(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Validate and copy everything before taking the lock so a bad write
	// leaves the store untouched.
	prepared := make([]memoryWrite, 0, len(b.writes))
	for _, w := range b.writes {
		path := DocumentPath(w.collection, w.id)
		if err := ValidateDocument(w.collection, w.id); err != nil {
			return &StoreError{Op: "commit", Path: path, Err: err}
		}
		if !w.delete {
			data, err := Normalize(w.data)
			if err != nil {
				return &StoreError{Op: "commit", Path: path, Err: err}
			}
			w.data = data
		}
		prepared = append(prepared, w)
	}

	s := b.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for _, w := range prepared {
		docs := s.collections[w.collection]
		if w.delete {
			delete(docs, w.id)
			continue
		}
		if docs == nil {
			docs = make(map[string]*memoryDocument)
			s.collections[w.collection] = docs
		}

		existing, ok := docs[w.id]
		if !ok {
			s.seq++
			docs[w.id] = &memoryDocument{data: w.data, createTime: now, updateTime: now, seq: s.seq}
			continue
		}
		if w.merge {
			existing.data = DeepMerge(existing.data, w.data)
		} else {
			existing.data = w.data
		}
		existing.updateTime = now
	}

	return nil
}

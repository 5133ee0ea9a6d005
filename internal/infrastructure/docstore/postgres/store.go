// Package postgres stores documents as jsonb rows of a single documents
// table keyed by (collection, id).
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/bet-hub/internal/platform/docstore"
	"github.com/riskibarqy/bet-hub/internal/platform/id"
)

const documentsTable = "documents"

var _ docstore.Store = (*Store)(nil)

type documentRow struct {
	Collection string    `db:"collection"`
	ID         string    `db:"id"`
	Data       []byte    `db:"data"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type Store struct {
	db  *sqlx.DB
	ids id.Generator
}

type Option func(*Store)

func WithIDGenerator(gen id.Generator) Option {
	return func(s *Store) {
		if gen != nil {
			s.ids = gen
		}
	}
}

func NewStore(db *sqlx.DB, opts ...Option) *Store {
	s := &Store{db: db, ids: id.NewRandomGenerator()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Get(ctx context.Context, collection, docID string) (docstore.Document, error) {
	path := docstore.DocumentPath(collection, docID)
	if err := docstore.ValidateDocument(collection, docID); err != nil {
		return docstore.Document{}, &docstore.StoreError{Op: "get", Path: path, Err: err}
	}

	query, args, err := getQuery(collection, docID, false)
	if err != nil {
		return docstore.Document{}, &docstore.StoreError{Op: "get", Path: path, Err: err}
	}

	var row documentRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return docstore.Document{}, fmt.Errorf("%s: %w", path, docstore.ErrNotFound)
		}
		return docstore.Document{}, &docstore.StoreError{Op: "get", Path: path, Err: err}
	}
	return row.toDocument()
}

func (s *Store) Set(ctx context.Context, collection, docID string, data map[string]any, opts ...docstore.SetOption) error {
	batch := s.Batch()
	batch.Set(collection, docID, data, opts...)
	return batch.Commit(ctx)
}

func (s *Store) Add(ctx context.Context, collection string, data map[string]any) (string, error) {
	if err := docstore.ValidateCollection(collection); err != nil {
		return "", &docstore.StoreError{Op: "add", Path: collection, Err: err}
	}
	docID, err := s.ids.NewID()
	if err != nil {
		return "", &docstore.StoreError{Op: "add", Path: collection, Err: err}
	}
	if err := s.Set(ctx, collection, docID, data); err != nil {
		return "", err
	}
	return docID, nil
}

func (s *Store) Delete(ctx context.Context, collection, docID string) error {
	batch := s.Batch()
	batch.Delete(collection, docID)
	return batch.Commit(ctx)
}

func (s *Store) Query(ctx context.Context, q docstore.Query) ([]docstore.Document, error) {
	query, args, err := buildQuery(q)
	if err != nil {
		return nil, &docstore.StoreError{Op: "query", Path: q.Collection, Err: err}
	}

	var rows []documentRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, &docstore.StoreError{Op: "query", Path: q.Collection, Err: err}
	}

	out := make([]docstore.Document, 0, len(rows))
	for _, row := range rows {
		doc, err := row.toDocument()
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

func (s *Store) Batch() docstore.WriteBatch {
	return &batch{store: s}
}

func (r documentRow) toDocument() (docstore.Document, error) {
	data := map[string]any{}
	if len(r.Data) > 0 {
		if err := sonic.Unmarshal(r.Data, &data); err != nil {
			return docstore.Document{}, &docstore.StoreError{
				Op:   "read",
				Path: docstore.DocumentPath(r.Collection, r.ID),
				Err:  fmt.Errorf("decode data: %w", err),
			}
		}
	}
	return docstore.Document{
		Collection: r.Collection,
		ID:         r.ID,
		Data:       data,
		CreateTime: r.CreatedAt.UTC(),
		UpdateTime: r.UpdatedAt.UTC(),
	}, nil
}

type write struct {
	collection string
	id         string
	data       map[string]any
	merge      bool
	delete     bool
}

type batch struct {
	store  *Store
	writes []write
}

func (b *batch) Set(collection, docID string, data map[string]any, opts ...docstore.SetOption) {
	b.writes = append(b.writes, write{
		collection: collection,
		id:         docID,
		data:       data,
		merge:      docstore.IsMerge(opts),
	})
}

func (b *batch) Delete(collection, docID string) {
	b.writes = append(b.writes, write{collection: collection, id: docID, delete: true})
}

func (b *batch) Len() int {
	return len(b.writes)
}

// Commit applies every write inside one transaction.
func (b *batch) Commit(ctx context.Context) (err error) {
	prepared := make([]write, 0, len(b.writes))
	for _, w := range b.writes {
		path := docstore.DocumentPath(w.collection, w.id)
		if err := docstore.ValidateDocument(w.collection, w.id); err != nil {
			return &docstore.StoreError{Op: "commit", Path: path, Err: err}
		}
		if !w.delete {
			data, err := docstore.Normalize(w.data)
			if err != nil {
				return &docstore.StoreError{Op: "commit", Path: path, Err: err}
			}
			w.data = data
		}
		prepared = append(prepared, w)
	}
	if len(prepared) == 0 {
		return nil
	}

	tx, err := b.store.db.BeginTxx(ctx, nil)
	if err != nil {
		return &docstore.StoreError{Op: "commit", Err: fmt.Errorf("begin tx: %w", err)}
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, w := range prepared {
		if err = applyWrite(ctx, tx, w); err != nil {
			return &docstore.StoreError{Op: "commit", Path: docstore.DocumentPath(w.collection, w.id), Err: err}
		}
	}

	if err = tx.Commit(); err != nil {
		return &docstore.StoreError{Op: "commit", Err: fmt.Errorf("commit tx: %w", err)}
	}
	return nil
}

// txQuerier is the part of *sqlx.Tx a single write needs.
type txQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	GetContext(ctx context.Context, dest any, query string, args ...any) error
}

func applyWrite(ctx context.Context, tx txQuerier, w write) error {
	if w.delete {
		query, args, err := deleteQuery(w.collection, w.id)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("delete document: %w", err)
		}
		return nil
	}

	data := w.data
	buildUpsert := upsertQuery
	if w.merge {
		current, found, err := lockForMerge(ctx, tx, w.collection, w.id)
		if err != nil {
			return err
		}
		if found {
			data = docstore.DeepMerge(current, data)
		} else {
			buildUpsert = mergeInsertQuery
		}
	}

	raw, err := sonic.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode data: %w", err)
	}
	query, args, err := buildUpsert(w.collection, w.id, string(raw))
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}
	return nil
}

func lockForMerge(ctx context.Context, tx txQuerier, collection, docID string) (map[string]any, bool, error) {
	query, args, err := getQuery(collection, docID, true)
	if err != nil {
		return nil, false, err
	}

	var row documentRow
	if err := tx.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("lock document: %w", err)
	}

	current := map[string]any{}
	if len(row.Data) > 0 {
		if err := sonic.Unmarshal(row.Data, &current); err != nil {
			return nil, false, fmt.Errorf("decode data: %w", err)
		}
	}
	return current, true, nil
}

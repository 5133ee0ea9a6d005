// Package docstore defines the document-store contract used by the
// repositories: documents are JSON objects addressed by a collection path
// and an id, child collections hang off a parent document
// ("leagues/{id}/teams"), and multi-document writes go through an atomic
// WriteBatch.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNotFound    = errors.New("document not found")
	ErrInvalidPath = errors.New("invalid document path")
)

// StoreError reports a failed store operation on a path.
type StoreError struct {
	Op   string
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("docstore %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("docstore %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Store is the set of primitives the service needs from a document database.
type Store interface {
	// Get returns ErrNotFound when the document does not exist.
	Get(ctx context.Context, collection, id string) (Document, error)
	// Set replaces the document, or deep-merges into it with Merge().
	// Missing documents are created either way.
	Set(ctx context.Context, collection, id string, data map[string]any, opts ...SetOption) error
	// Add creates a document with a generated id.
	Add(ctx context.Context, collection string, data map[string]any) (string, error)
	// Delete is a no-op for missing documents.
	Delete(ctx context.Context, collection, id string) error
	Query(ctx context.Context, q Query) ([]Document, error)
	Batch() WriteBatch
}

// WriteBatch collects writes that are committed all together or not at all.
type WriteBatch interface {
	Set(collection, id string, data map[string]any, opts ...SetOption)
	Delete(collection, id string)
	Len() int
	Commit(ctx context.Context) error
}

type Document struct {
	Collection string
	ID         string
	Data       map[string]any
	CreateTime time.Time
	UpdateTime time.Time
}

func (d Document) Path() string {
	return DocumentPath(d.Collection, d.ID)
}

type SetOption func(*setOptions)

type setOptions struct {
	merge bool
}

// Merge makes Set deep-merge the given fields into the stored document
// instead of replacing it.
func Merge() SetOption {
	return func(o *setOptions) {
		o.merge = true
	}
}

func applySetOptions(opts []SetOption) setOptions {
	var out setOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&out)
		}
	}
	return out
}

// IsMerge reports whether opts request a merge write. Store
// implementations outside this package use it.
func IsMerge(opts []SetOption) bool {
	return applySetOptions(opts).merge
}

// Collection joins path segments: Collection("leagues", id, "teams").
func Collection(segments ...string) string {
	return strings.Join(segments, "/")
}

func DocumentPath(collection, id string) string {
	return collection + "/" + id
}

// ValidateCollection checks that path names a collection, i.e. has an odd
// number of non-empty segments.
func ValidateCollection(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: empty collection", ErrInvalidPath)
	}
	segments := strings.Split(path, "/")
	if len(segments)%2 != 1 {
		return fmt.Errorf("%w: %q is not a collection", ErrInvalidPath, path)
	}
	for _, segment := range segments {
		if strings.TrimSpace(segment) == "" {
			return fmt.Errorf("%w: %q has an empty segment", ErrInvalidPath, path)
		}
	}
	return nil
}

func ValidateDocument(collection, id string) error {
	if err := ValidateCollection(collection); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" || strings.Contains(id, "/") {
		return fmt.Errorf("%w: bad document id %q in %s", ErrInvalidPath, id, collection)
	}
	return nil
}

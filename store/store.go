// Package store abstracts the document collections behind a small gateway
// so handlers stay independent of the storage engine. Documents are keyed
// by their own "id" field, not the engine's native primary key.
package store

import "context"

// Filter is an equality predicate over document fields. An absent key
// matches all documents.
type Filter map[string]interface{}

// UpdateResult reports the outcome of an update-by-id call.
type UpdateResult struct {
	Matched  bool
	Modified bool
}

// Store is a single document collection.
//
// Find returns records sorted by created_at descending (newest first),
// tie-broken by insertion order; out must be a pointer to a slice.
type Store interface {
	Insert(ctx context.Context, doc interface{}) error
	Find(ctx context.Context, filter Filter, offset, limit int64, out interface{}) error
	Count(ctx context.Context, filter Filter) (int64, error)
	UpdateByID(ctx context.Context, id string, fields map[string]interface{}) (UpdateResult, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

package store

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-process Store used by tests. Documents go through a bson
// round trip on the way in so field names and value types match what the
// Mongo implementation would store.
type Memory struct {
	mu   sync.RWMutex
	docs []bson.M
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Insert(ctx context.Context, doc interface{}) error {
	normalized, err := toDocument(doc)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, normalized)
	return nil
}

func (m *Memory) Find(ctx context.Context, filter Filter, offset, limit int64, out interface{}) error {
	m.mu.RLock()
	matched := m.match(filter)
	m.mu.RUnlock()

	// Stable sort keeps insertion order among equal timestamps.
	sort.SliceStable(matched, func(i, j int) bool {
		return createdAt(matched[i]) > createdAt(matched[j])
	})

	if offset > int64(len(matched)) {
		offset = int64(len(matched))
	}
	matched = matched[offset:]
	if limit > 0 && limit < int64(len(matched)) {
		matched = matched[:limit]
	}
	return decodeAll(matched, out)
}

func (m *Memory) Count(ctx context.Context, filter Filter) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.match(filter))), nil
}

func (m *Memory) UpdateByID(ctx context.Context, id string, fields map[string]interface{}) (UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, doc := range m.docs {
		if doc["id"] != id {
			continue
		}
		res := UpdateResult{Matched: true}
		for k, v := range fields {
			normalized, err := normalizeValue(v)
			if err != nil {
				return UpdateResult{}, err
			}
			if !reflect.DeepEqual(doc[k], normalized) {
				doc[k] = normalized
				res.Modified = true
			}
		}
		return res, nil
	}
	return UpdateResult{}, nil
}

func (m *Memory) DeleteByID(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, doc := range m.docs {
		if doc["id"] == id {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *Memory) match(filter Filter) []bson.M {
	var matched []bson.M
	for _, doc := range m.docs {
		ok := true
		for k, v := range filter {
			if !reflect.DeepEqual(doc[k], v) {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, doc)
		}
	}
	return matched
}

func createdAt(doc bson.M) int64 {
	if ts, ok := doc["created_at"].(primitive.DateTime); ok {
		return int64(ts)
	}
	return 0
}

func toDocument(doc interface{}) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var out bson.M
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func normalizeValue(v interface{}) (interface{}, error) {
	doc, err := toDocument(bson.M{"v": v})
	if err != nil {
		return nil, err
	}
	return doc["v"], nil
}

func decodeAll(docs []bson.M, out interface{}) error {
	outv := reflect.ValueOf(out)
	if outv.Kind() != reflect.Ptr || outv.Elem().Kind() != reflect.Slice {
		return errors.New("store: out must be a pointer to a slice")
	}
	slicev := outv.Elem()
	result := reflect.MakeSlice(slicev.Type(), 0, len(docs))
	for _, doc := range docs {
		raw, err := bson.Marshal(doc)
		if err != nil {
			return err
		}
		elem := reflect.New(slicev.Type().Elem())
		if err := bson.Unmarshal(raw, elem.Interface()); err != nil {
			return err
		}
		result = reflect.Append(result, elem.Elem())
	}
	slicev.Set(result)
	return nil
}

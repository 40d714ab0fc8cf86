// Copyright (c) 2025-2026 OSCode
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is a thread-safe in-process Store. Documents are lost on
// restart; it backs development mode and tests.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]map[string]any
}

var _ Store = (*MemoryStore)(nil)

// NewMemory creates an empty in-process store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]map[string]any),
	}
}

// Insert implements Store. Documents without a store identity are assigned
// a fresh one.
func (s *MemoryStore) Insert(_ context.Context, collection string, doc any) (string, error) {
	m, err := toDocument(doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	// encoding/json cannot omit a zero ObjectID, so treat it as absent too.
	id, _ := m["_id"].(string)
	if id == "" || id == primitive.NilObjectID.Hex() {
		id = primitive.NewObjectID().Hex()
		m["_id"] = id
	}

	s.mu.Lock()
	s.collections[collection] = append(s.collections[collection], m)
	s.mu.Unlock()
	return id, nil
}

// Find implements Store.
func (s *MemoryStore) Find(_ context.Context, collection string, filter Filter, opts *FindOptions, results any) error {
	s.mu.RLock()
	var matches []map[string]any
	for _, doc := range s.collections[collection] {
		if matchesFilter(doc, filter) {
			cp := make(map[string]any, len(doc))
			for k, v := range doc {
				cp[k] = v
			}
			matches = append(matches, cp)
		}
	}
	s.mu.RUnlock()

	if opts != nil && opts.Sort != "" {
		field := strings.TrimPrefix(opts.Sort, "-")
		desc := strings.HasPrefix(opts.Sort, "-")
		sort.SliceStable(matches, func(i, j int) bool {
			if desc {
				return lessValue(matches[j][field], matches[i][field])
			}
			return lessValue(matches[i][field], matches[j][field])
		})
	}
	if opts != nil && opts.Limit > 0 && int64(len(matches)) > opts.Limit {
		matches = matches[:opts.Limit]
	}

	raw, err := json.Marshal(matches)
	if err != nil {
		return fmt.Errorf("encode from %s: %w", collection, err)
	}
	if err := json.Unmarshal(raw, results); err != nil {
		return fmt.Errorf("decode from %s: %w", collection, err)
	}
	return nil
}

// UpdateOne implements Store.
func (s *MemoryStore) UpdateOne(_ context.Context, collection string, filter Filter, patch Filter) (int64, error) {
	norm, err := toDocument(map[string]any(patch))
	if err != nil {
		return 0, fmt.Errorf("update in %s: %w", collection, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range s.collections[collection] {
		if matchesFilter(doc, filter) {
			for k, v := range norm {
				doc[k] = v
			}
			return 1, nil
		}
	}
	return 0, nil
}

// DeleteOne implements Store.
func (s *MemoryStore) DeleteOne(_ context.Context, collection string, filter Filter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := s.collections[collection]
	for i, doc := range docs {
		if matchesFilter(doc, filter) {
			s.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// Count implements Store.
func (s *MemoryStore) Count(_ context.Context, collection string, filter Filter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, doc := range s.collections[collection] {
		if matchesFilter(doc, filter) {
			n++
		}
	}
	return n, nil
}

// toDocument normalizes a value to a JSON-shaped map so stored documents and
// filter values compare consistently.
func toDocument(doc any) (map[string]any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	m := make(map[string]any)
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func matchesFilter(doc map[string]any, filter Filter) bool {
	for k, want := range filter {
		if id, ok := want.(DocID); ok {
			if doc[k] != string(id) {
				return false
			}
			continue
		}
		if !equalValue(doc[k], want) {
			return false
		}
	}
	return true
}

// equalValue compares a stored (JSON-shaped) value with a filter value.
func equalValue(got, want any) bool {
	raw, err := json.Marshal(want)
	if err != nil {
		return false
	}
	var norm any
	if err := json.Unmarshal(raw, &norm); err != nil {
		return false
	}
	return got == norm
}

// lessValue orders two stored values. Timestamps are compared as times so
// ordering does not depend on their string encoding.
func lessValue(a, b any) bool {
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		at, aerr := time.Parse(time.RFC3339Nano, as)
		bt, berr := time.Parse(time.RFC3339Nano, bs)
		if aerr == nil && berr == nil {
			return at.Before(bt)
		}
		return as < bs
	}

	af, aok := a.(float64)
	bf, bok := b.(float64)
	if aok && bok {
		return af < bf
	}
	return false
}

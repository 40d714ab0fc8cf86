// Copyright (c) 2025-2026 OSCode
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store provides a thin adapter over a collection-oriented document
// database. It owns no business rules: validation and id generation happen
// in the API layer.
package store

import (
	"context"
	"fmt"

	"github.com/oscode/platform-go/internal/config"
)

// Filter is a structural predicate over field equality. Exact match only.
type Filter map[string]any

// DocID marks a store-assigned document identity inside a Filter. The Mongo
// implementation translates it to an ObjectID match on _id.
type DocID string

// FindOptions controls ordering and result size for Find.
type FindOptions struct {
	// Sort names the field to order by. A leading "-" sorts descending.
	Sort string
	// Limit caps the number of returned documents. Zero means no limit.
	Limit int64
}

// Store is the capability set exposed to the API layer.
type Store interface {
	// Insert adds a document to a collection and returns the store-assigned
	// identity.
	Insert(ctx context.Context, collection string, doc any) (string, error)

	// Find decodes all documents matching filter into results, which must be
	// a pointer to a slice.
	Find(ctx context.Context, collection string, filter Filter, opts *FindOptions, results any) error

	// UpdateOne applies patch as a partial-field overwrite to the first
	// document matching filter and returns the matched count.
	UpdateOne(ctx context.Context, collection string, filter Filter, patch Filter) (int64, error)

	// DeleteOne removes the first document matching filter and returns the
	// deleted count.
	DeleteOne(ctx context.Context, collection string, filter Filter) (int64, error)

	// Count returns the number of documents matching filter.
	Count(ctx context.Context, collection string, filter Filter) (int64, error)
}

// New creates a Store based on configuration: MongoDB when MONGODB_URL is
// set, otherwise an in-process memory store. The returned cleanup function
// releases any held connections.
func New(ctx context.Context, cfg *config.Config) (Store, func(), error) {
	if !cfg.UseMongoStore() {
		return NewMemory(), func() {}, nil
	}

	ms, err := NewMongo(ctx, cfg.MongoURL, cfg.MongoDatabase)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	cleanup := func() {
		_ = ms.Close(context.Background())
	}
	return ms, cleanup, nil
}

// Copyright (c) 2025-2026 OSCode
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const mongoConnectTimeout = 10 * time.Second

// MongoStore implements Store on top of a MongoDB database.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ Store = (*MongoStore)(nil)

// NewMongo connects to MongoDB and returns a store bound to the named
// database. The connection is verified with a ping before returning.
func NewMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping: %w", err)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(database),
	}, nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Insert implements Store.
func (s *MongoStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

// Find implements Store.
func (s *MongoStore) Find(ctx context.Context, collection string, filter Filter, opts *FindOptions, results any) error {
	findOpts := options.Find()
	if opts != nil {
		if opts.Sort != "" {
			field, dir := sortSpec(opts.Sort)
			findOpts.SetSort(bson.D{{Key: field, Value: dir}})
		}
		if opts.Limit > 0 {
			findOpts.SetLimit(opts.Limit)
		}
	}

	cur, err := s.db.Collection(collection).Find(ctx, toBSON(filter), findOpts)
	if err != nil {
		return fmt.Errorf("find in %s: %w", collection, err)
	}
	if err := cur.All(ctx, results); err != nil {
		return fmt.Errorf("decode from %s: %w", collection, err)
	}
	return nil
}

// UpdateOne implements Store.
func (s *MongoStore) UpdateOne(ctx context.Context, collection string, filter Filter, patch Filter) (int64, error) {
	res, err := s.db.Collection(collection).UpdateOne(ctx, toBSON(filter), bson.M{"$set": toBSON(patch)})
	if err != nil {
		return 0, fmt.Errorf("update in %s: %w", collection, err)
	}
	return res.MatchedCount, nil
}

// DeleteOne implements Store.
func (s *MongoStore) DeleteOne(ctx context.Context, collection string, filter Filter) (int64, error) {
	res, err := s.db.Collection(collection).DeleteOne(ctx, toBSON(filter))
	if err != nil {
		return 0, fmt.Errorf("delete from %s: %w", collection, err)
	}
	return res.DeletedCount, nil
}

// Count implements Store.
func (s *MongoStore) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	n, err := s.db.Collection(collection).CountDocuments(ctx, toBSON(filter))
	if err != nil {
		return 0, fmt.Errorf("count in %s: %w", collection, err)
	}
	return n, nil
}

// toBSON converts a Filter to a bson.M, translating DocID values to ObjectID
// matches. A DocID that is not valid hex is kept verbatim so the filter
// simply matches nothing rather than erroring.
func toBSON(filter Filter) bson.M {
	m := bson.M{}
	for k, v := range filter {
		if id, ok := v.(DocID); ok {
			if oid, err := primitive.ObjectIDFromHex(string(id)); err == nil {
				m[k] = oid
			} else {
				m[k] = string(id)
			}
			continue
		}
		m[k] = v
	}
	return m
}

// sortSpec splits a FindOptions sort field into name and Mongo direction.
func sortSpec(sort string) (string, int) {
	if strings.HasPrefix(sort, "-") {
		return strings.TrimPrefix(sort, "-"), -1
	}
	return sort, 1
}

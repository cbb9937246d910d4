/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noncestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/resterr"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/service/nonce"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/storage/mongodb"
)

const (
	collectionName = "noncestore"
)

type nonceDocument struct {
	Nonce    string    `bson:"nonce"`
	TenantID string    `bson:"tenantID"`
	ExpireAt time.Time `bson:"expireAt"`
}

// Store holds single-use nonces in mongo. FindOneAndDelete makes consumption
// atomic across concurrent credential requests.
type Store struct {
	mongoClient *mongodb.Client
}

// New creates Store.
func New(ctx context.Context, mongoClient *mongodb.Client) (*Store, error) {
	s := &Store{
		mongoClient: mongoClient,
	}

	if err := s.migrate(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.mongoClient.Database().Collection(collectionName).Indexes().
		CreateMany(ctx, []mongo.IndexModel{
			{
				Keys: bson.D{
					{Key: "nonce", Value: -1},
					{Key: "tenantID", Value: -1},
				},
				Options: options.Index().SetUnique(true),
			},
			{ // ttl index https://www.mongodb.com/community/forums/t/ttl-index-internals/4086/2
				Keys: map[string]interface{}{
					"expireAt": 1,
				},
				Options: options.Index().SetExpireAfterSeconds(0),
			},
		}); err != nil {
		return err
	}

	return nil
}

func (s *Store) Create(ctx context.Context, record *nonce.Record, _ time.Duration) error {
	collection := s.mongoClient.Database().Collection(collectionName)

	_, err := collection.InsertOne(ctx, &nonceDocument{
		Nonce:    record.Value,
		TenantID: record.TenantID,
		ExpireAt: record.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("mongo insert failed: %w", err)
	}

	return nil
}

// GetAndDelete atomically removes the nonce and returns it.
func (s *Store) GetAndDelete(ctx context.Context, tenantID, value string) (*nonce.Record, error) {
	collection := s.mongoClient.Database().Collection(collectionName)

	doc := &nonceDocument{}

	err := collection.FindOneAndDelete(ctx, bson.M{"nonce": value, "tenantID": tenantID}).Decode(doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, resterr.ErrDataNotFound
		}

		return nil, fmt.Errorf("mongo find failed: %w", err)
	}

	return &nonce.Record{
		TenantID:  doc.TenantID,
		Value:     doc.Nonce,
		ExpiresAt: doc.ExpireAt,
	}, nil
}

// DeleteExpired removes records the ttl index has not purged yet.
func (s *Store) DeleteExpired(ctx context.Context) (int64, error) {
	collection := s.mongoClient.Database().Collection(collectionName)

	result, err := collection.DeleteMany(ctx, bson.M{"expireAt": bson.M{"$lt": time.Now().UTC()}})
	if err != nil {
		return 0, fmt.Errorf("mongo delete failed: %w", err)
	}

	return result.DeletedCount, nil
}

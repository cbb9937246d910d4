/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package deferredtxstore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/resterr"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/service/deferred"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/service/oidc4vci"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/storage/mongodb"
)

const (
	collectionName = "deferredtxstore"

	// documents outlive their logical expiry so expired and failed
	// transactions stay inspectable before the ttl index purges them
	purgeRetentionSeconds = 24 * 60 * 60
)

type mongoDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	ExpireAt time.Time          `bson:"expireAt"`

	TenantID                  string    `bson:"tenantID"`
	SessionID                 string    `bson:"sessionID"`
	CredentialConfigurationID string    `bson:"credentialConfigurationID,omitempty"`
	HolderCnf                 []byte    `bson:"holderCnf,omitempty"`
	Status                    string    `bson:"status"`
	Credential                string    `bson:"credential,omitempty"`
	Interval                  int32     `bson:"interval,omitempty"`
	ErrorMessage              string    `bson:"errorMessage,omitempty"`
	CreatedAt                 time.Time `bson:"createdAt"`
}

// Store stores deferred issuance transactions in mongo.
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
					{Key: "tenantID", Value: -1},
					{Key: "status", Value: -1},
				},
			},
			{ // ttl index https://www.mongodb.com/community/forums/t/ttl-index-internals/4086/2
				Keys: map[string]interface{}{
					"expireAt": 1,
				},
				Options: options.Index().SetExpireAfterSeconds(purgeRetentionSeconds),
			},
		}); err != nil {
		return err
	}

	return nil
}

func (s *Store) Create(
	ctx context.Context,
	ttl time.Duration,
	data *deferred.TransactionData,
) (*deferred.Transaction, error) {
	collection := s.mongoClient.Database().Collection(collectionName)

	doc := mapTransactionDataToMongoDocument(data)
	doc.ExpireAt = time.Now().UTC().Add(ttl)

	result, err := collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	insertedID := result.InsertedID.(primitive.ObjectID) //nolint: errcheck

	return &deferred.Transaction{
		ID:              deferred.TxID(insertedID.Hex()),
		TransactionData: *data,
	}, nil
}

func (s *Store) Get(ctx context.Context, tenantID string, id deferred.TxID) (*deferred.Transaction, error) {
	objectID, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return nil, resterr.ErrDataNotFound
	}

	collection := s.mongoClient.Database().Collection(collectionName)

	var doc mongoDocument

	if err = collection.FindOne(ctx,
		bson.M{"_id": objectID, "tenantID": tenantID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, resterr.ErrDataNotFound
		}

		return nil, err
	}

	return mapDocumentToTransaction(&doc), nil
}

// UpdateIfStatus persists the transaction only while its stored status still
// matches one of the expected values.
func (s *Store) UpdateIfStatus(
	ctx context.Context,
	tx *deferred.Transaction,
	expected ...deferred.Status,
) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(string(tx.ID))
	if err != nil {
		return false, resterr.ErrDataNotFound
	}

	statuses := make([]string, len(expected))
	for i, st := range expected {
		statuses[i] = string(st)
	}

	collection := s.mongoClient.Database().Collection(collectionName)

	doc := mapTransactionDataToMongoDocument(&tx.TransactionData)
	doc.ExpireAt = tx.ExpiresAt

	result := collection.FindOneAndUpdate(ctx,
		bson.M{
			"_id":      objectID,
			"tenantID": tx.TenantID,
			"status":   bson.M{"$in": statuses},
		},
		bson.M{"$set": doc},
	)

	if err = result.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// ExpirePast marks pending and ready transactions whose deadline has passed as
// expired, dropping any credential that was never retrieved.
func (s *Store) ExpirePast(ctx context.Context, now time.Time) (int64, error) {
	collection := s.mongoClient.Database().Collection(collectionName)

	result, err := collection.UpdateMany(ctx,
		bson.M{
			"status": bson.M{"$in": []string{
				string(deferred.StatusPending),
				string(deferred.StatusReady),
			}},
			"expireAt": bson.M{"$lt": now},
		},
		bson.M{
			"$set":   bson.M{"status": string(deferred.StatusExpired)},
			"$unset": bson.M{"credential": ""},
		},
	)
	if err != nil {
		return 0, err
	}

	return result.ModifiedCount, nil
}

func mapTransactionDataToMongoDocument(data *deferred.TransactionData) *mongoDocument {
	return &mongoDocument{
		ExpireAt:                  data.ExpiresAt,
		TenantID:                  data.TenantID,
		SessionID:                 string(data.SessionID),
		CredentialConfigurationID: data.CredentialConfigurationID,
		HolderCnf:                 data.HolderCnf,
		Status:                    string(data.Status),
		Credential:                data.Credential,
		Interval:                  data.Interval,
		ErrorMessage:              data.ErrorMessage,
		CreatedAt:                 data.CreatedAt,
	}
}

func mapDocumentToTransaction(doc *mongoDocument) *deferred.Transaction {
	return &deferred.Transaction{
		ID: deferred.TxID(doc.ID.Hex()),
		TransactionData: deferred.TransactionData{
			TenantID:                  doc.TenantID,
			SessionID:                 oidc4vci.SessionID(doc.SessionID),
			CredentialConfigurationID: doc.CredentialConfigurationID,
			HolderCnf:                 doc.HolderCnf,
			Status:                    deferred.Status(doc.Status),
			Credential:                doc.Credential,
			Interval:                  doc.Interval,
			ErrorMessage:              doc.ErrorMessage,
			CreatedAt:                 doc.CreatedAt,
			ExpiresAt:                 doc.ExpireAt,
		},
	}
}

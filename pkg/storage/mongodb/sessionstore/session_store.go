/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sessionstore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/profile"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/resterr"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/service/oidc4vci"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/storage/mongodb"
)

const (
	collectionName = "sessionstore"
)

type notificationDocument struct {
	ID                        string     `bson:"id"`
	CredentialConfigurationID string     `bson:"credentialConfigurationID,omitempty"`
	Event                     string     `bson:"event,omitempty"`
	EventDescription          string     `bson:"eventDescription,omitempty"`
	ReceivedAt                *time.Time `bson:"receivedAt,omitempty"`
}

type mongoDocument struct {
	ID       string    `bson:"_id"`
	ExpireAt time.Time `bson:"expireAt"`

	TenantID                   string                            `bson:"tenantID"`
	Type                       string                            `bson:"type,omitempty"`
	State                      int16                             `bson:"state"`
	PreAuthorizedCode          string                            `bson:"preAuthorizedCode,omitempty"`
	TxCode                     string                            `bson:"txCode,omitempty"`
	AuthorizationServer        string                            `bson:"authorizationServer,omitempty"`
	CredentialConfigurationIDs []string                          `bson:"credentialConfigurationIDs,omitempty"`
	CredentialOffer            map[string]interface{}            `bson:"credentialOffer,omitempty"`
	CredentialPayload          map[string]interface{}            `bson:"credentialPayload,omitempty"`
	ClaimData                  map[string]map[string]interface{} `bson:"claimData,omitempty"`
	Notifications              []notificationDocument            `bson:"notifications,omitempty"`
	NotifyWebhook              *profile.Webhook                  `bson:"notifyWebhook,omitempty"`
	ExternalIssuer             string                            `bson:"externalIssuer,omitempty"`
	ExternalSubject            string                            `bson:"externalSubject,omitempty"`
	CreatedAt                  time.Time                         `bson:"createdAt"`
}

// Store stores issuance sessions in mongo.
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
					{Key: "externalIssuer", Value: -1},
					{Key: "externalSubject", Value: -1},
				},
			},
			{
				Keys: bson.D{
					{Key: "tenantID", Value: -1},
					{Key: "notifications.id", Value: -1},
				},
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

func (s *Store) Create(ctx context.Context, ttl time.Duration, session *oidc4vci.Session) error {
	collection := s.mongoClient.Database().Collection(collectionName)

	doc := mapSessionToMongoDocument(session)
	doc.ExpireAt = time.Now().UTC().Add(ttl)

	_, err := collection.InsertOne(ctx, doc)

	return err
}

func (s *Store) Get(ctx context.Context, tenantID string, id oidc4vci.SessionID) (*oidc4vci.Session, error) {
	return s.findOne(ctx, bson.M{"_id": string(id), "tenantID": tenantID})
}

func (s *Store) FindByIssuerAndSubject(
	ctx context.Context,
	tenantID, issuer, subject string,
) (*oidc4vci.Session, error) {
	return s.findOne(ctx, bson.M{
		"tenantID":        tenantID,
		"externalIssuer":  issuer,
		"externalSubject": subject,
	})
}

func (s *Store) FindByNotificationID(
	ctx context.Context,
	tenantID, notificationID string,
) (*oidc4vci.Session, error) {
	return s.findOne(ctx, bson.M{
		"tenantID":         tenantID,
		"notifications.id": notificationID,
	})
}

func (s *Store) findOne(ctx context.Context, filter interface{}) (*oidc4vci.Session, error) {
	collection := s.mongoClient.Database().Collection(collectionName)

	var doc mongoDocument

	if err := collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, resterr.ErrDataNotFound
		}

		return nil, err
	}

	if doc.ExpireAt.Before(time.Now().UTC()) {
		// due to nature of mongodb ttlIndex works every minute, so it can be a situation when we receive expired doc
		return nil, resterr.ErrDataNotFound
	}

	return mapDocumentToSession(&doc), nil
}

func (s *Store) Update(ctx context.Context, session *oidc4vci.Session) error {
	collection := s.mongoClient.Database().Collection(collectionName)

	doc := mapSessionToMongoDocument(session)
	doc.ExpireAt = session.ExpiresAt

	_, err := collection.UpdateByID(ctx, doc.ID, bson.M{
		"$set": doc,
	})

	return err
}

func mapSessionToMongoDocument(session *oidc4vci.Session) *mongoDocument {
	doc := &mongoDocument{
		ID:                         string(session.ID),
		ExpireAt:                   session.ExpiresAt,
		TenantID:                   session.TenantID,
		Type:                       string(session.Type),
		State:                      int16(session.State),
		PreAuthorizedCode:          session.PreAuthorizedCode,
		TxCode:                     session.TxCode,
		AuthorizationServer:        session.AuthorizationServer,
		CredentialConfigurationIDs: session.CredentialConfigurationIDs,
		CredentialOffer:            session.CredentialOffer,
		CredentialPayload:          session.CredentialPayload,
		ClaimData:                  session.ClaimData,
		NotifyWebhook:              session.NotifyWebhook,
		ExternalIssuer:             session.ExternalIssuer,
		ExternalSubject:            session.ExternalSubject,
		CreatedAt:                  session.CreatedAt,
	}

	for _, n := range session.Notifications {
		doc.Notifications = append(doc.Notifications, notificationDocument{
			ID:                        n.ID,
			CredentialConfigurationID: n.CredentialConfigurationID,
			Event:                     n.Event,
			EventDescription:          n.EventDescription,
			ReceivedAt:                n.ReceivedAt,
		})
	}

	return doc
}

func mapDocumentToSession(doc *mongoDocument) *oidc4vci.Session {
	session := &oidc4vci.Session{
		ID: oidc4vci.SessionID(doc.ID),
		SessionData: oidc4vci.SessionData{
			TenantID:                   doc.TenantID,
			Type:                       oidc4vci.SessionType(doc.Type),
			State:                      oidc4vci.SessionState(doc.State),
			PreAuthorizedCode:          doc.PreAuthorizedCode,
			TxCode:                     doc.TxCode,
			AuthorizationServer:        doc.AuthorizationServer,
			CredentialConfigurationIDs: doc.CredentialConfigurationIDs,
			CredentialOffer:            doc.CredentialOffer,
			CredentialPayload:          doc.CredentialPayload,
			ClaimData:                  doc.ClaimData,
			NotifyWebhook:              doc.NotifyWebhook,
			ExternalIssuer:             doc.ExternalIssuer,
			ExternalSubject:            doc.ExternalSubject,
			CreatedAt:                  doc.CreatedAt,
			ExpiresAt:                  doc.ExpireAt,
		},
	}

	for _, n := range doc.Notifications {
		session.Notifications = append(session.Notifications, oidc4vci.Notification{
			ID:                        n.ID,
			CredentialConfigurationID: n.CredentialConfigurationID,
			Event:                     n.Event,
			EventDescription:          n.EventDescription,
			ReceivedAt:                n.ReceivedAt,
		})
	}

	return session
}

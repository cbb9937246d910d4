/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noncestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redisapi "github.com/redis/go-redis/v9"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/resterr"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/service/nonce"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/storage/redis"
)

const (
	keyPrefix = "nonce"
)

type nonceDocument struct {
	TenantID string    `json:"tenantID"`
	ExpireAt time.Time `json:"expireAt"`
}

// Store holds single-use nonces in redis. GETDEL makes consumption atomic
// across concurrent credential requests.
type Store struct {
	redisClient *redis.Client
}

// New creates Store.
func New(redisClient *redis.Client) *Store {
	return &Store{
		redisClient: redisClient,
	}
}

func (s *Store) Create(ctx context.Context, record *nonce.Record, ttl time.Duration) error {
	clientAPI := s.redisClient.API()

	b, err := json.Marshal(&nonceDocument{
		TenantID: record.TenantID,
		ExpireAt: record.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("nonce encode failed: %w", err)
	}

	ok, err := clientAPI.SetNX(ctx, resolveRedisKey(record.TenantID, record.Value), b, ttl).Result()
	if err != nil {
		return fmt.Errorf("nonce set failed: %w", err)
	}

	if !ok {
		return fmt.Errorf("nonce %s already exists", record.Value)
	}

	return nil
}

// GetAndDelete atomically removes the nonce and returns it.
func (s *Store) GetAndDelete(ctx context.Context, tenantID, value string) (*nonce.Record, error) {
	clientAPI := s.redisClient.API()

	b, err := clientAPI.GetDel(ctx, resolveRedisKey(tenantID, value)).Bytes()
	if err != nil {
		if errors.Is(err, redisapi.Nil) {
			return nil, resterr.ErrDataNotFound
		}

		return nil, fmt.Errorf("nonce find failed: %w", err)
	}

	doc := &nonceDocument{}
	if err = json.Unmarshal(b, doc); err != nil {
		return nil, fmt.Errorf("nonce decode failed: %w", err)
	}

	return &nonce.Record{
		TenantID:  doc.TenantID,
		Value:     value,
		ExpiresAt: doc.ExpireAt,
	}, nil
}

// DeleteExpired is a no-op: redis key TTLs purge expired nonces natively.
func (s *Store) DeleteExpired(_ context.Context) (int64, error) {
	return 0, nil
}

func resolveRedisKey(tenantID, value string) string {
	return fmt.Sprintf("%s-%s-%s", keyPrefix, tenantID, value)
}

/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package deferred

import (
	"time"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/service/oidc4vci"
)

// TxID defines type for deferred transaction ID.
type TxID string

// Status is the lifecycle state of a deferred transaction.
type Status string

const (
	StatusPending   Status = "pending"
	StatusReady     Status = "ready"
	StatusFailed    Status = "failed"
	StatusExpired   Status = "expired"
	StatusRetrieved Status = "retrieved"
)

// Transaction is one deferred issuance. Created when claims are not yet
// available at credential-request time, completed or failed by the tenant, and
// retrieved exactly once by the wallet.
type Transaction struct {
	ID TxID
	TransactionData
}

// TransactionData is the transaction payload stored in the underlying storage.
type TransactionData struct {
	TenantID                  string
	SessionID                 oidc4vci.SessionID
	CredentialConfigurationID string
	HolderCnf                 []byte
	Status                    Status
	Credential                string
	Interval                  int32
	ErrorMessage              string
	CreatedAt                 time.Time
	ExpiresAt                 time.Time
}

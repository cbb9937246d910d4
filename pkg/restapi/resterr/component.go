/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

type Component string

const (
	IssuanceSvcComponent     Component = "issuer.issuance-service"
	OfferSvcComponent        Component = "issuer.offer-service"
	NotificationSvcComponent Component = "issuer.notification-service"
	ProfileSvcComponent      Component = "issuer.profile-service"

	NonceLedgerComponent       Component = "nonce-ledger"
	DeferredManagerComponent   Component = "deferred-manager"
	ClaimsResolverComponent    Component = "claims-resolver"
	CredentialEncoderComponent Component = "credential-encoder"
	WellKnownSvcComponent      Component = "well-known-service"
	SessionStoreComponent      Component = "session-store"
	RedisComponent             Component = "redis-service"
)

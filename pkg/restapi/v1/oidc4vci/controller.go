/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -self_package mocks -package oidc4vci_test -source=controller.go -mock_names profileRegistry=MockProfileRegistry,issuanceService=MockIssuanceService,nonceService=MockNonceService,deferredService=MockDeferredService,tokenVerifier=MockTokenVerifier

package oidc4vci

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/profile"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/resterr"
	oidc4vcierr "github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/resterr/oidc4vci"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/v1/common"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/service/deferred"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/service/oidc4vci"
)

type profileRegistry interface {
	GetProfile(profileID string) (*profile.Issuer, error)
}

type issuanceService interface {
	IssueCredential(
		ctx context.Context,
		tenant *profile.Issuer,
		token *oidc4vci.TokenPayload,
		req *oidc4vci.CredentialRequest,
	) (*oidc4vci.IssueCredentialResponse, error)

	RecordNotification(ctx context.Context, tenant *profile.Issuer, req *oidc4vci.NotificationRequest) error

	GetIssuerMetadata(tenant *profile.Issuer) *oidc4vci.IssuerMetadata
}

type nonceService interface {
	Issue(ctx context.Context, tenant *profile.Issuer) (string, time.Duration, error)
}

type deferredService interface {
	Retrieve(ctx context.Context, tenant *profile.Issuer, id deferred.TxID) (string, error)
}

type tokenVerifier interface {
	VerifyAccessToken(ctx context.Context, rawToken string, tenant *profile.Issuer) (*oidc4vci.TokenPayload, error)
}

// Config holds configuration options for Controller.
type Config struct {
	ProfileRegistry profileRegistry
	IssuanceService issuanceService
	NonceService    nonceService
	DeferredService deferredService
	TokenVerifier   tokenVerifier
}

// Controller for the wallet-facing issuance API.
type Controller struct {
	profiles    profileRegistry
	issuanceSvc issuanceService
	nonceSvc    nonceService
	deferredSvc deferredService
	verifier    tokenVerifier
}

// NewController creates Controller.
func NewController(config *Config) *Controller {
	return &Controller{
		profiles:    config.ProfileRegistry,
		issuanceSvc: config.IssuanceService,
		nonceSvc:    config.NonceService,
		deferredSvc: config.DeferredService,
		verifier:    config.TokenVerifier,
	}
}

// RegisterRoutes binds the wallet endpoints on e.
func (c *Controller) RegisterRoutes(e *echo.Echo) {
	e.POST("/oidc/:profileID/nonce", c.CreateNonce)
	e.POST("/oidc/:profileID/credential", c.IssueCredential)
	e.POST("/oidc/:profileID/deferred_credential", c.RetrieveDeferredCredential)
	e.POST("/oidc/:profileID/notification", c.Notify)
	e.GET("/oidc/:profileID/.well-known/openid-credential-issuer", c.IssuerMetadata)
}

type nonceResponse struct {
	CNonce          string `json:"c_nonce"`
	CNonceExpiresIn int    `json:"c_nonce_expires_in"`
}

// CreateNonce mints a fresh proof challenge.
// POST /oidc/:profileID/nonce.
func (c *Controller) CreateNonce(e echo.Context) error {
	tenant, err := c.tenant(e)
	if err != nil {
		return common.WriteError(e, err)
	}

	value, ttl, err := c.nonceSvc.Issue(e.Request().Context(), tenant)
	if err != nil {
		return common.WriteError(e, err)
	}

	// a nonce is single-use; any cached copy is already worthless
	e.Response().Header().Set("Cache-Control", "no-store")

	return e.JSON(http.StatusOK, &nonceResponse{
		CNonce:          value,
		CNonceExpiresIn: int(ttl.Seconds()),
	})
}

type proofObject struct {
	ProofType string `json:"proof_type"`
	JWT       string `json:"jwt"`
}

type credentialRequest struct {
	CredentialConfigurationID string              `json:"credential_configuration_id"`
	Proof                     *proofObject        `json:"proof,omitempty"`
	Proofs                    map[string][]string `json:"proofs,omitempty"`
	PresentedCredentials      []string            `json:"presented_credentials,omitempty"`
}

type credentialResponse struct {
	Credentials    []oidc4vci.IssuedCredential `json:"credentials,omitempty"`
	NotificationID string                      `json:"notification_id,omitempty"`
	TransactionID  string                      `json:"transaction_id,omitempty"`
	Interval       int32                       `json:"interval,omitempty"`
}

// IssueCredential processes a wallet credential request.
// POST /oidc/:profileID/credential.
func (c *Controller) IssueCredential(e echo.Context) error {
	ctx := e.Request().Context()

	tenant, err := c.tenant(e)
	if err != nil {
		return common.WriteError(e, err)
	}

	token, err := c.verifyToken(e, tenant)
	if err != nil {
		return common.WriteError(e, err)
	}

	var body credentialRequest

	if err = e.Bind(&body); err != nil {
		return common.WriteError(e, oidc4vcierr.NewInvalidCredentialRequestError(err))
	}

	req, err := mapCredentialRequest(&body)
	if err != nil {
		return common.WriteError(e, err)
	}

	resp, err := c.issuanceSvc.IssueCredential(ctx, tenant, token, req)
	if err != nil {
		return common.WriteError(e, err)
	}

	if resp.Deferred != nil {
		return e.JSON(http.StatusAccepted, &credentialResponse{
			TransactionID: resp.Deferred.TransactionID,
			Interval:      resp.Deferred.Interval,
		})
	}

	return e.JSON(http.StatusOK, &credentialResponse{
		Credentials:    resp.Credentials,
		NotificationID: resp.NotificationID,
	})
}

type deferredCredentialRequest struct {
	TransactionID string `json:"transaction_id"`
}

// RetrieveDeferredCredential hands out a deferred credential once it is ready.
// POST /oidc/:profileID/deferred_credential.
func (c *Controller) RetrieveDeferredCredential(e echo.Context) error {
	ctx := e.Request().Context()

	tenant, err := c.tenant(e)
	if err != nil {
		return common.WriteError(e, err)
	}

	if _, err = c.verifyToken(e, tenant); err != nil {
		return common.WriteError(e, err)
	}

	var body deferredCredentialRequest

	if err = e.Bind(&body); err != nil {
		return common.WriteError(e, oidc4vcierr.NewInvalidTransactionIDError(err))
	}

	if body.TransactionID == "" {
		return common.WriteError(e, oidc4vcierr.NewInvalidTransactionIDError(
			errors.New("transaction_id is required")))
	}

	credential, err := c.deferredSvc.Retrieve(ctx, tenant, deferred.TxID(body.TransactionID))
	if err != nil {
		return common.WriteError(e, err)
	}

	return e.JSON(http.StatusOK, &credentialResponse{
		Credentials: []oidc4vci.IssuedCredential{{Credential: credential}},
	})
}

type notificationRequest struct {
	NotificationID   string `json:"notification_id"`
	Event            string `json:"event"`
	EventDescription string `json:"event_description,omitempty"`
}

// Notify records the wallet's acceptance or rejection report.
// POST /oidc/:profileID/notification.
func (c *Controller) Notify(e echo.Context) error {
	ctx := e.Request().Context()

	tenant, err := c.tenant(e)
	if err != nil {
		return common.WriteError(e, err)
	}

	if _, err = c.verifyToken(e, tenant); err != nil {
		return common.WriteError(e, err)
	}

	var body notificationRequest

	if err = e.Bind(&body); err != nil {
		return common.WriteError(e, oidc4vcierr.NewInvalidNotificationRequestError(err))
	}

	if err = c.issuanceSvc.RecordNotification(ctx, tenant, &oidc4vci.NotificationRequest{
		NotificationID:   body.NotificationID,
		Event:            body.Event,
		EventDescription: body.EventDescription,
	}); err != nil {
		return common.WriteError(e, err)
	}

	return e.NoContent(http.StatusNoContent)
}

// IssuerMetadata serves the credential-issuer metadata document.
// GET /oidc/:profileID/.well-known/openid-credential-issuer.
func (c *Controller) IssuerMetadata(e echo.Context) error {
	tenant, err := c.tenant(e)
	if err != nil {
		return common.WriteError(e, err)
	}

	return e.JSON(http.StatusOK, c.issuanceSvc.GetIssuerMetadata(tenant))
}

func (c *Controller) tenant(e echo.Context) (*profile.Issuer, error) {
	profileID := e.Param("profileID")

	tenant, err := c.profiles.GetProfile(profileID)
	if err != nil {
		if errors.Is(err, resterr.ErrProfileNotFound) {
			return nil, oidc4vcierr.NewNotFoundError(fmt.Errorf("profile %s not found", profileID))
		}

		if errors.Is(err, resterr.ErrProfileInactive) {
			return nil, oidc4vcierr.NewCredentialRequestDeniedError(
				fmt.Errorf("profile %s is not active", profileID))
		}

		return nil, err
	}

	return tenant, nil
}

func (c *Controller) verifyToken(e echo.Context, tenant *profile.Issuer) (*oidc4vci.TokenPayload, error) {
	rawToken, ok := common.BearerToken(e)
	if !ok {
		return nil, oidc4vcierr.NewUnauthorizedError(errors.New("missing bearer token"))
	}

	token, err := c.verifier.VerifyAccessToken(e.Request().Context(), rawToken, tenant)
	if err != nil {
		return nil, oidc4vcierr.NewUnauthorizedError(err)
	}

	return token, nil
}

func mapCredentialRequest(body *credentialRequest) (*oidc4vci.CredentialRequest, error) {
	if body.CredentialConfigurationID == "" {
		return nil, oidc4vcierr.NewInvalidCredentialRequestError(
			errors.New("credential_configuration_id is required"))
	}

	req := &oidc4vci.CredentialRequest{
		CredentialConfigurationID: body.CredentialConfigurationID,
		PresentedCredentials:      body.PresentedCredentials,
	}

	switch {
	case len(body.Proofs) > 0:
		jwts, ok := body.Proofs["jwt"]
		if !ok || len(jwts) == 0 {
			return nil, oidc4vcierr.NewInvalidProofError(
				errors.New("proofs must carry at least one jwt proof"))
		}

		req.Proofs = jwts
	case body.Proof != nil:
		if body.Proof.ProofType != "jwt" || body.Proof.JWT == "" {
			return nil, oidc4vcierr.NewInvalidProofError(
				errors.New("only jwt proofs are supported"))
		}

		req.Proofs = []string{body.Proof.JWT}
	}

	return req, nil
}

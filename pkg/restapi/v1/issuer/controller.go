/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -self_package mocks -package issuer_test -source=controller.go -mock_names profileRegistry=MockProfileRegistry,offerService=MockOfferService,deferredService=MockDeferredService

package issuer

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/profile"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/resterr"
	oidc4vcierr "github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/resterr/oidc4vci"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/v1/common"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/service/deferred"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/service/oidc4vci"
)

const apiKeyHeader = "X-API-Key"

type profileRegistry interface {
	GetProfile(profileID string) (*profile.Issuer, error)
}

type offerService interface {
	CreateOffer(
		ctx context.Context,
		tenant *profile.Issuer,
		req *oidc4vci.CreateOfferRequest,
	) (*oidc4vci.CreateOfferResponse, error)

	GetOffer(ctx context.Context, tenant *profile.Issuer, sessionID oidc4vci.SessionID) (map[string]interface{}, error)

	GetSession(ctx context.Context, tenant *profile.Issuer, sessionID oidc4vci.SessionID) (*oidc4vci.Session, error)
}

type deferredService interface {
	Complete(
		ctx context.Context,
		tenant *profile.Issuer,
		id deferred.TxID,
		claims map[string]interface{},
	) (*deferred.Transaction, error)

	Fail(
		ctx context.Context,
		tenant *profile.Issuer,
		id deferred.TxID,
		errorMessage string,
	) (*deferred.Transaction, error)
}

// Config holds configuration options for Controller.
type Config struct {
	ProfileRegistry profileRegistry
	OfferService    offerService
	DeferredService deferredService
	APIToken        string
}

// Controller for the tenant-facing management API.
type Controller struct {
	profiles    profileRegistry
	offerSvc    offerService
	deferredSvc deferredService
	apiToken    string
}

// NewController creates Controller.
func NewController(config *Config) *Controller {
	return &Controller{
		profiles:    config.ProfileRegistry,
		offerSvc:    config.OfferService,
		deferredSvc: config.DeferredService,
		apiToken:    config.APIToken,
	}
}

// RegisterRoutes binds the management endpoints on e. Offer retrieval stays
// public: it is the target of the credential_offer_uri handed to wallets.
func (c *Controller) RegisterRoutes(e *echo.Echo) {
	e.GET("/issuer/profiles/:profileID/offers/:sessionID", c.GetOffer)

	g := e.Group("/issuer/profiles/:profileID", c.apiKeyMiddleware)
	g.POST("/offers", c.CreateOffer)
	g.GET("/sessions/:sessionID", c.GetSessionStatus)
	g.POST("/deferred/:transactionID/complete", c.CompleteDeferred)
	g.POST("/deferred/:transactionID/fail", c.FailDeferred)
}

func (c *Controller) apiKeyMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(e echo.Context) error {
		key := e.Request().Header.Get(apiKeyHeader)

		if subtle.ConstantTimeCompare([]byte(key), []byte(c.apiToken)) != 1 {
			return common.WriteManagementError(e,
				oidc4vcierr.NewUnauthorizedError(errors.New("invalid api key")))
		}

		return next(e)
	}
}

type createOfferRequest struct {
	CredentialConfigurationIDs []string                          `json:"credential_configuration_ids"`
	GrantType                  string                            `json:"grant_type,omitempty"`
	TxCode                     *txCodeSpec                       `json:"tx_code,omitempty"`
	ClaimData                  map[string]map[string]interface{} `json:"claim_data,omitempty"`
	CredentialPayload          map[string]interface{}            `json:"credential_payload,omitempty"`
	AuthorizationServer        string                            `json:"authorization_server,omitempty"`
}

type txCodeSpec struct {
	InputMode   string `json:"input_mode,omitempty"`
	Length      int    `json:"length,omitempty"`
	Description string `json:"description,omitempty"`
}

type createOfferResponse struct {
	SessionID string `json:"session_id"`
	OfferURI  string `json:"offer_uri"`
	TxCode    string `json:"tx_code,omitempty"`
}

// CreateOffer creates a credential offer for the tenant.
// POST /issuer/profiles/:profileID/offers.
func (c *Controller) CreateOffer(e echo.Context) error {
	tenant, err := c.tenant(e)
	if err != nil {
		return common.WriteManagementError(e, err)
	}

	var body createOfferRequest

	if err = e.Bind(&body); err != nil {
		return common.WriteManagementError(e, oidc4vcierr.NewBadRequestError(err))
	}

	req := &oidc4vci.CreateOfferRequest{
		CredentialConfigurationIDs: body.CredentialConfigurationIDs,
		GrantType:                  body.GrantType,
		ClaimData:                  body.ClaimData,
		CredentialPayload:          body.CredentialPayload,
		AuthorizationServer:        body.AuthorizationServer,
	}

	if body.TxCode != nil {
		req.TxCode = &oidc4vci.TxCodeSpec{
			InputMode:   body.TxCode.InputMode,
			Length:      body.TxCode.Length,
			Description: body.TxCode.Description,
		}
	}

	resp, err := c.offerSvc.CreateOffer(e.Request().Context(), tenant, req)
	if err != nil {
		return common.WriteManagementError(e, err)
	}

	return e.JSON(http.StatusCreated, &createOfferResponse{
		SessionID: string(resp.SessionID),
		OfferURI:  resp.OfferURI,
		TxCode:    resp.TxCode,
	})
}

// GetOffer serves the offer payload referenced by a credential_offer_uri.
// GET /issuer/profiles/:profileID/offers/:sessionID.
func (c *Controller) GetOffer(e echo.Context) error {
	tenant, err := c.tenant(e)
	if err != nil {
		return common.WriteManagementError(e, err)
	}

	offer, err := c.offerSvc.GetOffer(
		e.Request().Context(), tenant, oidc4vci.SessionID(e.Param("sessionID")))
	if err != nil {
		return common.WriteManagementError(e, err)
	}

	return e.JSON(http.StatusOK, offer)
}

type notificationView struct {
	ID                        string `json:"id"`
	CredentialConfigurationID string `json:"credential_configuration_id,omitempty"`
	Event                     string `json:"event,omitempty"`
	EventDescription          string `json:"event_description,omitempty"`
}

type sessionStatusResponse struct {
	SessionID                  string             `json:"session_id"`
	State                      string             `json:"state"`
	Type                       string             `json:"type,omitempty"`
	CredentialConfigurationIDs []string           `json:"credential_configuration_ids,omitempty"`
	Notifications              []notificationView `json:"notifications,omitempty"`
}

// GetSessionStatus reports the issuance session state to the tenant.
// GET /issuer/profiles/:profileID/sessions/:sessionID.
func (c *Controller) GetSessionStatus(e echo.Context) error {
	tenant, err := c.tenant(e)
	if err != nil {
		return common.WriteManagementError(e, err)
	}

	session, err := c.offerSvc.GetSession(
		e.Request().Context(), tenant, oidc4vci.SessionID(e.Param("sessionID")))
	if err != nil {
		return common.WriteManagementError(e, err)
	}

	resp := &sessionStatusResponse{
		SessionID:                  string(session.ID),
		State:                      sessionStateName(session.State),
		Type:                       string(session.Type),
		CredentialConfigurationIDs: session.CredentialConfigurationIDs,
	}

	for _, n := range session.Notifications {
		resp.Notifications = append(resp.Notifications, notificationView{
			ID:                        n.ID,
			CredentialConfigurationID: n.CredentialConfigurationID,
			Event:                     n.Event,
			EventDescription:          n.EventDescription,
		})
	}

	return e.JSON(http.StatusOK, resp)
}

type completeDeferredRequest struct {
	Claims map[string]interface{} `json:"claims"`
}

type failDeferredRequest struct {
	ErrorDescription string `json:"error_description,omitempty"`
}

type transactionView struct {
	TransactionID    string `json:"transaction_id"`
	Status           string `json:"status"`
	Interval         int32  `json:"interval,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// CompleteDeferred marks a pending deferred transaction ready.
// POST /issuer/profiles/:profileID/deferred/:transactionID/complete.
func (c *Controller) CompleteDeferred(e echo.Context) error {
	tenant, err := c.tenant(e)
	if err != nil {
		return common.WriteManagementError(e, err)
	}

	var body completeDeferredRequest

	if err = e.Bind(&body); err != nil {
		return common.WriteManagementError(e, oidc4vcierr.NewBadRequestError(err))
	}

	if len(body.Claims) == 0 {
		return common.WriteManagementError(e, oidc4vcierr.NewBadRequestError(
			errors.New("claims are required")))
	}

	tx, err := c.deferredSvc.Complete(
		e.Request().Context(), tenant, deferred.TxID(e.Param("transactionID")), body.Claims)
	if err != nil {
		return common.WriteManagementError(e, err)
	}

	if tx == nil {
		return common.WriteManagementError(e, oidc4vcierr.NewNotFoundError(
			errors.New("no pending transaction matches")))
	}

	return e.JSON(http.StatusOK, mapTransactionView(tx))
}

// FailDeferred marks a deferred transaction failed.
// POST /issuer/profiles/:profileID/deferred/:transactionID/fail.
func (c *Controller) FailDeferred(e echo.Context) error {
	tenant, err := c.tenant(e)
	if err != nil {
		return common.WriteManagementError(e, err)
	}

	var body failDeferredRequest

	if err = e.Bind(&body); err != nil {
		return common.WriteManagementError(e, oidc4vcierr.NewBadRequestError(err))
	}

	tx, err := c.deferredSvc.Fail(
		e.Request().Context(), tenant, deferred.TxID(e.Param("transactionID")), body.ErrorDescription)
	if err != nil {
		return common.WriteManagementError(e, err)
	}

	if tx == nil {
		return common.WriteManagementError(e, oidc4vcierr.NewNotFoundError(
			errors.New("no transaction matches")))
	}

	return e.JSON(http.StatusOK, mapTransactionView(tx))
}

func (c *Controller) tenant(e echo.Context) (*profile.Issuer, error) {
	profileID := e.Param("profileID")

	tenant, err := c.profiles.GetProfile(profileID)
	if err != nil {
		if errors.Is(err, resterr.ErrProfileNotFound) {
			return nil, oidc4vcierr.NewNotFoundError(fmt.Errorf("profile %s not found", profileID))
		}

		if errors.Is(err, resterr.ErrProfileInactive) {
			return nil, oidc4vcierr.NewBadRequestError(fmt.Errorf("profile %s is not active", profileID))
		}

		return nil, err
	}

	return tenant, nil
}

func mapTransactionView(tx *deferred.Transaction) *transactionView {
	return &transactionView{
		TransactionID:    string(tx.ID),
		Status:           string(tx.Status),
		Interval:         tx.Interval,
		ErrorDescription: tx.ErrorMessage,
	}
}

func sessionStateName(state oidc4vci.SessionState) string {
	switch state {
	case oidc4vci.SessionStateActive:
		return "active"
	case oidc4vci.SessionStateFetched:
		return "fetched"
	case oidc4vci.SessionStateCompleted:
		return "completed"
	case oidc4vci.SessionStateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vci

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/internal/logfields"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/event/spi"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/profile"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/resterr"
	oidc4vcierr "github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/resterr/oidc4vci"
)

// IssueCredential processes a wallet credential request: classifies the access
// token, resolves claims, then either verifies the proofs and returns encoded
// credentials, or opens a deferred transaction. On the deferred path only the
// first proof is verified and only its nonce is consumed.
func (s *Service) IssueCredential(
	ctx context.Context,
	tenant *profile.Issuer,
	token *TokenPayload,
	req *CredentialRequest,
) (*IssueCredentialResponse, error) {
	resp, session, err := s.issueCredential(ctx, tenant, token, req)
	if err != nil {
		code := failureCode(err)

		s.metrics.IssuanceFailed(tenant.ID, code)

		if session != nil {
			s.sendFailedEvent(ctx, session, code, err)
		}

		return nil, err
	}

	return resp, nil
}

//nolint:funlen,gocognit
func (s *Service) issueCredential(
	ctx context.Context,
	tenant *profile.Issuer,
	token *TokenPayload,
	req *CredentialRequest,
) (*IssueCredentialResponse, *Session, error) {
	if _, ok := tenant.CredentialConfigurations[req.CredentialConfigurationID]; !ok {
		return nil, nil, oidc4vcierr.NewUnknownCredentialConfigurationError(
			fmt.Errorf("credential configuration %s is not supported", req.CredentialConfigurationID)).
			WithIncorrectValue(req.CredentialConfigurationID).
			WithComponent(resterr.IssuanceSvcComponent)
	}

	auth, err := s.ResolveAuthorization(ctx, tenant, token)
	if err != nil {
		return nil, nil, err
	}

	session := auth.Session

	if session.State != SessionStateActive {
		return nil, session, oidc4vcierr.NewCredentialRequestDeniedError(
			fmt.Errorf("issuance session is not active")).
			WithComponent(resterr.IssuanceSvcComponent)
	}

	if session.Type != SessionTypeExternal &&
		!lo.Contains(session.CredentialConfigurationIDs, req.CredentialConfigurationID) {
		return nil, session, oidc4vcierr.NewInvalidCredentialRequestError(
			fmt.Errorf("credential configuration %s was not offered", req.CredentialConfigurationID)).
			WithIncorrectValue(req.CredentialConfigurationID).
			WithComponent(resterr.IssuanceSvcComponent)
	}

	nonces, err := s.parseProofNonces(tenant, req.Proofs)
	if err != nil {
		return nil, session, err
	}

	claims, err := s.claimsResolver.Resolve(ctx, &ResolveClaimsRequest{
		Tenant:                    tenant,
		CredentialConfigurationID: req.CredentialConfigurationID,
		Session:                   session,
		Identity:                  auth.Identity,
		PresentedCredentials:      req.PresentedCredentials,
	})
	if err != nil {
		return nil, session, fmt.Errorf("resolve claims: %w", err)
	}

	if claims.Deferred {
		proof, proofErr := s.validateFirstProof(ctx, tenant, req.Proofs, nonces)
		if proofErr != nil {
			return nil, session, proofErr
		}

		resp, deferErr := s.deferIssuance(ctx, tenant, session, req.CredentialConfigurationID, proof, claims.Interval)
		return resp, session, deferErr
	}

	proofs, err := s.validateProofs(ctx, tenant, req.Proofs, nonces)
	if err != nil {
		return nil, session, err
	}

	credentials := make([]IssuedCredential, 0, len(proofs))

	holderCnfs := lo.Map(proofs, func(p *ProofResult, _ int) []byte {
		return p.HolderCnf
	})
	if len(holderCnfs) == 0 {
		// bearer issuance has no holder binding
		holderCnfs = [][]byte{nil}
	}

	for _, cnf := range holderCnfs {
		credential, encodeErr := s.encoder.Encode(ctx, &EncodeCredentialRequest{
			Tenant:                    tenant,
			CredentialConfigurationID: req.CredentialConfigurationID,
			HolderCnf:                 cnf,
			Session:                   session,
			Claims:                    claims.Claims,
		})
		if encodeErr != nil {
			return nil, session, fmt.Errorf("encode credential: %w", encodeErr)
		}

		credentials = append(credentials, IssuedCredential{Credential: credential})
	}

	notificationID := uuid.NewString()

	session.Notifications = append(session.Notifications, Notification{
		ID:                        notificationID,
		CredentialConfigurationID: req.CredentialConfigurationID,
	})
	session.State = SessionStateFetched

	if err = s.store.Update(ctx, session); err != nil {
		return nil, session, fmt.Errorf("update session: %w", err)
	}

	if err = s.sendEvent(ctx, session, spi.CredentialIssued, &EventPayload{
		NotificationID:            notificationID,
		CredentialConfigurationID: req.CredentialConfigurationID,
	}); err != nil {
		logger.Warnc(ctx, "send credential issued event",
			logfields.WithSessionID(string(session.ID)))
	}

	s.metrics.CredentialsIssued(tenant.ID, len(credentials))

	logger.Infoc(ctx, "credentials issued",
		logfields.WithTenantID(tenant.ID),
		logfields.WithSessionID(string(session.ID)),
		logfields.WithCredentialConfigurationID(req.CredentialConfigurationID))

	return &IssueCredentialResponse{
		Credentials:    credentials,
		NotificationID: notificationID,
	}, session, nil
}

// parseProofNonces extracts the nonce carried by each submitted proof without
// consuming anything. An empty proof list is allowed only for tenants that
// accept bearer tokens.
func (s *Service) parseProofNonces(tenant *profile.Issuer, rawProofs []string) ([]string, error) {
	if len(rawProofs) == 0 {
		if tenant.AuthorizationConfig != nil && tenant.AuthorizationConfig.AllowBearerTokens {
			return nil, nil
		}

		return nil, oidc4vcierr.NewInvalidProofError(
			errors.New("credential request carries no proof of possession")).
			WithComponent(resterr.IssuanceSvcComponent)
	}

	nonces := make([]string, len(rawProofs))

	for i, raw := range rawProofs {
		nonce, err := extractProofNonce(raw)
		if err != nil {
			return nil, oidc4vcierr.NewInvalidProofError(err).
				WithComponent(resterr.IssuanceSvcComponent)
		}

		nonces[i] = nonce
	}

	return nonces, nil
}

// validateProofs burns every distinct nonce referenced by the request's proofs
// before verifying any proof signature. A request that references even one
// unknown nonce therefore fails without consuming session state, while a
// request with valid nonces consumes all of them even if a later proof turns
// out to be malformed.
func (s *Service) validateProofs(
	ctx context.Context,
	tenant *profile.Issuer,
	rawProofs []string,
	nonces []string,
) ([]*ProofResult, error) {
	for _, nonce := range lo.Uniq(nonces) {
		if err := s.nonces.Consume(ctx, tenant.ID, nonce); err != nil {
			return nil, err
		}
	}

	results := make([]*ProofResult, len(rawProofs))

	for i, raw := range rawProofs {
		result, err := s.proofChecker.CheckJWTProof(ctx, raw, tenant, nonces[i])
		if err != nil {
			return nil, oidc4vcierr.NewInvalidProofError(err).
				WithComponent(resterr.IssuanceSvcComponent)
		}

		results[i] = result
	}

	return results, nil
}

// validateFirstProof consumes and verifies only the first proof of the batch,
// capturing the holder key a deferred transaction needs. The remaining proofs
// keep their nonces; the wallet will present fresh proofs when it retrieves
// the deferred credential.
func (s *Service) validateFirstProof(
	ctx context.Context,
	tenant *profile.Issuer,
	rawProofs []string,
	nonces []string,
) (*ProofResult, error) {
	if len(rawProofs) == 0 {
		return nil, nil
	}

	if err := s.nonces.Consume(ctx, tenant.ID, nonces[0]); err != nil {
		return nil, err
	}

	result, err := s.proofChecker.CheckJWTProof(ctx, rawProofs[0], tenant, nonces[0])
	if err != nil {
		return nil, oidc4vcierr.NewInvalidProofError(err).
			WithComponent(resterr.IssuanceSvcComponent)
	}

	return result, nil
}

func (s *Service) deferIssuance(
	ctx context.Context,
	tenant *profile.Issuer,
	session *Session,
	credentialConfigurationID string,
	proof *ProofResult,
	interval int32,
) (*IssueCredentialResponse, error) {
	var holderCnf []byte
	if proof != nil {
		holderCnf = proof.HolderCnf
	}

	txID, err := s.deferredCreator.CreateTransaction(ctx, tenant, &DeferredTransactionRequest{
		SessionID:                 session.ID,
		CredentialConfigurationID: credentialConfigurationID,
		HolderCnf:                 holderCnf,
		Interval:                  interval,
	})
	if err != nil {
		return nil, fmt.Errorf("create deferred transaction: %w", err)
	}

	if err = s.sendEvent(ctx, session, spi.IssuanceDeferred, &EventPayload{
		TransactionID:             txID,
		CredentialConfigurationID: credentialConfigurationID,
	}); err != nil {
		logger.Warnc(ctx, "send issuance deferred event",
			logfields.WithSessionID(string(session.ID)))
	}

	s.metrics.IssuanceDeferred(tenant.ID)

	logger.Infoc(ctx, "issuance deferred",
		logfields.WithTenantID(tenant.ID),
		logfields.WithSessionID(string(session.ID)),
		logfields.WithTransactionID(txID))

	return &IssueCredentialResponse{
		Deferred: &DeferredIssuance{
			TransactionID: txID,
			Interval:      interval,
		},
	}, nil
}

// failureCode extracts the protocol error code for metrics and events; errors
// with no protocol classification count as credential_request_denied.
func failureCode(err error) string {
	var rfcErr *oidc4vcierr.Error
	if errors.As(err, &rfcErr) {
		return string(rfcErr.Code())
	}

	return "credential_request_denied"
}

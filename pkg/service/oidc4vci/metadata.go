/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vci

import (
	"fmt"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/profile"
)

// GetIssuerMetadata builds the credential-issuer metadata document for one
// tenant, as served from its well-known endpoint.
func (s *Service) GetIssuerMetadata(tenant *profile.Issuer) *IssuerMetadata {
	base := fmt.Sprintf("%s/oidc/%s", s.issuerPublicHost, tenant.ID)

	metadata := &IssuerMetadata{
		CredentialIssuer:                  s.tenantIssuerURL(tenant),
		AuthorizationServers:              tenantAuthorizationServers(tenant),
		CredentialEndpoint:                base + "/credential",
		DeferredCredentialEndpoint:        base + "/deferred_credential",
		NonceEndpoint:                     base + "/nonce",
		NotificationEndpoint:              base + "/notification",
		CredentialConfigurationsSupported: map[string]CredentialConfigMeta{},
	}

	for id, config := range tenant.CredentialConfigurations {
		metadata.CredentialConfigurationsSupported[id] = CredentialConfigMeta{
			Format:                      config.Format,
			Scope:                       config.Scope,
			CryptographicBindingMethods: config.CryptographicBindingMethods,
			Display:                     config.Display,
		}
	}

	return metadata
}

func tenantAuthorizationServers(tenant *profile.Issuer) []string {
	cfg := tenant.AuthorizationConfig
	if cfg == nil {
		return nil
	}

	servers := make([]string, 0, 2+len(cfg.TrustedAuthorizationServers))

	if cfg.ChainedAuthorizationServer != "" {
		servers = append(servers, cfg.ChainedAuthorizationServer)
	}

	if cfg.LocalAuthorizationServer != "" {
		servers = append(servers, cfg.LocalAuthorizationServer)
	}

	servers = append(servers, cfg.TrustedAuthorizationServers...)

	return servers
}

/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package profile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/resterr"
)

// Registry serves tenant profiles loaded from a JSON file at startup.
type Registry struct {
	profiles map[ID]*Issuer
}

// NewRegistry reads tenant profiles from the given JSON file.
func NewRegistry(path string) (*Registry, error) {
	b, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("read profiles file: %w", err)
	}

	return NewRegistryFromJSON(b)
}

// NewRegistryFromJSON builds a Registry from raw JSON holding a list of profiles.
func NewRegistryFromJSON(b []byte) (*Registry, error) {
	var profiles []*Issuer

	if err := json.Unmarshal(b, &profiles); err != nil {
		return nil, fmt.Errorf("unmarshal profiles: %w", err)
	}

	m := make(map[ID]*Issuer, len(profiles))

	for _, p := range profiles {
		if p.ID == "" {
			return nil, fmt.Errorf("profile with empty id")
		}

		if p.AuthorizationConfig == nil || p.AuthorizationConfig.LocalAuthorizationServer == "" {
			return nil, fmt.Errorf("profile %s: local authorization server is required", p.ID)
		}

		if _, ok := m[p.ID]; ok {
			return nil, fmt.Errorf("duplicate profile id %s", p.ID)
		}

		m[p.ID] = p
	}

	return &Registry{profiles: m}, nil
}

// GetProfile returns the active profile with the given id.
func (r *Registry) GetProfile(profileID ID) (*Issuer, error) {
	p, ok := r.profiles[profileID]
	if !ok {
		return nil, resterr.ErrProfileNotFound
	}

	if !p.Active {
		return nil, resterr.ErrProfileInactive
	}

	return p, nil
}

// NotifyWebhook returns the tenant's notify webhook, if one is configured.
func (r *Registry) NotifyWebhook(tenantID string) (string, string, bool) {
	p, ok := r.profiles[tenantID]
	if !ok || p.NotifyWebhook == nil || p.NotifyWebhook.URL == "" {
		return "", "", false
	}

	return p.NotifyWebhook.URL, p.NotifyWebhook.AuthToken, true
}

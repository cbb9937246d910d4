/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jsonschema

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// Validator is a JSON schema validator.
type Validator interface {
	ValidateJSONSchema(data interface{}) error
}

// CachingValidator compiles a given schema once per cache key and reuses the
// compiled form for subsequent validations. Keys are expected to be stable per
// tenant and credential configuration.
type CachingValidator struct {
	cache map[string]Validator
	mutex sync.RWMutex
}

// NewCachingValidator returns a new caching JSON schema validator.
func NewCachingValidator() *CachingValidator {
	return &CachingValidator{
		cache: make(map[string]Validator),
	}
}

// Validate validates the given JSON document against the given schema.
func (c *CachingValidator) Validate(data interface{}, cacheKey string, schema []byte) error {
	validator, err := c.get(cacheKey, schema)
	if err != nil {
		return fmt.Errorf("get schema validator from cache: %w", err)
	}

	return validator.ValidateJSONSchema(data)
}

func (c *CachingValidator) get(cacheKey string, schema []byte) (Validator, error) {
	c.mutex.RLock()
	v, ok := c.cache[cacheKey]
	c.mutex.RUnlock()

	if ok {
		return v, nil
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if v, ok = c.cache[cacheKey]; ok {
		return v, nil
	}

	var schemaDoc map[string]interface{}

	if err := json.Unmarshal(schema, &schemaDoc); err != nil {
		return nil, fmt.Errorf("unmarshal JSON schema: %w", err)
	}

	schemaValidator, err := newValidator(schemaDoc)
	if err != nil {
		return nil, fmt.Errorf("create validator [%s]: %w", cacheKey, err)
	}

	c.cache[cacheKey] = schemaValidator

	return schemaValidator, nil
}

func newValidator(schema map[string]interface{}) (Validator, error) {
	schemaValidator, err := gojsonschema.NewSchemaLoader().Compile(gojsonschema.NewGoLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("compile JSON schema: %w", err)
	}

	return &validator{schema: schemaValidator}, nil
}

type validator struct {
	schema *gojsonschema.Schema
}

func (v *validator) ValidateJSONSchema(data interface{}) error {
	result, err := v.schema.Validate(gojsonschema.NewGoLoader(data))
	if err != nil {
		return fmt.Errorf("loader error: %w", err)
	}

	if !result.Valid() {
		return fmt.Errorf("validation error: %w", validationErrors(result.Errors()))
	}

	return nil
}

type validationErrors []gojsonschema.ResultError

func (e validationErrors) Error() string {
	var errMsg string

	for i, msg := range e {
		errMsg += msg.String()
		if i+1 < len(e) {
			errMsg += "; "
		}
	}

	return fmt.Sprintf("[%s]", errMsg)
}

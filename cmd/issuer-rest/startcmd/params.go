/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLEnvKey        = "ISSUER_REST_HOST_URL"
	hostURLFlagUsage     = "Host and port the service listens on, e.g. 0.0.0.0:8080. " +
		commonEnvVarUsageText + hostURLEnvKey

	hostURLExternalFlagName  = "host-url-external"
	hostURLExternalEnvKey    = "ISSUER_REST_HOST_URL_EXTERNAL"
	hostURLExternalFlagUsage = "Public base URL wallets use to reach the service, e.g. https://issuer.example.com. " +
		commonEnvVarUsageText + hostURLExternalEnvKey

	mongoDBURLFlagName  = "mongodb-url"
	mongoDBURLEnvKey    = "ISSUER_REST_MONGODB_URL"
	mongoDBURLFlagUsage = "MongoDB connection string, e.g. mongodb://localhost:27017. " +
		commonEnvVarUsageText + mongoDBURLEnvKey

	databaseNameFlagName  = "database-name"
	databaseNameEnvKey    = "ISSUER_REST_DATABASE_NAME"
	databaseNameFlagUsage = "Name of the MongoDB database. " +
		commonEnvVarUsageText + databaseNameEnvKey

	redisURLFlagName  = "redis-url"
	redisURLEnvKey    = "ISSUER_REST_REDIS_URL"
	redisURLFlagUsage = "Comma-separated Redis addresses. When set, the nonce ledger is kept in Redis " +
		"instead of MongoDB. " + commonEnvVarUsageText + redisURLEnvKey

	profilesFilePathFlagName  = "profiles-file-path"
	profilesFilePathEnvKey    = "ISSUER_REST_PROFILES_FILE_PATH"
	profilesFilePathFlagUsage = "Path to the JSON file with tenant issuer profiles. " +
		commonEnvVarUsageText + profilesFilePathEnvKey

	apiTokenFlagName  = "api-token" //nolint: gosec
	apiTokenEnvKey    = "ISSUER_REST_API_TOKEN"
	apiTokenFlagUsage = "API key protecting the tenant management endpoints. " +
		commonEnvVarUsageText + apiTokenEnvKey

	nonceSweepIntervalFlagName  = "nonce-sweep-interval"
	nonceSweepIntervalEnvKey    = "ISSUER_REST_NONCE_SWEEP_INTERVAL"
	nonceSweepIntervalFlagUsage = "How often expired nonces are removed, as a Go duration. Defaults to 10m. " +
		commonEnvVarUsageText + nonceSweepIntervalEnvKey

	deferredSweepIntervalFlagName  = "deferred-sweep-interval"
	deferredSweepIntervalEnvKey    = "ISSUER_REST_DEFERRED_SWEEP_INTERVAL"
	deferredSweepIntervalFlagUsage = "How often overdue deferred transactions are marked expired, " +
		"as a Go duration. Defaults to 1h. " + commonEnvVarUsageText + deferredSweepIntervalEnvKey
)

const (
	defaultNonceSweepInterval    = 10 * time.Minute
	defaultDeferredSweepInterval = time.Hour
)

type startupParameters struct {
	hostURL               string
	hostURLExternal       string
	mongoDBURL            string
	databaseName          string
	redisAddrs            []string
	profilesFilePath      string
	apiToken              string
	nonceSweepInterval    time.Duration
	deferredSweepInterval time.Duration
}

func getStartupParameters(cmd *cobra.Command) (*startupParameters, error) {
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	hostURLExternal, err := cmdutils.GetUserSetVarFromString(cmd, hostURLExternalFlagName,
		hostURLExternalEnvKey, false)
	if err != nil {
		return nil, err
	}

	mongoDBURL, err := cmdutils.GetUserSetVarFromString(cmd, mongoDBURLFlagName, mongoDBURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	databaseName, err := cmdutils.GetUserSetVarFromString(cmd, databaseNameFlagName, databaseNameEnvKey, false)
	if err != nil {
		return nil, err
	}

	redisAddrs := cmdutils.GetUserSetOptionalCSVVar(cmd, redisURLFlagName, redisURLEnvKey)

	profilesFilePath, err := cmdutils.GetUserSetVarFromString(cmd, profilesFilePathFlagName,
		profilesFilePathEnvKey, false)
	if err != nil {
		return nil, err
	}

	apiToken, err := cmdutils.GetUserSetVarFromString(cmd, apiTokenFlagName, apiTokenEnvKey, false)
	if err != nil {
		return nil, err
	}

	nonceSweepInterval, err := getDuration(cmd, nonceSweepIntervalFlagName, nonceSweepIntervalEnvKey,
		defaultNonceSweepInterval)
	if err != nil {
		return nil, err
	}

	deferredSweepInterval, err := getDuration(cmd, deferredSweepIntervalFlagName, deferredSweepIntervalEnvKey,
		defaultDeferredSweepInterval)
	if err != nil {
		return nil, err
	}

	return &startupParameters{
		hostURL:               hostURL,
		hostURLExternal:       hostURLExternal,
		mongoDBURL:            mongoDBURL,
		databaseName:          databaseName,
		redisAddrs:            redisAddrs,
		profilesFilePath:      profilesFilePath,
		apiToken:              apiToken,
		nonceSweepInterval:    nonceSweepInterval,
		deferredSweepInterval: deferredSweepInterval,
	}, nil
}

func getDuration(cmd *cobra.Command, flagName, envKey string,
	defaultDuration time.Duration) (time.Duration, error) {
	timeoutStr := cmdutils.GetUserSetOptionalVarFromString(cmd, flagName, envKey)

	if timeoutStr == "" {
		return defaultDuration, nil
	}

	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return -1, fmt.Errorf("invalid value [%s]: %w", timeoutStr, err)
	}

	return timeout, nil
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().StringP(hostURLExternalFlagName, "", "", hostURLExternalFlagUsage)
	startCmd.Flags().StringP(mongoDBURLFlagName, "", "", mongoDBURLFlagUsage)
	startCmd.Flags().StringP(databaseNameFlagName, "", "", databaseNameFlagUsage)
	startCmd.Flags().StringP(redisURLFlagName, "", "", redisURLFlagUsage)
	startCmd.Flags().StringP(profilesFilePathFlagName, "", "", profilesFilePathFlagUsage)
	startCmd.Flags().StringP(apiTokenFlagName, "", "", apiTokenFlagUsage)
	startCmd.Flags().StringP(nonceSweepIntervalFlagName, "", "", nonceSweepIntervalFlagUsage)
	startCmd.Flags().StringP(deferredSweepIntervalFlagName, "", "", deferredSweepIntervalFlagUsage)
}

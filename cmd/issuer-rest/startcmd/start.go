/*
Copyright OpenWallet Foundation Labs. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/client/claims"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/doc/validator/jsonschema"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/event/bus"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/event/spi"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/event/webhook"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/observability/metrics/prometheus"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/profile"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/resterr"
	issuerv1 "github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/v1/issuer"
	oidc4vciv1 "github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/restapi/v1/oidc4vci"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/service/accesstoken"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/service/credential"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/service/deferred"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/service/nonce"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/service/oidc4vci"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/service/proofcheck"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/service/wellknown"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/storage/mongodb"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/storage/mongodb/deferredtxstore"
	mongononcestore "github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/storage/mongodb/noncestore"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/storage/mongodb/sessionstore"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/storage/redis"
	redisnoncestore "github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/storage/redis/noncestore"
	"github.com/openwallet-foundation-labs/eudiplo-sub003/pkg/sweep"
)

var logger = log.New("issuer-rest")

const (
	httpReadHeaderTimeout = 5 * time.Second
	shutdownTimeout       = 10 * time.Second
)

// GetStartCmd returns the Cobra start command.
func GetStartCmd() *cobra.Command {
	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Start issuer-rest",
		Long:  "Start the credential issuance service",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := getStartupParameters(cmd)
			if err != nil {
				return err
			}

			return runService(params)
		},
	}

	createFlags(startCmd)

	return startCmd
}

func runService(params *startupParameters) error { //nolint:funlen
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, err := mongodb.New(params.mongoDBURL, params.databaseName)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := mongoClient.Close(); closeErr != nil {
			logger.Warn("close mongodb client", log.WithError(closeErr))
		}
	}()

	sessionStore, err := sessionstore.New(ctx, mongoClient)
	if err != nil {
		return err
	}

	deferredStore, err := deferredtxstore.New(ctx, mongoClient)
	if err != nil {
		return err
	}

	nonceStore, err := createNonceStore(ctx, params, mongoClient)
	if err != nil {
		return err
	}

	registry, err := profile.NewRegistry(params.profilesFilePath)
	if err != nil {
		return err
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}

	eventBus := bus.New()
	eventBus.Subscribe(spi.IssuerEventTopic, webhook.NewSubscriber(httpClient, registry))

	metrics := prometheus.GetMetrics()

	wellKnownSvc := wellknown.NewService(httpClient)

	nonceLedger := nonce.NewLedger(&nonce.Config{
		Store:   nonceStore,
		Metrics: metrics,
	})

	encoder := credential.NewEncoder(params.hostURLExternal)

	deferredSvc := deferred.NewService(&deferred.Config{
		Store:      deferredStore,
		Sessions:   sessionStore,
		Encoder:    encoder,
		EventSvc:   eventBus,
		EventTopic: spi.IssuerEventTopic,
		Metrics:    metrics,
	})

	issuanceSvc, err := oidc4vci.NewService(&oidc4vci.Config{
		SessionStore:     sessionStore,
		NonceLedger:      nonceLedger,
		DeferredCreator:  deferredSvc,
		ClaimsResolver:   claims.NewResolver(httpClient),
		Encoder:          encoder,
		ProofChecker:     proofcheck.NewChecker(params.hostURLExternal),
		IdentityProvider: &noopIdentityProvider{},
		WellKnownService: wellKnownSvc,
		SchemaValidator:  jsonschema.NewCachingValidator(),
		EventService:     eventBus,
		EventTopic:       spi.IssuerEventTopic,
		Metrics:          metrics,
		IssuerPublicHost: params.hostURLExternal,
	})
	if err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	oidc4vciv1.NewController(&oidc4vciv1.Config{
		ProfileRegistry: registry,
		IssuanceService: issuanceSvc,
		NonceService:    nonceLedger,
		DeferredService: deferredSvc,
		TokenVerifier:   accesstoken.NewVerifier(ctx, wellKnownSvc),
	}).RegisterRoutes(e)

	issuerv1.NewController(&issuerv1.Config{
		ProfileRegistry: registry,
		OfferService:    issuanceSvc,
		DeferredService: deferredSvc,
		APIToken:        params.apiToken,
	}).RegisterRoutes(e)

	e.GET("/metrics", echo.WrapHandler(prometheus.Handler()))
	e.GET("/ready", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	sweeper := sweep.NewRunner(
		sweep.Job{
			Name:     "nonce-ledger",
			Interval: params.nonceSweepInterval,
			Run:      nonceLedger.SweepExpired,
		},
		sweep.Job{
			Name:     "deferred-transactions",
			Interval: params.deferredSweepInterval,
			Run:      deferredSvc.SweepExpired,
		},
	)
	sweeper.Start(ctx)

	e.Server.ReadHeaderTimeout = httpReadHeaderTimeout

	go func() {
		logger.Info("starting issuer-rest", log.WithURL(params.hostURL))

		if serveErr := e.Start(params.hostURL); serveErr != nil && serveErr != http.ErrServerClosed {
			logger.Error("start http server", log.WithError(serveErr))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}

// nonceStore is what the nonce ledger needs from its backing store. Both the
// MongoDB and the Redis store satisfy it.
type nonceStore interface {
	Create(ctx context.Context, record *nonce.Record, ttl time.Duration) error
	GetAndDelete(ctx context.Context, tenantID, value string) (*nonce.Record, error)
	DeleteExpired(ctx context.Context) (int64, error)
}

func createNonceStore(
	ctx context.Context,
	params *startupParameters,
	mongoClient *mongodb.Client,
) (nonceStore, error) {
	if len(params.redisAddrs) > 0 {
		redisClient, err := redis.New(params.redisAddrs)
		if err != nil {
			return nil, err
		}

		return redisnoncestore.New(redisClient), nil
	}

	return mongononcestore.New(ctx, mongoClient)
}

// noopIdentityProvider serves deployments with no upstream identity source.
// The chained resolver then records the identity carried by the access token.
type noopIdentityProvider struct{}

func (p *noopIdentityProvider) UpstreamIdentity(
	_ context.Context, _, _ string,
) (*oidc4vci.AuthorizationIdentity, error) {
	return nil, resterr.ErrDataNotFound
}

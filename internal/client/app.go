package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-nexus-keeper/internal/adapter"
	"github.com/MKhiriev/go-nexus-keeper/internal/attributes"
	"github.com/MKhiriev/go-nexus-keeper/internal/config"
	"github.com/MKhiriev/go-nexus-keeper/internal/crypto"
	"github.com/MKhiriev/go-nexus-keeper/internal/logger"
	"github.com/MKhiriev/go-nexus-keeper/internal/service"
	"github.com/MKhiriev/go-nexus-keeper/internal/store"
	"github.com/MKhiriev/go-nexus-keeper/internal/workers"
)

// App is the per-invocation state of nexusctl. The attribute table is
// composed eagerly; the secret store and services are opened on first use,
// so commands that only read attributes need no secret file.
type App struct {
	cfg        *config.StructuredConfig
	attributes *attributes.Attributes

	once        sync.Once
	openErr     error
	secretStore store.SecretStore
	services    *service.Services

	logger *logger.Logger
}

func NewApp(cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	attrs, err := attributes.Load(attributes.Node{FQDN: cfg.Node.FQDN}, cfg.Node.AttributesFile)
	if err != nil {
		return nil, fmt.Errorf("load attributes: %w", err)
	}

	return &App{
		cfg:        cfg,
		attributes: attrs,
		logger:     log,
	}, nil
}

func (a *App) Attributes() *attributes.Attributes {
	return a.attributes
}

// Services opens the secret store and builds the services once.
func (a *App) Services(ctx context.Context) (*service.Services, error) {
	a.once.Do(func() {
		a.openErr = a.open(ctx)
	})
	return a.services, a.openErr
}

func (a *App) open(ctx context.Context) error {
	secret, err := crypto.LoadSecret(a.cfg.Secrets.SecretFile)
	if err != nil {
		return fmt.Errorf("load item secret: %w", err)
	}

	cipher, err := crypto.NewItemCipher(secret)
	if err != nil {
		return fmt.Errorf("create item cipher: %w", err)
	}

	secretStore, err := store.NewSecretStore(ctx, a.cfg.Secrets, a.logger)
	if err != nil {
		return fmt.Errorf("open secret store: %w", err)
	}

	connector := adapter.NewHTTPNexusConnector(a.cfg.Nexus, a.logger)

	a.secretStore = secretStore
	a.services = service.NewServices(secretStore, cipher, connector, a.attributes, a.cfg.Secrets.Bag, a.logger)
	return nil
}

// Converge runs convergence passes, every interval when interval is
// positive, until ctx is cancelled. onReport sees every pass.
func (a *App) Converge(ctx context.Context, interval time.Duration, onReport workers.ReportFunc) error {
	services, err := a.Services(ctx)
	if err != nil {
		return err
	}

	workers.NewWorkers(
		workers.NewConvergeWorker(services.ProvisionService, interval, onReport, a.logger),
	).Run(ctx)
	return nil
}

// Close releases the secret store when it was opened.
func (a *App) Close() error {
	if a.secretStore == nil {
		return nil
	}
	return a.secretStore.Close()
}

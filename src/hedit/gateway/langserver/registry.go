package langserver

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"go.lsp.dev/protocol"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/oakenai/hedit/src/hedit/internal/errors"
	"github.com/oakenai/hedit/src/hedit/internal/executor"
)

const (
	_configKeyServers            = "languageServers"
	_configKeyConfigFile         = "languageServer.configFile"
	_configKeyStartupTimeout     = "languageServer.startupTimeoutMs"
	_configKeyDiagnosticsTimeout = "languageServer.diagnosticsTimeoutMs"
)

// Module provides a language server registry for fx.
var Module = fx.Options(
	fx.Provide(New),
)

// Registry hands out one shared language server client per language id,
// starting servers on demand.
type Registry interface {
	// GetServer returns the client for the language, starting it if needed.
	GetServer(ctx context.Context, languageID protocol.LanguageIdentifier) (Client, error)
	// StartServer starts the server for the language, failing if it is already running.
	StartServer(ctx context.Context, languageID protocol.LanguageIdentifier) (Client, error)
	// StopServer shuts down the server for the language.
	StopServer(ctx context.Context, languageID protocol.LanguageIdentifier) error
	// Dispose shuts down every running server, aggregating failures.
	Dispose(ctx context.Context) error
}

// Params define values to be used by the language server registry.
type Params struct {
	fx.In

	Config    config.Provider
	Lifecycle fx.Lifecycle
	Launcher  executor.Launcher
	Logger    *zap.SugaredLogger
}

type registry struct {
	servers  map[protocol.LanguageIdentifier]ServerConfig
	launcher executor.Launcher
	logger   *zap.SugaredLogger

	startupTimeout     time.Duration
	diagnosticsTimeout time.Duration

	mu       sync.Mutex
	clients  map[protocol.LanguageIdentifier]Client
	starting map[protocol.LanguageIdentifier]*startAttempt

	// newClient is swapped in tests.
	newClient func(languageID protocol.LanguageIdentifier, cfg ServerConfig) Client
}

// startAttempt tracks one in-flight server start so that concurrent callers
// wait for the handshake instead of receiving a half-initialized client.
type startAttempt struct {
	done   chan struct{}
	client Client
	err    error
}

// New returns a Registry using the languageServers config table, optionally
// overridden by a standalone yaml file.
func New(p Params) (Registry, error) {
	r := &registry{
		servers:            make(map[protocol.LanguageIdentifier]ServerConfig),
		launcher:           p.Launcher,
		logger:             p.Logger,
		startupTimeout:     _defaultStartupTimeout,
		diagnosticsTimeout: _defaultDiagnosticsTimeout,
		clients:            make(map[protocol.LanguageIdentifier]Client),
		starting:           make(map[protocol.LanguageIdentifier]*startAttempt),
	}
	r.newClient = func(languageID protocol.LanguageIdentifier, cfg ServerConfig) Client {
		return NewClient(languageID, cfg, r.launcher, r.logger,
			WithStartupTimeout(r.startupTimeout),
			WithDiagnosticsTimeout(r.diagnosticsTimeout))
	}

	if err := r.processConfig(p.Config); err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: r.Dispose,
	})

	return r, nil
}

func (r *registry) processConfig(cfg config.Provider) error {
	servers := map[string]ServerConfig{}
	if err := cfg.Get(_configKeyServers).Populate(&servers); err != nil {
		return fmt.Errorf("getting config field %q: %w", _configKeyServers, err)
	}

	var configFile string
	if err := cfg.Get(_configKeyConfigFile).Populate(&configFile); err != nil {
		return fmt.Errorf("getting config field %q: %w", _configKeyConfigFile, err)
	}
	if configFile != "" {
		overrides, err := loadServerConfigFile(configFile)
		if err != nil {
			return err
		}
		for id, entry := range overrides {
			servers[id] = entry
		}
	}

	for id, entry := range servers {
		r.servers[protocol.LanguageIdentifier(id)] = entry
	}

	var startupMs int
	if err := cfg.Get(_configKeyStartupTimeout).Populate(&startupMs); err == nil && startupMs > 0 {
		r.startupTimeout = time.Duration(startupMs) * time.Millisecond
	}
	var diagnosticsMs int
	if err := cfg.Get(_configKeyDiagnosticsTimeout).Populate(&diagnosticsMs); err == nil && diagnosticsMs > 0 {
		r.diagnosticsTimeout = time.Duration(diagnosticsMs) * time.Millisecond
	}

	return nil
}

// loadServerConfigFile parses a standalone yaml file mapping language ids to
// server launch configuration.
func loadServerConfigFile(path string) (map[string]ServerConfig, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading language server config file: %w", err)
	}

	servers := map[string]ServerConfig{}
	if err := yaml.Unmarshal(contents, &servers); err != nil {
		return nil, fmt.Errorf("parsing language server config file: %w", err)
	}
	return servers, nil
}

func (r *registry) GetServer(ctx context.Context, languageID protocol.LanguageIdentifier) (Client, error) {
	for {
		r.mu.Lock()
		if client, ok := r.clients[languageID]; ok {
			r.mu.Unlock()
			return client, nil
		}
		attempt, inflight := r.starting[languageID]
		r.mu.Unlock()

		if inflight {
			// Another caller is mid-handshake, wait for its outcome.
			select {
			case <-attempt.done:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			if attempt.err != nil {
				return nil, attempt.err
			}
			return attempt.client, nil
		}

		client, err := r.StartServer(ctx, languageID)
		if err != nil {
			var already *errors.AlreadyRunningError
			if errors.As(err, &already) {
				// Lost the race to another caller, pick up its result.
				continue
			}
			return nil, err
		}
		return client, nil
	}
}

func (r *registry) StartServer(ctx context.Context, languageID protocol.LanguageIdentifier) (Client, error) {
	cfg, ok := r.servers[languageID]
	if !ok {
		return nil, &errors.ConfigNotFoundError{Language: languageID}
	}

	r.mu.Lock()
	if _, running := r.clients[languageID]; running {
		r.mu.Unlock()
		return nil, &errors.AlreadyRunningError{Language: languageID}
	}
	if _, inflight := r.starting[languageID]; inflight {
		r.mu.Unlock()
		return nil, &errors.AlreadyRunningError{Language: languageID}
	}
	attempt := &startAttempt{done: make(chan struct{})}
	r.starting[languageID] = attempt
	client := r.newClient(languageID, cfg)
	r.mu.Unlock()

	err := client.Initialize(ctx)

	// The client is published only once the handshake succeeded, so readers
	// never observe one that is not Ready.
	r.mu.Lock()
	delete(r.starting, languageID)
	if err == nil {
		r.clients[languageID] = client
		attempt.client = client
	} else {
		attempt.err = err
	}
	r.mu.Unlock()
	close(attempt.done)

	if err != nil {
		return nil, err
	}
	return client, nil
}

func (r *registry) StopServer(ctx context.Context, languageID protocol.LanguageIdentifier) error {
	r.mu.Lock()
	client, ok := r.clients[languageID]
	delete(r.clients, languageID)
	r.mu.Unlock()

	if !ok {
		return &errors.ConfigNotFoundError{Language: languageID}
	}
	return client.Shutdown(ctx)
}

func (r *registry) Dispose(ctx context.Context) error {
	r.mu.Lock()
	clients := make([]Client, 0, len(r.clients))
	for id, client := range r.clients {
		clients = append(clients, client)
		delete(r.clients, id)
	}
	r.mu.Unlock()

	var errs error
	for _, client := range clients {
		errs = multierr.Append(errs, client.Shutdown(ctx))
	}
	return errs
}

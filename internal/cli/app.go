// Package cli wires configuration, logging and the widget client for the
// xiboic commands.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bnema/xiboic/internal/application/port"
	"github.com/bnema/xiboic/internal/cli/styles"
	"github.com/bnema/xiboic/internal/domain/build"
	"github.com/bnema/xiboic/internal/domain/entity"
	"github.com/bnema/xiboic/internal/infrastructure/config"
	"github.com/bnema/xiboic/internal/infrastructure/preview"
	"github.com/bnema/xiboic/internal/infrastructure/transport"
	"github.com/bnema/xiboic/internal/logging"
	"github.com/bnema/xiboic/pkg/xiboic"
)

// Options are the global command line overrides.
type Options struct {
	ConfigFile    string
	TargetID      string
	PreviewScript string
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Client    *xiboic.Client

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration and builds the widget client from it.
func NewApp(opts Options) (*App, error) {
	var mgrOpts []config.ManagerOption
	if opts.ConfigFile != "" {
		mgrOpts = append(mgrOpts, config.WithConfigFile(opts.ConfigFile))
	}
	mgr, err := config.NewManager(mgrOpts...)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err = mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := mgr.Get()
	if opts.TargetID != "" {
		cfg.Widget.TargetID = opts.TargetID
	}
	if opts.PreviewScript != "" {
		cfg.Preview.Script = opts.PreviewScript
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	logCfg.Format = cfg.Logging.Format
	logCfg.TimeFormat = "15:04:05"
	logger, logCleanup, logErr := logging.NewWithFile(logCfg, cfg.LogFile())
	if logErr != nil {
		logger.Warn().Err(logErr).Str("file", cfg.Logging.File).Msg("log file disabled")
	}
	ctx := logging.WithContext(context.Background(), logger)
	ctx = logging.WithCorrelationID(ctx, uuid.NewString())

	client, err := newClient(ctx, cfg)
	if err != nil {
		logCleanup()
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Str("config_file", mgr.ConfigFileUsed()).
		Bool("preview", client.IsPreview()).
		Bool("visible", client.IsVisible()).
		Msg("cli initialized")

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(),
		Client:     client,
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

// newClient selects the host the way the config asks: a preview script is
// probed, preview.enabled forces the preview strategy, otherwise the
// player connection from [player] is used.
func newClient(ctx context.Context, cfg *config.Config) (*xiboic.Client, error) {
	opts := []xiboic.Option{
		xiboic.WithLogger(*logging.FromContext(ctx)),
		xiboic.WithConnection(cfg.Connection()),
		xiboic.WithTargetID(cfg.DefaultTargetID()),
		xiboic.WithLocation(cfg.Widget.Location),
	}

	var handler port.PreviewHandler
	if cfg.Preview.Script != "" {
		script, err := preview.LoadScriptHost(ctx, cfg.Preview.Script,
			preview.WithEvalTimeout(cfg.PreviewEvalTimeout()))
		if err != nil {
			return nil, err
		}
		handler = script
		opts = append(opts, xiboic.WithHostProbe(script), xiboic.WithPreviewHandler(script))
	}
	if cfg.Preview.Enabled {
		opts = append(opts, xiboic.WithHostContext(transport.NewPreviewHost(handler)))
	}

	return xiboic.New(opts...), nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// ExecutionContext reports where actions are currently routed.
func (a *App) ExecutionContext() entity.ExecutionContext {
	return entity.ExecutionContext{
		Visible: a.Client.IsVisible(),
		Preview: a.Client.IsPreview(),
	}
}

// Origin returns the player origin actions are sent to.
func (a *App) Origin() string {
	return a.Client.Connection().Origin()
}

// WatchConfig reconfigures the live connection whenever the config file
// changes. It fails when no config file was loaded.
func (a *App) WatchConfig() error {
	if a.Manager.ConfigFileUsed() == "" {
		return errors.New("no config file loaded")
	}
	a.Manager.OnConfigChange(func(cfg *config.Config) {
		a.Client.Config(cfg.Connection())
		logging.FromContext(a.ctx).Info().
			Str("origin", a.Client.Connection().Origin()).
			Msg("player connection reloaded")
	})
	return a.Manager.Watch()
}

// Close waits for in-flight player calls and closes the log file.
func (a *App) Close() error {
	if a.Client != nil {
		a.Client.Wait()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

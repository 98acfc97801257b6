package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jfmyers9/sharkfin/internal/config"
	"github.com/jfmyers9/sharkfin/internal/journal"
	"github.com/jfmyers9/sharkfin/internal/logging"
	"github.com/jfmyers9/sharkfin/pkg/grooveshark"
	"github.com/rs/zerolog"
)

// app bundles what every service command needs for one run
type app struct {
	cfg     *config.Config
	logger  zerolog.Logger
	client  *grooveshark.Client
	journal *journal.Journal
	runID   string
	logOut  io.Closer
}

// newApp loads configuration, sets up logging and the journal, and
// builds a client. It does not touch the network.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Grooveshark.APIKey == "" || cfg.Grooveshark.APISecret == "" {
		return nil, fmt.Errorf("Grooveshark credentials not configured. Run 'sharkfin configure' first")
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	logger, logOut := logging.Setup(logFile, level)

	a := &app{
		cfg:    cfg,
		logger: logger,
		runID:  uuid.NewString(),
		logOut: logOut,
	}
	a.logger = a.logger.With().Str("run_id", a.runID).Logger()

	clientCfg := grooveshark.Config{
		APIKey:    cfg.Grooveshark.APIKey,
		APISecret: cfg.Grooveshark.APISecret,
		BaseURL:   cfg.Endpoint,
		Timeout:   cfg.Timeout,
		UserAgent: "sharkfin/" + version,
		Logger:    logging.ClientLogger{Logger: a.logger},
	}
	if timeout > 0 {
		clientCfg.Timeout = timeout
	}

	if !noJournal && cfg.JournalPath != "" {
		j, err := openJournal(cfg.JournalPath)
		if err != nil {
			a.logger.Warn().Err(err).Str("path", cfg.JournalPath).Msg("Journal disabled")
		} else {
			a.journal = j
			clientCfg.OnCall = j.Hook(a.runID, a.logger)
		}
	}

	client, err := grooveshark.NewClient(clientCfg)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	a.client = client

	return a, nil
}

// openJournal opens the journal, creating its directory
func openJournal(path string) (*journal.Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}
	return journal.Open(path)
}

// login starts a session and authenticates when user credentials are
// configured. It reports whether a user is logged in.
func (a *app) login(ctx context.Context) (bool, error) {
	if !a.cfg.Grooveshark.HasLogin() {
		return false, nil
	}

	if _, err := a.client.Auth().StartSession(ctx); err != nil {
		return false, fmt.Errorf("failed to start session: %w", err)
	}

	user, err := a.client.Auth().Authenticate(ctx, a.cfg.Grooveshark.Login, a.cfg.Grooveshark.Password)
	if err != nil {
		return false, fmt.Errorf("failed to authenticate as %s: %w", a.cfg.Grooveshark.Login, err)
	}

	a.logger.Debug().Int64("user_id", user.UserID).Msg("Authenticated")
	return true, nil
}

// requireLogin is login for commands that cannot run anonymously
func (a *app) requireLogin(ctx context.Context) error {
	ok, err := a.login(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("this command needs grooveshark.login and grooveshark.password (or SHARKFIN_GROOVESHARK_LOGIN / SHARKFIN_GROOVESHARK_PASSWORD)")
	}
	return nil
}

// shutdown logs out of any open session and releases resources
func (a *app) shutdown(ctx context.Context) {
	if a.client != nil && a.client.SessionID() != "" {
		if _, err := a.client.Auth().Logout(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("Logout failed")
		}
	}
	a.close()
}

func (a *app) close() {
	if a.journal != nil {
		if err := a.journal.Close(); err != nil {
			a.logger.Warn().Err(err).Msg("Failed to close journal")
		}
	}
	if a.logOut != nil {
		_ = a.logOut.Close()
	}
}

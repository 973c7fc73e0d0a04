// Package cli implements the sqlsession command line.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lucasvillarinho/sqlsession/database"
	"github.com/lucasvillarinho/sqlsession/internal/config"
	"github.com/lucasvillarinho/sqlsession/internal/log"
)

// Session is the part of *database.Session the commands drive.
type Session interface {
	Fetch(ctx context.Context, statement string) (database.Row, error)
	FetchAll(ctx context.Context, statement string) ([]database.Row, error)
	Execute(ctx context.Context, statement string) (int64, error)
	InsertID() int64
	LastQueryDuration() time.Duration
	Columns() []string
	Escape(value string) string
	EscapeRaw(value string) string
	Close() error
}

// Opener connects a session.
type Opener func(ctx context.Context, cfg database.Config, logger *slog.Logger) (Session, error)

// App holds the dependencies shared by every command.
type App struct {
	Open Opener
	Fs   afero.Fs

	// Dir is searched for .sqlsession.yaml, .env and .env.local.
	Dir string

	// Prompt reads a secret from the terminal.
	Prompt func(message string) (string, error)

	viper *viper.Viper
}

// NewApp returns an App wired to the real filesystem, terminal and drivers.
func NewApp() *App {
	dir, _ := os.Getwd()

	return &App{
		Open:   OpenSession,
		Fs:     afero.NewOsFs(),
		Dir:    dir,
		Prompt: askPassword,
	}
}

// OpenSession connects a *database.Session.
func OpenSession(ctx context.Context, cfg database.Config, logger *slog.Logger) (Session, error) {
	s, err := database.New(ctx, cfg, database.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return s, nil
}

func askPassword(message string) (string, error) {
	var password string
	if err := survey.AskOne(&survey.Password{Message: message}, &password); err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return password, nil
}

// NewRootCmd builds the top-level `sqlsession` command.
func NewRootCmd(app *App) *cobra.Command {
	if app.viper == nil {
		app.viper = viper.New()
	}

	root := &cobra.Command{
		Use:           "sqlsession",
		Short:         "Run statements through a single database session",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.String("driver", "", "driver: mysql, postgres, mattn or modernc")
	pf.String("host", "", "server host")
	pf.Int("port", 0, "server port (0 selects the driver default)")
	pf.StringP("user", "u", "", "user name")
	pf.StringP("password", "p", "", "password")
	pf.StringP("database", "d", "", "database name, or file path for sqlite")
	pf.String("charset", "", "connection charset")
	pf.String("log-level", "", "log level: debug, info, warn or error")
	pf.String("log-format", "", "log format: text or json")
	pf.Bool("ask-password", false, "prompt for the password")

	bindings := map[string]string{
		config.KeyDriver:    "driver",
		config.KeyHost:      "host",
		config.KeyPort:      "port",
		config.KeyUsername:  "user",
		config.KeyPassword:  "password",
		config.KeyDatabase:  "database",
		config.KeyCharset:   "charset",
		config.KeyLogLevel:  "log-level",
		config.KeyLogFormat: "log-format",
	}
	for key, flag := range bindings {
		// flags are registered above, Lookup cannot return nil
		_ = app.viper.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(
		newQueryCmd(app),
		newFetchCmd(app),
		newExecCmd(app),
		newWatchCmd(app),
		newEscapeCmd(app),
	)

	return root
}

// session resolves the configuration and connects.
func (a *App) session(cmd *cobra.Command) (Session, error) {
	if ask, _ := cmd.Flags().GetBool("ask-password"); ask {
		password, err := a.Prompt("Password:")
		if err != nil {
			return nil, err
		}
		a.viper.Set(config.KeyPassword, password)
	}

	cfg, err := config.Loader{Fs: a.Fs, Dir: a.Dir, Viper: a.viper}.Load()
	if err != nil {
		return nil, err
	}

	logger, err := log.New(cmd.ErrOrStderr(), cfg.LogLevel, log.Format(cfg.LogFormat))
	if err != nil {
		return nil, err
	}

	return a.Open(cmd.Context(), cfg.Database, logger)
}

func statement(args []string) string {
	return strings.Join(args, " ")
}

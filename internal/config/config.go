// Package config loads session settings from flags, environment, dotenv files
// and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/lucasvillarinho/sqlsession/database"
	"github.com/lucasvillarinho/sqlsession/database/drivers"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SQLSESSION"

// Keys understood by Load.
const (
	KeyDriver    = "driver"
	KeyHost      = "host"
	KeyPort      = "port"
	KeyUsername  = "username"
	KeyPassword  = "password"
	KeyDatabase  = "database"
	KeyCharset   = "charset"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

var keys = []string{
	KeyDriver, KeyHost, KeyPort, KeyUsername, KeyPassword,
	KeyDatabase, KeyCharset, KeyLogLevel, KeyLogFormat,
}

// Config holds the resolved settings.
type Config struct {
	Database  database.Config
	LogLevel  string
	LogFormat string
}

// Loader resolves settings. Precedence, highest first: values set on Viper
// (bound flags), SQLSESSION_* environment variables, .env.local, .env, the
// .sqlsession.yaml file, defaults.
type Loader struct {
	// Fs is the filesystem config and dotenv files are read from.
	Fs afero.Fs

	// Dir is the working directory searched first.
	Dir string

	// Home is searched after Dir. Empty resolves the user's home directory.
	Home string

	// Viper carries bound flags. Nil creates a fresh instance.
	Viper *viper.Viper
}

// Load resolves the configuration.
func (l Loader) Load() (*Config, error) {
	fs := l.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	v := l.Viper
	if v == nil {
		v = viper.New()
	}

	home := l.Home
	if home == "" {
		dir, err := homedir.Dir()
		if err == nil {
			home = dir
		}
	}

	v.SetFs(fs)
	v.SetConfigName(".sqlsession")
	v.SetConfigType("yaml")
	if l.Dir != "" {
		v.AddConfigPath(l.Dir)
	}
	if home != "" {
		v.AddConfigPath(home)
		v.AddConfigPath(filepath.Join(home, ".config", "sqlsession"))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyDriver, string(drivers.DriverMySQL))
	v.SetDefault(KeyHost, "127.0.0.1")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	// .env.local is merged last so it overrides .env
	for _, name := range []string{".env", ".env.local"} {
		values, err := readDotenv(fs, filepath.Join(l.Dir, name))
		if err != nil {
			return nil, err
		}
		if len(values) == 0 {
			continue
		}
		if err := v.MergeConfigMap(values); err != nil {
			return nil, fmt.Errorf("merging %s: %w", name, err)
		}
	}

	return &Config{
		Database: database.Config{
			Driver:   drivers.DriverType(v.GetString(KeyDriver)),
			Host:     v.GetString(KeyHost),
			Port:     v.GetInt(KeyPort),
			Username: v.GetString(KeyUsername),
			Password: v.GetString(KeyPassword),
			Database: v.GetString(KeyDatabase),
			Charset:  v.GetString(KeyCharset),
		},
		LogLevel:  v.GetString(KeyLogLevel),
		LogFormat: v.GetString(KeyLogFormat),
	}, nil
}

// readDotenv returns the SQLSESSION_* entries of a dotenv file keyed by
// config key. A missing file yields no entries.
func readDotenv(fs afero.Fs, path string) (map[string]any, error) {
	f, err := fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	env, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	values := make(map[string]any)
	for _, key := range keys {
		if value, ok := env[EnvPrefix+"_"+strings.ToUpper(key)]; ok {
			values[key] = value
		}
	}

	return values, nil
}

package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/sqliteodbc/registerdriver/internal/odbcinst"
)

const (
	// DefaultSourcePath is the location of the bundled odbcinst.ini relative to the
	// installer resource directory.
	DefaultSourcePath = "Contents/Resources/odbcinst.ini"
	// DefaultDestinationPath is the location of the system odbcinst.ini relative to the
	// installation base directory.
	DefaultDestinationPath = "Library/ODBC/odbcinst.ini"
)

func init() {
	setupViper()
}

func setupViper() {
	viper.SetConfigType("yaml")
	viper.SetConfigName("registerdriver")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("REGISTERDRIVER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// NewConfig resolves the configuration for a single run from the positional arguments,
// command line flags, environment variables and an optional config file.
func NewConfig(cmd *cobra.Command, flags *pflag.FlagSet, args []string) (*Config, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("expected 2 arguments (resource directory, base directory), got %d", len(args))
	}

	configFile, _ := flags.GetString("config")
	if err := parseConfigFile(configFile); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	bindFlags(cmd)

	prefer, err := odbcinst.ParsePrecedence(flagString(flags, "prefer"))
	if err != nil {
		return nil, err
	}

	conf := &Config{
		ResourceDir:     args[0],
		BaseDir:         args[1],
		SourcePath:      flagString(flags, "source-path"),
		DestinationPath: flagString(flags, "destination-path"),
		Prefer:          prefer,
		Backup:          flagBool(flags, "backup"),
		DryRun:          flagBool(flags, "dry-run"),
		Report:          flagString(flags, "report"),
		Verbose:         flagBool(flags, "verbose"),
		Trace:           flagBool(flags, "trace"),
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

// parseConfigFile loads the optional YAML config file. A missing file is only an error
// when the path was specified explicitly.
func parseConfigFile(configFile string) error {
	if len(configFile) > 0 {
		b, err := os.ReadFile(configFile)
		if err != nil {
			return fmt.Errorf("unable to read specified config file: %w", err)
		}

		if err := viper.ReadConfig(bytes.NewBuffer(b)); err != nil {
			return fmt.Errorf("error parsing config file '%s': %w", configFile, err)
		}

		slog.Debug("Configuration file found", "path", configFile)
		return nil
	}

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			slog.Debug("No config file found, using defaults")
			return nil
		}
		return fmt.Errorf("error parsing config file: %w", err)
	}

	slog.Debug("Configuration file found", "path", viper.ConfigFileUsed())
	return nil
}

// bindFlags ensures that for each flag defined, the equivalent env var or config file
// entry is also checked for a value.
func bindFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their equivalent keys with underscores
		if strings.Contains(f.Name, "-") {
			viper.BindEnv(f.Name, flagToEnvVar(f.Name))
		}

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && viper.IsSet(f.Name) {
			val := viper.Get(f.Name)
			slog.Debug("Override detected", "flag", f.Name, "value", fmt.Sprintf("%v", val), "env_var", flagToEnvVar(f.Name))
			cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
		}
	})
}

// flagToEnvVar converts command flag name to equivalent environment variable name
func flagToEnvVar(flag string) string {
	envVarSuffix := strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
	return fmt.Sprintf("%s_%s", viper.GetEnvPrefix(), envVarSuffix)
}

func flagString(flags *pflag.FlagSet, key string) string {
	value, _ := flags.GetString(key)
	return value
}

func flagBool(flags *pflag.FlagSet, key string) bool {
	value, _ := flags.GetBool(key)
	return value
}

func (c *Config) validate() error {
	if len(c.ResourceDir) == 0 || len(c.BaseDir) == 0 {
		return errors.New("resource and base directories must not be empty")
	}

	for name, p := range map[string]string{"source-path": c.SourcePath, "destination-path": c.DestinationPath} {
		if len(p) == 0 {
			return fmt.Errorf("%s must not be empty", name)
		}
		if filepath.IsAbs(p) {
			return fmt.Errorf("%s must be relative, got '%s'", name, p)
		}
	}

	return nil
}

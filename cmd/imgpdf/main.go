// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the imgpdf CLI. It uploads images to
// a remote conversion service and saves the PDF it returns.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/imgpdf/internal/logging"
	"github.com/pdiddy/imgpdf/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is the diagnostic logger, configured in PersistentPreRunE.
var logger = zerolog.Nop()

const (
	defaultEndpoint = "http://localhost:8000"
	defaultPath     = "/convert/"
	defaultField    = "files"
	defaultTimeout  = 60 * time.Second
)

// rootCmd is the base command for the imgpdf CLI.
var rootCmd = &cobra.Command{
	Use:   "imgpdf",
	Short: "Convert images to a PDF with a remote conversion service",
	Long: `imgpdf sends image files to a conversion service (POST /convert/) as one
multipart request and saves the PDF it returns.

Use "convert" for a single attempt, or "session" to run one attempt per line
of stdin against a single download slot.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.New(loadConfig().Log, cmd.ErrOrStderr())
		if f := viper.ConfigFileUsed(); f != "" {
			logger.Debug().Str("file", f).Msg("using config file")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./imgpdf.yaml or ~/.config/imgpdf/imgpdf.yaml)")
	pf.String("endpoint", defaultEndpoint, "base URL of the conversion service")
	pf.Duration("timeout", defaultTimeout, "deadline for one attempt, including the response body")
	pf.StringP("output", "o", "", "where to save the PDF")
	pf.Bool("inspect", false, "count pages of the returned PDF")
	pf.Bool("progress", false, "show upload progress on stderr")
	pf.Bool("no-color", false, "disable colored status output")
	pf.Bool("spinner", true, "animate the processing status on stderr")
	pf.String("log-level", "warn", "diagnostic log level: debug, info, warn, error")
	pf.String("log-format", "console", "diagnostic log format: console or json")

	for key, flag := range map[string]string{
		"endpoint":   "endpoint",
		"timeout":    "timeout",
		"output":     "output",
		"inspect":    "inspect",
		"progress":   "progress",
		"no_color":   "no-color",
		"spinner":    "spinner",
		"log.level":  "log-level",
		"log.format": "log-format",
	} {
		if err := viper.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	viper.SetDefault("endpoint", defaultEndpoint)
	viper.SetDefault("path", defaultPath)
	viper.SetDefault("field", defaultField)
	viper.SetDefault("timeout", defaultTimeout)
	viper.SetDefault("user_agent", "imgpdf/"+version)
	viper.SetDefault("spinner", true)
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.format", "console")
}

func initConfig() {
	// A missing .env is normal; variables from it feed AutomaticEnv below.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("imgpdf")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "imgpdf"))
		}
	}

	viper.SetEnvPrefix("IMGPDF")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "reading config:", err)
		}
	}
}

// loadConfig assembles the effective configuration from flags, environment,
// config file and defaults.
func loadConfig() types.Config {
	return types.Config{
		Conversion: types.ConversionConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("timeout"),
				UserAgent: viper.GetString("user_agent"),
			},
			Endpoint: viper.GetString("endpoint"),
			Path:     viper.GetString("path"),
			Field:    viper.GetString("field"),
			APIToken: viper.GetString("api_token"),
			Inspect:  viper.GetBool("inspect"),
		},
		Display: types.DisplayConfig{
			Output:   viper.GetString("output"),
			NoColor:  viper.GetBool("no_color"),
			Spinner:  viper.GetBool("spinner"),
			Progress: viper.GetBool("progress"),
		},
		Log: types.LogConfig{
			Level:  viper.GetString("log.level"),
			Format: viper.GetString("log.format"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

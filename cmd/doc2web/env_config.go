package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-doc2web/internal/config"
	"github.com/alnah/go-doc2web/internal/hints"
)

// envConfig holds configuration from environment variables.
// Credentials only ever come from here, never from the config file.
type envConfig struct {
	APIKey       string // BAIDU_API_KEY: OCR and ERNIE client ID
	APISecret    string // BAIDU_API_SECRET: OCR and ERNIE client secret
	ConfigPath   string // DOC2WEB_CONFIG: config file name or path
	OutputDir    string // DOC2WEB_OUTPUT_DIR: output directory
	RenderAPIKey string // DOC2WEB_RENDER_API_KEY: openai provider key
	Offline      bool   // DOC2WEB_OFFLINE: skip every service call
}

// knownEnvVars lists valid DOC2WEB_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"DOC2WEB_CONFIG":         true,
	"DOC2WEB_OUTPUT_DIR":     true,
	"DOC2WEB_RENDER_API_KEY": true,
	"DOC2WEB_OFFLINE":        true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparsable values are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		APIKey:       os.Getenv(hints.EnvAPIKey),
		APISecret:    os.Getenv(hints.EnvAPISecret),
		ConfigPath:   os.Getenv("DOC2WEB_CONFIG"),
		OutputDir:    os.Getenv("DOC2WEB_OUTPUT_DIR"),
		RenderAPIKey: os.Getenv("DOC2WEB_RENDER_API_KEY"),
	}

	if offline := os.Getenv("DOC2WEB_OFFLINE"); offline != "" {
		if v, err := strconv.ParseBool(offline); err == nil {
			cfg.Offline = v
		}
	}

	return cfg
}

// hasCredentials reports whether both service credentials are set.
func (e *envConfig) hasCredentials() bool {
	return e.APIKey != "" && e.APISecret != ""
}

// warnUnknownEnvVars writes warnings for unrecognized DOC2WEB_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "DOC2WEB_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// The output directory only replaces the default, so a value from the config
// file wins: CLI flags > config file > env vars > defaults.
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" && cfg.Output.Dir == config.DefaultOutputDir {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Offline {
		cfg.Services.Offline = true
	}
}

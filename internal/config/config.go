package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-doc2web/internal/fileutil"
	"github.com/alnah/go-doc2web/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidOutput   = errors.New("invalid output configuration")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxURLLength      = 2048 // Browser limit
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxFileNameLength = 255  // NAME_MAX
	MaxModelLength    = 100  // "ernie-4.5-8k-preview"
	MaxAssetNameLen   = 100  // Style or template name
)

// Defaults applied to empty fields.
const (
	DefaultOutputDir    = "output"
	DefaultHTMLName     = "index.html"
	DefaultMarkupName   = "content.md"
	DefaultProvider     = ProviderErnie
	DefaultTemperature  = 0.7
	DefaultTopP         = 0.9
	MaxTimeoutSeconds   = 3600
	configSearchDirName = "go-doc2web"
)

// Supported render providers.
const (
	ProviderErnie  = "ernie"
	ProviderOpenAI = "openai"
)

// Config holds all configuration for a conversion run. Credentials are never
// part of it: they come from the environment only.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Auth     AuthConfig     `yaml:"auth"`
	OCR      OCRConfig      `yaml:"ocr"`
	Render   RenderConfig   `yaml:"render"`
	Services ServicesConfig `yaml:"services"`
	Assets   AssetsConfig   `yaml:"assets"`
}

// OutputConfig defines where artifacts are written.
type OutputConfig struct {
	Dir    string `yaml:"dir"`    // Default: "output"
	HTML   string `yaml:"html"`   // File name inside Dir (default: "index.html")
	Markup string `yaml:"markup"` // File name inside Dir (default: "content.md")
}

// AuthConfig defines the OAuth2 token endpoint.
type AuthConfig struct {
	TokenURL string `yaml:"tokenURL"` // Empty = Baidu AI Cloud token endpoint
}

// OCRConfig defines the extraction service.
type OCRConfig struct {
	Endpoint string `yaml:"endpoint"` // Empty = Baidu document analysis
}

// RenderConfig defines the generative rendering service and the local
// fallback renderer.
type RenderConfig struct {
	Provider    string  `yaml:"provider"`    // "ernie" (default) or "openai"
	Endpoint    string  `yaml:"endpoint"`    // ERNIE chat endpoint
	BaseURL     string  `yaml:"baseURL"`     // OpenAI-compatible base URL
	Model       string  `yaml:"model"`       // OpenAI-compatible model name
	Temperature float64 `yaml:"temperature"` // 0 to 1 (default: 0.7)
	TopP        float64 `yaml:"topP"`        // 0 to 1 (default: 0.9)
	EscapeText  bool    `yaml:"escapeText"`  // HTML-escape block text in the fallback page
}

// ServicesConfig defines behaviour shared by all remote calls.
type ServicesConfig struct {
	Offline        bool `yaml:"offline"`        // Skip every service call
	TimeoutSeconds int  `yaml:"timeoutSeconds"` // Per-request timeout, 0 = none
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
	Style    string `yaml:"style"`    // Default: "default"
	Template string `yaml:"template"` // Default: "page"
}

// ApplyDefaults fills empty fields with their defaults and lowercases the
// provider name.
func (c *Config) ApplyDefaults() {
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
	if c.Output.HTML == "" {
		c.Output.HTML = DefaultHTMLName
	}
	if c.Output.Markup == "" {
		c.Output.Markup = DefaultMarkupName
	}
	c.Render.Provider = strings.ToLower(c.Render.Provider)
	if c.Render.Provider == "" {
		c.Render.Provider = DefaultProvider
	}
	if c.Render.Temperature == 0 {
		c.Render.Temperature = DefaultTemperature
	}
	if c.Render.TopP == 0 {
		c.Render.TopP = DefaultTopP
	}
}

// Validate checks field values and lengths. Called automatically by
// LoadConfig, but available for callers who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFileName("output.html", c.Output.HTML); err != nil {
		return err
	}
	if err := validateFileName("output.markup", c.Output.Markup); err != nil {
		return err
	}
	if c.Output.HTML != "" && c.Output.HTML == c.Output.Markup {
		return fmt.Errorf("%w: output.html and output.markup must differ", ErrInvalidOutput)
	}

	for field, value := range map[string]string{
		"auth.tokenURL":   c.Auth.TokenURL,
		"ocr.endpoint":    c.OCR.Endpoint,
		"render.endpoint": c.Render.Endpoint,
		"render.baseURL":  c.Render.BaseURL,
	} {
		if err := validateFieldLength(field, value, MaxURLLength); err != nil {
			return err
		}
	}

	switch strings.ToLower(c.Render.Provider) {
	case "", ProviderErnie, ProviderOpenAI:
		// valid
	default:
		return fmt.Errorf("%w: render.provider %q (must be ernie or openai)", ErrInvalidValue, c.Render.Provider)
	}
	if err := validateFieldLength("render.model", c.Render.Model, MaxModelLength); err != nil {
		return err
	}
	if c.Render.Temperature < 0 || c.Render.Temperature > 1 {
		return fmt.Errorf("%w: render.temperature must be between 0 and 1, got %.2f", ErrInvalidValue, c.Render.Temperature)
	}
	if c.Render.TopP < 0 || c.Render.TopP > 1 {
		return fmt.Errorf("%w: render.topP must be between 0 and 1, got %.2f", ErrInvalidValue, c.Render.TopP)
	}

	if c.Services.TimeoutSeconds < 0 || c.Services.TimeoutSeconds > MaxTimeoutSeconds {
		return fmt.Errorf("%w: services.timeoutSeconds must be between 0 and %d, got %d",
			ErrInvalidValue, MaxTimeoutSeconds, c.Services.TimeoutSeconds)
	}

	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.style", c.Assets.Style, MaxAssetNameLen); err != nil {
		return err
	}
	return validateFieldLength("assets.template", c.Assets.Template, MaxAssetNameLen)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateFileName requires a bare file name: artifacts always land directly
// inside output.dir.
func validateFileName(fieldName, value string) error {
	if value == "" {
		return nil
	}
	if err := validateFieldLength(fieldName, value, MaxFileNameLength); err != nil {
		return err
	}
	if value == "." || value == ".." || strings.ContainsAny(value, `/\`) {
		return fmt.Errorf("%w: %s must be a file name, got %q", ErrInvalidOutput, fieldName, value)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order:
// the current directory first, then the user config directory, each with the
// .yaml and .yml extensions.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configSearchDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

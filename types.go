package doc2web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/alnah/go-doc2web/internal/config"
	"github.com/alnah/go-doc2web/internal/providers"
)

// Path tells which way a stage produced its output.
type Path string

// Stage paths.
const (
	PathService  Path = "service"
	PathFallback Path = "fallback"
)

// Render providers.
const (
	ProviderErnie  = config.ProviderErnie
	ProviderOpenAI = config.ProviderOpenAI
)

// Input contains conversion parameters.
type Input struct {
	DocumentPath string // PDF or image to extract (optional, empty = demonstration document)
}

// Result describes a completed conversion.
type Result struct {
	HTML       string // Rendered page
	Markup     string // Canonical markup the page was rendered from
	HTMLPath   string // Where HTML was written
	MarkupPath string // Where Markup was written
	Extraction Path   // How the document was extracted
	Rendering  Path   // How the page was rendered
	Pages      int    // Input page count when known, 0 otherwise
	RunID      string // Unique identifier of this run, also present in logs
}

// Credentials authenticate against the Baidu AI Cloud token endpoint.
type Credentials struct {
	APIKey    string
	APISecret string
	TokenURL  string // Empty = Baidu AI Cloud default
}

// RenderService selects and configures the generative renderer.
type RenderService struct {
	Provider    string  // "ernie" (default) or "openai"
	Endpoint    string  // ERNIE chat endpoint (ernie)
	BaseURL     string  // Chat-completions base URL (openai)
	Model       string  // Model name (openai)
	APIKey      string  // Bearer key (openai)
	Temperature float64 // 0 = provider default
	TopP        float64 // 0 = provider default
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	credentials Credentials
	offline     bool
	timeout     time.Duration
	httpClient  *http.Client
	outputDir   string
	htmlName    string
	markupName  string
	ocrEndpoint string
	render      RenderService
	escapeText  bool
	assetPath   string
	style       string
	template    string
}

// WithLogger sets the structured logger. Logs are discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCredentials sets the OCR and ERNIE credentials.
func WithCredentials(creds Credentials) Option {
	return func(c *Converter) {
		c.cfg.credentials = creds
	}
}

// WithOffline skips every service call when true.
func WithOffline(offline bool) Option {
	return func(c *Converter) {
		c.cfg.offline = offline
	}
}

// WithTimeout bounds each service request. Zero means no limit.
// Panics if d < 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d < 0 {
		panic("doc2web: WithTimeout duration must not be negative")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithHTTPClient sets the client used for every service call.
// It takes precedence over WithTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Converter) {
		c.cfg.httpClient = client
	}
}

// WithOutputDir sets the directory artifacts are written to.
func WithOutputDir(dir string) Option {
	return func(c *Converter) {
		c.cfg.outputDir = dir
	}
}

// WithArtifactNames sets the file names of the page and markup artifacts.
// Empty names keep their defaults.
func WithArtifactNames(html, markup string) Option {
	return func(c *Converter) {
		if html != "" {
			c.cfg.htmlName = html
		}
		if markup != "" {
			c.cfg.markupName = markup
		}
	}
}

// WithOCREndpoint overrides the OCR service URL.
func WithOCREndpoint(endpoint string) Option {
	return func(c *Converter) {
		c.cfg.ocrEndpoint = endpoint
	}
}

// WithRenderService configures the generative renderer.
func WithRenderService(svc RenderService) Option {
	return func(c *Converter) {
		c.cfg.render = svc
	}
}

// WithEscapeText HTML-escapes block text in fallback pages.
// Off by default: block text is inserted verbatim.
func WithEscapeText(escape bool) Option {
	return func(c *Converter) {
		c.cfg.escapeText = escape
	}
}

// WithAssetPath sets a directory holding custom styles/ and templates/.
// Missing assets fall back to the embedded ones.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom asset loader. Takes precedence over WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}

// WithStyle selects the stylesheet by name.
func WithStyle(name string) Option {
	return func(c *Converter) {
		c.cfg.style = name
	}
}

// WithTemplate selects the page template by name.
func WithTemplate(name string) Option {
	return func(c *Converter) {
		c.cfg.template = name
	}
}

// toProviderCredentials maps public credentials to the token cache input.
func (c Credentials) toProviderCredentials() providers.Credentials {
	return providers.Credentials{
		ClientID:     c.APIKey,
		ClientSecret: c.APISecret,
		TokenURL:     c.TokenURL,
	}
}

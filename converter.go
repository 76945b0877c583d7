package doc2web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/alnah/go-doc2web/internal/config"
	"github.com/alnah/go-doc2web/internal/fileutil"
	"github.com/alnah/go-doc2web/internal/layout"
	"github.com/alnah/go-doc2web/internal/pipeline"
	"github.com/alnah/go-doc2web/internal/providers"
)

// extractor abstracts the OCR service for the extraction stage.
type extractor interface {
	Extract(ctx context.Context, tokens providers.TokenSource, document []byte) providers.Outcome[layout.Extraction]
}

// Compile-time interface implementation checks.
var (
	_ extractor             = (*providers.OCRClient)(nil)
	_ providers.Generator   = (*providers.ErnieGenerator)(nil)
	_ providers.Generator   = (*providers.OpenAIGenerator)(nil)
	_ pipeline.HTMLRenderer = (*pipeline.Renderer)(nil)
)

// Run states, logged at debug level as each stage completes.
const (
	stateExtracted  = "extracted"
	stateNormalized = "normalized"
	stateRendered   = "rendered"
	statePersisted  = "persisted"
)

// Converter orchestrates the document-to-page pipeline.
// Create with NewConverter() and call Convert() once per document. A
// Converter holds no per-run state, so it may be reused and shared.
type Converter struct {
	cfg               converterConfig
	logger            *slog.Logger
	publicAssetLoader AssetLoader
	renderer          *pipeline.Renderer
	extractor         extractor
	generator         providers.Generator
	newRunID          func() string
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithCredentials, WithOutputDir).
// Returns error if asset loading, template parsing or option validation fails.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			outputDir:  config.DefaultOutputDir,
			htmlName:   config.DefaultHTMLName,
			markupName: config.DefaultMarkupName,
			style:      DefaultStyle,
			template:   DefaultTemplate,
		},
		logger:   slog.New(slog.DiscardHandler),
		newRunID: uuid.NewString,
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.validateConfig(); err != nil {
		return nil, err
	}

	if c.renderer == nil {
		renderer, err := c.loadRenderer()
		if err != nil {
			return nil, err
		}
		c.renderer = renderer
	}

	client := c.cfg.httpClient
	if client == nil {
		client = &http.Client{Timeout: c.cfg.timeout}
		c.cfg.httpClient = client
	}

	if c.extractor == nil {
		c.extractor = providers.NewOCRClient(providers.OCRConfig{
			Endpoint:   c.cfg.ocrEndpoint,
			HTTPClient: client,
		})
	}

	if c.generator == nil {
		generator, err := newGenerator(c.cfg.render, client)
		if err != nil {
			return nil, err
		}
		c.generator = generator
	}

	return c, nil
}

// validateConfig checks artifact names before anything touches the disk.
func (c *Converter) validateConfig() error {
	cfg := config.Config{
		Output: config.OutputConfig{
			Dir:    c.cfg.outputDir,
			HTML:   c.cfg.htmlName,
			Markup: c.cfg.markupName,
		},
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if c.cfg.outputDir == "" {
		return fmt.Errorf("%w: output directory cannot be empty", ErrInvalidOutput)
	}
	return nil
}

// loadRenderer resolves the page template and stylesheet and builds the
// fallback renderer.
func (c *Converter) loadRenderer() (*pipeline.Renderer, error) {
	loader := c.publicAssetLoader
	if loader == nil {
		var err error
		loader, err = NewAssetLoader(c.cfg.assetPath)
		if err != nil {
			return nil, err
		}
	}

	page, err := loader.LoadTemplate(c.cfg.template)
	if err != nil {
		return nil, fmt.Errorf("loading page template: %w", err)
	}
	style, err := loader.LoadStyle(c.cfg.style)
	if err != nil {
		return nil, fmt.Errorf("loading style: %w", err)
	}

	renderer, err := pipeline.NewRenderer(page, style)
	if err != nil {
		return nil, err
	}
	renderer.EscapeText = c.cfg.escapeText
	return renderer, nil
}

// newGenerator builds the configured generative renderer.
func newGenerator(svc RenderService, client *http.Client) (providers.Generator, error) {
	switch svc.Provider {
	case "", ProviderErnie:
		return providers.NewErnieGenerator(providers.ErnieConfig{
			Endpoint:    svc.Endpoint,
			Temperature: svc.Temperature,
			TopP:        svc.TopP,
			HTTPClient:  client,
		}), nil
	case ProviderOpenAI:
		return providers.NewOpenAIGenerator(providers.OpenAIConfig{
			APIKey:      svc.APIKey,
			BaseURL:     svc.BaseURL,
			Model:       svc.Model,
			Temperature: svc.Temperature,
			TopP:        svc.TopP,
			HTTPClient:  client,
		}), nil
	default:
		return nil, fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidProvider, svc.Provider, ProviderErnie, ProviderOpenAI)
	}
}

// Convert runs the full pipeline and writes both artifacts.
// Service failures fall back to local processing and are only logged; the
// returned error is non-nil when an artifact cannot be written or ctx ends.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{RunID: c.newRunID()}
	log := c.logger.With("run", res.RunID)
	tokens := providers.NewTokenCache(c.cfg.credentials.toProviderCredentials(), c.cfg.httpClient)

	extraction, pages := c.extract(ctx, log, tokens, input, res)
	res.Pages = pages
	log.Debug("stage complete", "state", stateExtracted, "path", res.Extraction)

	res.Markup = pipeline.Normalize(extraction)
	log.Debug("stage complete", "state", stateNormalized, "bytes", len(res.Markup))

	res.MarkupPath, err = c.persist(c.cfg.markupName, res.Markup)
	if err != nil {
		return nil, err
	}

	res.HTML, err = c.render(ctx, log, tokens, res)
	if err != nil {
		return nil, err
	}
	log.Debug("stage complete", "state", stateRendered, "path", res.Rendering)

	res.HTMLPath, err = c.persist(c.cfg.htmlName, res.HTML)
	if err != nil {
		return nil, err
	}
	log.Debug("stage complete", "state", statePersisted, "file", res.HTMLPath)

	log.Info("conversion complete",
		"extraction", res.Extraction,
		"rendering", res.Rendering,
		"html", res.HTMLPath,
		"markup", res.MarkupPath)

	return res, nil
}

// extract runs the extraction stage. Every failure selects the demonstration
// document; the OCR call is attempted at most once.
func (c *Converter) extract(ctx context.Context, log *slog.Logger, tokens providers.TokenSource, input Input, res *Result) (layout.Extraction, int) {
	res.Extraction = PathFallback
	demo := layout.FromDocument(layout.Demo())

	if input.DocumentPath == "" {
		log.Info("no document given, using demonstration content")
		return demo, 0
	}
	if c.cfg.offline {
		log.Info("offline mode, skipping OCR service", "document", input.DocumentPath)
		return demo, 0
	}

	data, err := os.ReadFile(input.DocumentPath) // #nosec G304 -- document path is user-provided
	if err != nil {
		log.Warn("reading document failed, falling back", "error", err)
		return demo, 0
	}

	pages, err := providers.ProbePDF(data)
	if err != nil {
		log.Debug("page count unavailable", "error", err)
	} else {
		log.Debug("probed document", "pages", pages)
	}

	out := c.extractor.Extract(ctx, tokens, data)
	if !out.OK() {
		log.Warn("OCR extraction failed, falling back", "error", out.Err())
		return demo, pages
	}

	res.Extraction = PathService
	return out.Value(), pages
}

// render runs the rendering stage. The generator is attempted at most once;
// any failure selects the deterministic renderer.
func (c *Converter) render(ctx context.Context, log *slog.Logger, tokens providers.TokenSource, res *Result) (string, error) {
	if c.cfg.offline {
		log.Info("offline mode, rendering with template")
	} else {
		out := c.generator.Generate(ctx, tokens, res.Markup)
		if out.OK() {
			res.Rendering = PathService
			return out.Value(), nil
		}
		log.Warn("page generation failed, falling back", "provider", c.generator.Name(), "error", out.Err())
	}

	res.Rendering = PathFallback
	page, err := c.renderer.Render(ctx, res.Markup)
	if err != nil {
		return "", fmt.Errorf("rendering page: %w", err)
	}
	return page, nil
}

// persist writes an artifact into the output directory and returns its path.
func (c *Converter) persist(name, content string) (string, error) {
	path := filepath.Join(c.cfg.outputDir, name)
	if err := fileutil.WriteFileAtomic(path, []byte(content)); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrWriteArtifact, path, err)
	}
	return path, nil
}

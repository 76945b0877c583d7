package providers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/alnah/go-doc2web/internal/layout"
	"github.com/alnah/go-doc2web/internal/pipeline"
)

const (
	// DefaultOCREndpoint is the Baidu document analysis endpoint.
	DefaultOCREndpoint = "https://aip.baidubce.com/rest/2.0/ocr/v1/doc_analysis"

	pdfField   = "pdf_file"
	imageField = "image"

	// maxResponseBytes bounds how much of a service response is read.
	maxResponseBytes = 32 << 20
)

// MarkdownDecoder turns free-form Markdown into layout blocks.
type MarkdownDecoder interface {
	Decode(ctx context.Context, markdown string) (layout.Document, error)
}

// OCRConfig holds configuration for the OCR client.
type OCRConfig struct {
	Endpoint   string
	HTTPClient *http.Client    // Optional (tests, timeouts)
	Decoder    MarkdownDecoder // Optional, defaults to goldmark
}

// OCRClient extracts text and layout from a document through the OCR service.
type OCRClient struct {
	endpoint string
	client   *http.Client
	decoder  MarkdownDecoder
}

// NewOCRClient creates a new OCR client.
func NewOCRClient(cfg OCRConfig) *OCRClient {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultOCREndpoint
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if cfg.Decoder == nil {
		cfg.Decoder = pipeline.NewMarkdownDecoder()
	}
	return &OCRClient{
		endpoint: cfg.Endpoint,
		client:   cfg.HTTPClient,
		decoder:  cfg.Decoder,
	}
}

// ocrResponse covers the response shapes the service may return. Fields are
// pointers or slices so absence can be told apart from emptiness.
type ocrResponse struct {
	ErrorCode     int             `json:"error_code"`
	ErrorMsg      string          `json:"error_msg"`
	ExtractedText *string         `json:"extracted_text"`
	Layout        layout.Document `json:"layout"`
	Markdown      *string         `json:"markdown"`
}

// Extract sends the document to the OCR service. The document is sent as
// base64 under the form field its detected type requires.
func (c *OCRClient) Extract(ctx context.Context, tokens TokenSource, document []byte) Outcome[layout.Extraction] {
	field, err := PayloadField(document)
	if err != nil {
		return Failure[layout.Extraction](err)
	}

	token, err := tokens.Token(ctx)
	if err != nil {
		return Failure[layout.Extraction](err)
	}

	form := url.Values{}
	form.Set("access_token", token)
	form.Set(field, base64.StdEncoding.EncodeToString(document))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return Failure[layout.Extraction](fmt.Errorf("%w: create request: %v", ErrServiceCall, err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := doRequest(c.client, req)
	if err != nil {
		return Failure[layout.Extraction](err)
	}

	var resp ocrResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Failure[layout.Extraction](fmt.Errorf("%w: %v", ErrMalformedResponse, err))
	}
	return c.decode(ctx, resp)
}

// decode picks the richest representation present. Pre-formatted text wins
// over a layout, which wins over Markdown.
func (c *OCRClient) decode(ctx context.Context, resp ocrResponse) Outcome[layout.Extraction] {
	if resp.ErrorCode != 0 {
		return Failure[layout.Extraction](fmt.Errorf("%w: error %d: %s", ErrServiceCall, resp.ErrorCode, resp.ErrorMsg))
	}

	switch {
	case resp.ExtractedText != nil:
		return Success(layout.FromText(*resp.ExtractedText))
	case resp.Layout != nil:
		return Success(layout.FromDocument(resp.Layout))
	case resp.Markdown != nil:
		doc, err := c.decoder.Decode(ctx, *resp.Markdown)
		if err != nil {
			return Failure[layout.Extraction](fmt.Errorf("%w: decode markdown: %v", ErrMalformedResponse, err))
		}
		return Success(layout.FromDocument(doc))
	}
	return Failure[layout.Extraction](fmt.Errorf("%w: no extracted_text, layout or markdown field", ErrMalformedResponse))
}

// PayloadField returns the form field the OCR service expects for a
// document: pdf_file for PDFs, image for raster images.
func PayloadField(document []byte) (string, error) {
	mtype := mimetype.Detect(document)
	switch {
	case mtype.Is("application/pdf"):
		return pdfField, nil
	case strings.HasPrefix(mtype.String(), "image/"):
		return imageField, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedDocument, mtype.String())
}

// ProbePDF returns the page count of a PDF document.
func ProbePDF(document []byte) (int, error) {
	n, err := api.PageCount(bytes.NewReader(document), nil)
	if err != nil {
		return 0, fmt.Errorf("count pages: %w", err)
	}
	return n, nil
}

// doRequest executes req and returns the body of a 2xx response.
func doRequest(client *http.Client, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req) // #nosec G107 -- endpoint comes from configuration
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceCall, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrServiceCall, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d: %s", ErrServiceCall, resp.StatusCode, snippet(body))
	}
	return body, nil
}

// snippet shortens a response body for error messages.
func snippet(body []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}

package doc2web

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewAssetLoader_EmptyPath(t *testing.T) {
	t.Parallel()

	loader, err := NewAssetLoader("")
	if err != nil {
		t.Fatalf("NewAssetLoader(\"\") error = %v", err)
	}

	css, err := loader.LoadStyle(DefaultStyle)
	if err != nil {
		t.Errorf("LoadStyle(%q) error = %v", DefaultStyle, err)
	}
	if !strings.Contains(css, "@media") {
		t.Error("default style should carry a responsive media query")
	}

	page, err := loader.LoadTemplate(DefaultTemplate)
	if err != nil {
		t.Fatalf("LoadTemplate(%q) error = %v", DefaultTemplate, err)
	}
	for _, want := range []string{"{{.Style}}", "{{.Content}}", "viewport"} {
		if !strings.Contains(page, want) {
			t.Errorf("default template missing %q", want)
		}
	}
}

func TestNewAssetLoader_InvalidPath(t *testing.T) {
	t.Parallel()

	_, err := NewAssetLoader("/nonexistent/path/to/assets")
	if !errors.Is(err, ErrInvalidAssetPath) {
		t.Errorf("NewAssetLoader() error = %v, want ErrInvalidAssetPath", err)
	}
}

func TestNewAssetLoader_FallsBackToEmbedded(t *testing.T) {
	t.Parallel()

	loader, err := NewAssetLoader(t.TempDir())
	if err != nil {
		t.Fatalf("NewAssetLoader() error = %v", err)
	}

	if css, err := loader.LoadStyle(DefaultStyle); err != nil || css == "" {
		t.Errorf("LoadStyle fallback = (%d bytes, %v)", len(css), err)
	}
	if page, err := loader.LoadTemplate(DefaultTemplate); err != nil || page == "" {
		t.Errorf("LoadTemplate fallback = (%d bytes, %v)", len(page), err)
	}
}

func TestNewAssetLoader_CustomOverrides(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	files := map[string]string{
		filepath.Join("styles", "default.css"):  "/* custom */ body { color: red; }",
		filepath.Join("templates", "page.html"): "<main>{{.Content}}</main>",
	}
	for rel, content := range files {
		path := filepath.Join(tmpDir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}

	loader, err := NewAssetLoader(tmpDir)
	if err != nil {
		t.Fatalf("NewAssetLoader(%q) error = %v", tmpDir, err)
	}

	css, err := loader.LoadStyle(DefaultStyle)
	if err != nil {
		t.Errorf("LoadStyle error = %v", err)
	}
	if want := files[filepath.Join("styles", "default.css")]; css != want {
		t.Errorf("LoadStyle = %q, want %q", css, want)
	}

	page, err := loader.LoadTemplate(DefaultTemplate)
	if err != nil {
		t.Errorf("LoadTemplate error = %v", err)
	}
	if want := files[filepath.Join("templates", "page.html")]; page != want {
		t.Errorf("LoadTemplate = %q, want %q", page, want)
	}
}

func TestAssetLoader_NotFound(t *testing.T) {
	t.Parallel()

	loader, err := NewAssetLoader("")
	if err != nil {
		t.Fatalf("NewAssetLoader error = %v", err)
	}

	tests := []struct {
		name    string
		load    func(string) (string, error)
		asset   string
		wantErr error
	}{
		{name: "missing style", load: loader.LoadStyle, asset: "custom-style", wantErr: ErrStyleNotFound},
		{name: "invalid style name", load: loader.LoadStyle, asset: "../etc", wantErr: ErrStyleNotFound},
		{name: "missing template", load: loader.LoadTemplate, asset: "custom-page", wantErr: ErrTemplateNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.load(tt.asset)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.asset) {
				t.Errorf("error message %q should contain asset name %q", err.Error(), tt.asset)
			}
		})
	}
}

func TestDefaultConstants(t *testing.T) {
	t.Parallel()

	if DefaultStyle != "default" {
		t.Errorf("DefaultStyle = %q, want \"default\"", DefaultStyle)
	}
	if DefaultTemplate != "page" {
		t.Errorf("DefaultTemplate = %q, want \"page\"", DefaultTemplate)
	}
}

func TestWrappedAssetError(t *testing.T) {
	t.Parallel()

	original := errors.New("original error message")
	sentinel := errors.New("sentinel")

	wrapped := wrapError(sentinel, original)

	if wrapped.Error() != original.Error() {
		t.Errorf("Error() = %q, want %q", wrapped.Error(), original.Error())
	}
	if !errors.Is(wrapped, sentinel) {
		t.Error("errors.Is(wrapped, sentinel) should be true")
	}
	if errors.Is(wrapped, original) {
		t.Error("errors.Is(wrapped, original) should be false")
	}
}

func TestConvertAssetError_NilError(t *testing.T) {
	t.Parallel()

	if result := convertAssetError(nil); result != nil {
		t.Errorf("convertAssetError(nil) = %v, want nil", result)
	}
}

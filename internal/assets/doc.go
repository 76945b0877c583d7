// Package assets provides the stylesheet and page skeleton used by the
// deterministic renderer.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in page)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver tries the custom FilesystemLoader first and falls back to the
// EmbeddedLoader when the asset is not found there, so a custom directory only
// needs to contain the files it overrides.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css      # stylesheet embedded into the page head
//	└── templates/
//	    └── {name}.html     # page skeleton (html/template syntax)
//
// A page template receives two fields: .Style (the stylesheet) and .Content
// (the rendered fragment). It performs no other logic.
//
// # Security
//
// Asset names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets

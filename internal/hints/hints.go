// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"
)

// Environment variables consulted for service credentials.
const (
	EnvAPIKey    = "BAIDU_API_KEY"
	EnvAPISecret = "BAIDU_API_SECRET"
)

// ForMissingCredentials returns hints when a run cannot reach the services
// because credentials are absent. Mentions only the variables still unset.
func ForMissingCredentials() string {
	var missing []string
	for _, name := range []string{EnvAPIKey, EnvAPISecret} {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return format("check that the API key and secret are valid for OCR and ERNIE")
	}
	return formatHints([]string{
		"set " + strings.Join(missing, " and ") + " to use the OCR and ERNIE services",
		"pass --offline to silence this warning",
	})
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-doc2web/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-doc2web") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for artifact write errors.
func ForOutputDirectory() string {
	return format("check the output directory is writable, or choose another with --output")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}

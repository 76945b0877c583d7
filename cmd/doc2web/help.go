package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: doc2web [flags] [document]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a PDF or image into a web page ready for GitHub Pages.")
	fmt.Fprintln(w, "Without a document, a built-in demonstration document is used.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: output)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --offline             Skip OCR and ERNIE, use local processing only")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  BAIDU_API_KEY             API key for the OCR and ERNIE services")
	fmt.Fprintln(w, "  BAIDU_API_SECRET          API secret for the OCR and ERNIE services")
	fmt.Fprintln(w, "  DOC2WEB_CONFIG            Config file name or path")
	fmt.Fprintln(w, "  DOC2WEB_OUTPUT_DIR        Output directory")
	fmt.Fprintln(w, "  DOC2WEB_RENDER_API_KEY    API key for the openai render provider")
	fmt.Fprintln(w, "  DOC2WEB_OFFLINE           Set to true to skip every service call")
}

// printNextSteps prints the GitHub Pages deployment steps.
func printNextSteps(w io.Writer, outputDir string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintf(w, "  1. Review the generated page in %s\n", outputDir)
	fmt.Fprintln(w, "  2. Initialize a git repository if not already done")
	fmt.Fprintln(w, "  3. Create a GitHub repository")
	fmt.Fprintln(w, "  4. Push your code and enable GitHub Pages")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands to deploy to GitHub Pages:")
	fmt.Fprintln(w, "  git init")
	fmt.Fprintln(w, "  git add .")
	fmt.Fprintln(w, "  git commit -m 'Add generated web page'")
	fmt.Fprintln(w, "  git branch -M main")
	fmt.Fprintln(w, "  git remote add origin <your-repo-url>")
	fmt.Fprintln(w, "  git push -u origin main")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Then enable GitHub Pages in your repository settings.")
}

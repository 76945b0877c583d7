// Package doc2web converts a document (PDF or image) into a styled,
// self-contained web page.
//
// # Quick Start
//
//	conv, err := doc2web.NewConverter(
//	    doc2web.WithCredentials(doc2web.Credentials{
//	        APIKey:    os.Getenv("BAIDU_API_KEY"),
//	        APISecret: os.Getenv("BAIDU_API_SECRET"),
//	    }),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, doc2web.Input{DocumentPath: "report.pdf"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.HTMLPath)
//
// # Conversion Pipeline
//
// Every run goes through the same stages:
//
//  1. Extraction: the OCR service returns text or layout blocks. Without a
//     document, credentials or network, a fixed demonstration document is used.
//  2. Normalization: the extraction becomes canonical markup, written to
//     output/content.md.
//  3. Rendering: a generative model turns the markup into a page. When the
//     call fails, a deterministic template renderer produces the page instead.
//  4. Persistence: the page is written to output/index.html.
//
// Service failures never abort a run: each stage falls back locally and the
// Result records which path was taken. Only artifact writes are fatal.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := doc2web.NewConverter(
//	    doc2web.WithOutputDir("public"),
//	    doc2web.WithRenderService(doc2web.RenderService{
//	        Provider: doc2web.ProviderOpenAI,
//	        APIKey:   key,
//	    }),
//	    doc2web.WithTimeout(time.Minute),
//	    doc2web.WithLogger(slog.Default()),
//	)
//
// Use WithOffline(true) to skip every remote call.
package doc2web

// Package providers holds the remote collaborators of a conversion run:
// OAuth2 client-credentials token acquisition, the document OCR service and
// the generative page renderers (ERNIE native API or any OpenAI-compatible
// chat endpoint).
//
// Every service call returns an Outcome instead of an error so callers
// branch on success explicitly and fall back to local processing. No call is
// retried.
package providers

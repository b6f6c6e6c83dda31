// Package gemini implements the provider client for Google's Gemini
// generateContent REST API. It performs exactly one synchronous exchange per
// call and classifies failures by kind (network, client error, server error,
// malformed response) so the rewrite pipeline can decide how to degrade.
// Raw upstream detail stays inside *CallError for logging; it is never
// forwarded to end callers.
package gemini

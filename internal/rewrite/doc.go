// Package rewrite implements the core request pipeline: request validation,
// prompt construction, provider calls with multi-endpoint fallback, and
// mapping of every outcome to a single result envelope. Provider-internal
// detail (status codes, wrapped causes) never crosses the envelope boundary;
// callers only ever see the fixed user-facing messages.
package rewrite

// Package api contains the HTTP handlers for the rewrite service. Handlers
// decode and validate payloads, delegate to the rewrite pipeline, and render
// its result envelope verbatim; they hold no business logic of their own.
package api

// Package errs defines the error types returned to API clients.
//
// Every failure a handler can produce ends up as an HTTPError with a
// stable machine-readable code, a human-readable message, the HTTP
// status and, for validation failures, one entry per offending field.
package errs

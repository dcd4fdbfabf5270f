// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request ids, request logging, CORS, secure headers,
// panic recovery and the mapping of errors to responses.
package middleware

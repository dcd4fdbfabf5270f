// Package handler is the HTTP layer, the first entry point after the
// router.
//
// It binds and validates requests through the validation package, calls
// one service method and writes the result. Errors are returned to the
// global error handler, never written here.
package handler

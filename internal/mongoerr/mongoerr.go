// Package mongoerr handles MongoDB driver errors.
//
// It classifies errors surfaced by the driver and converts them into
// client-facing HTTP errors (e.g. "no documents" becomes a 404, a
// duplicate key a 400), so that handlers never leak driver details.
package mongoerr

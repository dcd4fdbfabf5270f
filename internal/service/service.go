// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler and calls the
// store to persist it. For Resources there are no rules beyond
// field validation, so most methods pass straight through.
package service

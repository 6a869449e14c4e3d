package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors shared across layers. The HTTP boundary maps these to
// status codes; everything else surfaces as an opaque internal error.
var (
	// ErrInvalidRequest marks a request that fails structural validation
	ErrInvalidRequest = goerr.New("invalid request")

	// ErrNoContent marks a request with no usable note content after resolution
	ErrNoContent = goerr.New("provide either consultation notes (text) or a PDF/image file")

	// ErrStoreNotConfigured marks history operations against a store with no
	// configured connection. This is a deployment problem, not a transient one.
	ErrStoreNotConfigured = goerr.New("history store is not configured")
)

package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and loaders return these
// (optionally wrapped) so services can translate them into coded domain
// errors at the boundary.
//
// These represent factual states about reference data and backing stores,
// not validation failures:
// - ErrNotFound: entity does not exist (category, template, cache entry)
// - ErrIntegrity: reference data violates a load-time invariant, e.g. a
//   source control claimed by more than one unified category
// - ErrInvalidState: entity in wrong state for the requested operation
// - ErrUnavailable: backing store or sink temporarily unreachable
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrIntegrity    = errors.New("integrity violation")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)

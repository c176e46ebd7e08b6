// Package api contains the boundary client for the photo upload service.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the photo endpoints: Upload, List, Get, Delete, Retry, Events, Stats.
//  2. A concrete HTTP implementation (see HTTPClient) that injects auth
//     headers (bearer token when one is set, basic-auth fallback otherwise),
//     tags every request with a correlation id, streams multipart upload
//     bodies with progress reporting, and maps HTTP status codes to
//     sentinel errors.
//
// # Error Handling
//
// Failures are exposed as sentinel errors that callers match with errors.Is:
// ErrNetwork, ErrUnauthorized, ErrNotFound, ErrConflict, ErrUnavailable,
// ErrAPI. Responses with a non-2xx status additionally carry an *APIError
// (matchable with errors.As) holding the original status code and body.
//
// # Progress
//
// Upload reports integer percentages in [0,100], strictly non-decreasing
// per call. 100 is reported only once the server has confirmed the upload;
// a request that ultimately fails never reaches 100.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context and honor cancellation/timeouts.
package api

// Package upload drives single upload operations end to end: validate the
// file, stream the request, report progress, and register the confirmed
// photo with the collection store.
//
// # Overview
//
// Each call to Upload owns one ephemeral task, keyed by a derived file id
// (name, size and a nanosecond timestamp), so concurrent uploads of
// same-named files never share or clobber each other's progress entries.
// Tasks are destroyed when the operation resolves or fails; nothing about
// them is ever persisted.
//
// # Validation
//
// Policy checks run before any network traffic: the file must be present
// and non-empty, within the size bound (50 MiB by default), and carry an
// accepted image content type. Violations fail fast with a
// *ValidationError (errors.Is-matchable against ErrValidation) and emit
// no progress events.
//
// # Progress
//
// Per-task progress is an integer percentage in [0,100], monotonically
// non-decreasing, with 100 reported only when the operation ultimately
// succeeds.
package upload

// Package store owns the canonical in-memory photo collection: the photo
// list, the active filters, and the pagination cursor.
//
// # Overview
//
// All mutations funnel through a closed set of action variants applied
// under one lock (see actions.go), so every state change is atomic with
// respect to readers and to other mutations. External callers only ever
// go through the exported operations; the slice and cursor internals are
// never shared.
//
// # Ordering
//
// Mutations are applied in completion order of the network call that
// produced them, not submission order. Two overlapping Loads may finish
// in either order; whichever completes last determines the visible list.
// Callers needing stronger guarantees must serialize their calls. This is
// documented, not hidden, semantics.
//
// # Error Handling
//
// API failures propagate to the caller with their classification intact
// (see the api package). A failed Load leaves the previous list untouched,
// so a transient error never blanks the collection.
package store

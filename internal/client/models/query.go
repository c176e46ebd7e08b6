package models

// SortUploadedAtDesc is the only sort order the collection uses:
// most recently uploaded first.
const SortUploadedAtDesc = "uploadedAt,desc"

// DefaultPageSize is used when a query does not specify one.
const DefaultPageSize = 20

// Filters narrows the photo collection by owner and/or status.
// Zero values mean "no restriction".
type Filters struct {
	UserID string
	Status PhotoStatus
}

// Merge overlays non-zero fields of other onto a copy of f.
// Merge never clears a filter; clearing replaces the whole value.
func (f Filters) Merge(other Filters) Filters {
	if other.UserID != "" {
		f.UserID = other.UserID
	}
	if other.Status != "" {
		f.Status = other.Status
	}
	return f
}

// ListQuery is the full query descriptor for a collection load:
// filters plus a 0-based pagination cursor.
type ListQuery struct {
	Filters
	Page int
	Size int
}

// Normalize clamps the cursor into its invariants: Page ≥ 0, Size > 0.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 0 {
		q.Page = 0
	}
	if q.Size <= 0 {
		q.Size = DefaultPageSize
	}
	return q
}

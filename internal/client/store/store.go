package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/photoupload/photoctl/internal/client/api"
	"github.com/photoupload/photoctl/internal/client/models"
	"github.com/photoupload/photoctl/internal/logging"
)

// ErrNotRetryable is returned by Retry for photos that are absent or not
// in the FAILED state. Retrying is a user-invoked recovery, valid only
// from FAILED.
var ErrNotRetryable = errors.New("photo is not in a failed state")

// PageInfo is the read-side view of the pagination cursor.
type PageInfo struct {
	Page          int
	Size          int
	TotalPages    int
	TotalElements int64
}

// Store is the single owner of the client's photo collection.
type Store struct {
	client api.Client
	log    logging.Logger

	mu            sync.Mutex
	photos        []models.Photo
	filters       models.Filters
	page          int
	size          int
	totalPages    int
	totalElements int64
}

// New builds an empty store backed by the given API client.
func New(client api.Client, log logging.Logger) *Store {
	return &Store{
		client: client,
		log:    log.With("component", "store"),
		size:   models.DefaultPageSize,
	}
}

// SetPageSize overrides the page size used by subsequent cursor reads.
// Non-positive values are ignored.
func (s *Store) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	s.mu.Lock()
	s.size = size
	s.mu.Unlock()
}

func (s *Store) dispatch(a action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(a)
}

// Load fetches one page of photos matching the current filters and
// replaces the in-memory list with the response. The replacement is
// atomic; concurrent Loads settle last-completion-wins. On error the
// previous list is preserved and the error propagates unmodified.
func (s *Store) Load(ctx context.Context, page, size int) (*models.Page[models.Photo], error) {
	s.mu.Lock()
	q := models.ListQuery{Filters: s.filters, Page: page, Size: size}
	if size <= 0 {
		q.Size = s.size
	}
	s.mu.Unlock()
	q = q.Normalize()

	resp, err := s.client.List(ctx, q)
	if err != nil {
		s.log.Error(ctx, "load failed, keeping previous list", "page", q.Page, "error", err)
		return nil, fmt.Errorf("loading photos: %w", err)
	}

	photos := make([]models.Photo, len(resp.Content))
	copy(photos, resp.Content)
	s.dispatch(loadCompleted{
		photos:        photos,
		page:          resp.Number,
		size:          resp.Size,
		totalPages:    resp.TotalPages,
		totalElements: resp.TotalElements,
	})

	s.log.Debug(ctx, "collection replaced", "count", len(photos), "page", resp.Number)
	return resp, nil
}

// InsertFromUpload prepends a server-confirmed photo to the head of the
// list. The record is not re-filtered client-side.
func (s *Store) InsertFromUpload(photo models.Photo) {
	s.dispatch(photoInserted{photo: photo})
}

// Remove drops a photo from the in-memory list. Removing an id that is
// not present is a no-op, not an error.
func (s *Store) Remove(id int64) {
	s.dispatch(photoRemoved{id: id})
}

// MarkPending optimistically sets a photo's status to PENDING after a
// successful retry request. No-op unless the photo is present and FAILED,
// which defends against races with concurrent deletes or reloads.
func (s *Store) MarkPending(id int64) {
	s.dispatch(markedPending{id: id})
}

// SetFilters merges partial into the current filter state and resets the
// page cursor to 0. It does not trigger a reload; the caller decides when
// to Load, which keeps data-fetch timing explicit and testable.
func (s *Store) SetFilters(partial models.Filters) {
	s.dispatch(filtersChanged{partial: partial})
}

// ClearFilters drops all filters and resets the page cursor.
func (s *Store) ClearFilters() {
	s.dispatch(filtersCleared{})
}

// Delete removes the photo on the server, then from the local list.
// An API failure propagates and leaves the list unchanged.
func (s *Store) Delete(ctx context.Context, id int64) error {
	if err := s.client.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting photo %d: %w", id, err)
	}
	s.dispatch(photoRemoved{id: id})
	s.log.Info(ctx, "photo deleted", "photoId", id)
	return nil
}

// Retry requests server-side reprocessing of a FAILED photo and, on
// success, optimistically marks the local copy PENDING until the next
// authoritative Load. Photos in any other state are rejected with
// ErrNotRetryable before any network call.
func (s *Store) Retry(ctx context.Context, id int64) error {
	photo, ok := s.Get(id)
	if !ok || photo.Status != models.StatusFailed {
		return fmt.Errorf("retry photo %d: %w", id, ErrNotRetryable)
	}

	if err := s.client.Retry(ctx, id); err != nil {
		return fmt.Errorf("retrying photo %d: %w", id, err)
	}
	s.dispatch(markedPending{id: id})
	s.log.Info(ctx, "photo queued for retry", "photoId", id)
	return nil
}

// Photos returns a snapshot copy of the current list, most recent first.
func (s *Store) Photos() []models.Photo {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Photo, len(s.photos))
	copy(out, s.photos)
	return out
}

// Get returns the photo with the given id, if present.
func (s *Store) Get(id int64) (models.Photo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.photos {
		if p.ID == id {
			return p, true
		}
	}
	return models.Photo{}, false
}

// Filters returns the active filter state.
func (s *Store) Filters() models.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// Page returns the current pagination cursor and totals.
func (s *Store) Page() PageInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return PageInfo{
		Page:          s.page,
		Size:          s.size,
		TotalPages:    s.totalPages,
		TotalElements: s.totalElements,
	}
}

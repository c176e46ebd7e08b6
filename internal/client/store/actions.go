package store

import (
	"fmt"

	"github.com/photoupload/photoctl/internal/client/models"
)

// action is the closed set of store mutations. Every variant is applied
// atomically by apply; adding a variant without handling it there is a
// programming error and panics at dispatch time.
type action interface {
	isAction()
}

// loadCompleted replaces the whole collection with one page of server
// content. Never merged: the response is authoritative for what it returns.
type loadCompleted struct {
	photos        []models.Photo
	page          int
	size          int
	totalPages    int
	totalElements int64
}

// photoInserted prepends a freshly confirmed upload, bypassing filters.
type photoInserted struct {
	photo models.Photo
}

// photoRemoved drops a photo by id; unknown ids are ignored.
type photoRemoved struct {
	id int64
}

// markedPending is the optimistic local transition after a successful
// retry request. Applies only while the photo is present and FAILED.
type markedPending struct {
	id int64
}

// filtersChanged merges partial filters and rewinds the page cursor.
type filtersChanged struct {
	partial models.Filters
}

// filtersCleared drops all filters and rewinds the page cursor.
type filtersCleared struct{}

func (loadCompleted) isAction()  {}
func (photoInserted) isAction()  {}
func (photoRemoved) isAction()   {}
func (markedPending) isAction()  {}
func (filtersChanged) isAction() {}
func (filtersCleared) isAction() {}

// apply performs one atomic state transition. Callers must hold s.mu.
func (s *Store) apply(a action) {
	switch a := a.(type) {
	case loadCompleted:
		s.photos = a.photos
		s.page = a.page
		s.size = a.size
		s.totalPages = a.totalPages
		s.totalElements = a.totalElements

	case photoInserted:
		s.photos = append([]models.Photo{a.photo}, s.photos...)
		s.totalElements++

	case photoRemoved:
		for i, p := range s.photos {
			if p.ID == a.id {
				s.photos = append(s.photos[:i], s.photos[i+1:]...)
				s.totalElements--
				break
			}
		}

	case markedPending:
		for i, p := range s.photos {
			if p.ID == a.id && p.Status == models.StatusFailed {
				s.photos[i].Status = models.StatusPending
				break
			}
		}

	case filtersChanged:
		s.filters = s.filters.Merge(a.partial)
		s.page = 0

	case filtersCleared:
		s.filters = models.Filters{}
		s.page = 0

	default:
		panic(fmt.Sprintf("store: unhandled action %T", a))
	}
}

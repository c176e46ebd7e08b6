package api

import (
	"context"
	"io"

	"github.com/photoupload/photoctl/internal/client/models"
)

// ProgressFunc receives upload progress as an integer percentage in [0,100].
// Called repeatedly while the request body streams: 10, 45, 80, ...
type ProgressFunc func(percent int)

// UploadInput describes one file to send to the service.
type UploadInput struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
	UserID      string
}

// Client is the contract for talking to the photo upload service.
type Client interface {
	// Upload sends the file as a multipart request and returns the
	// server-confirmed photo record.
	Upload(ctx context.Context, in UploadInput, onProgress ProgressFunc) (*models.Photo, error)

	// List returns one page of photos matching the query, newest first.
	List(ctx context.Context, q models.ListQuery) (*models.Page[models.Photo], error)

	// Get returns a single photo by id.
	Get(ctx context.Context, id int64) (*models.Photo, error)

	// Delete removes the photo with the given id.
	Delete(ctx context.Context, id int64) error

	// Retry asks the server to reprocess a failed photo.
	Retry(ctx context.Context, id int64) error

	// Events returns the photo's lifecycle audit trail, oldest first.
	Events(ctx context.Context, id int64) ([]models.PhotoEvent, error)

	// Stats returns collection-wide counters. Also doubles as a cheap
	// liveness probe.
	Stats(ctx context.Context) (*models.Stats, error)

	// SetToken installs (or clears, with "") the bearer token used on
	// subsequent requests.
	SetToken(token string)

	// Close releases underlying transport resources.
	Close() error
}

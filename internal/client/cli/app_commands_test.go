package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/photoupload/photoctl/internal/client/api"
	"github.com/photoupload/photoctl/internal/client/config"
	"github.com/photoupload/photoctl/internal/client/models"
	"github.com/photoupload/photoctl/internal/client/notify"
	"github.com/photoupload/photoctl/internal/client/store"
	"github.com/photoupload/photoctl/internal/client/upload"
	"github.com/photoupload/photoctl/internal/logging"
)

type fakeClient struct {
	UploadFunc func(ctx context.Context, in api.UploadInput, onProgress api.ProgressFunc) (*models.Photo, error)
	ListFunc   func(ctx context.Context, q models.ListQuery) (*models.Page[models.Photo], error)
	GetFunc    func(ctx context.Context, id int64) (*models.Photo, error)
	DeleteFunc func(ctx context.Context, id int64) error
	RetryFunc  func(ctx context.Context, id int64) error
	EventsFunc func(ctx context.Context, id int64) ([]models.PhotoEvent, error)
	StatsFunc  func(ctx context.Context) (*models.Stats, error)

	token string
}

func (f *fakeClient) Upload(ctx context.Context, in api.UploadInput, onProgress api.ProgressFunc) (*models.Photo, error) {
	if f.UploadFunc != nil {
		return f.UploadFunc(ctx, in, onProgress)
	}
	return &models.Photo{ID: 1, OriginalFileName: in.FileName, Status: models.StatusPending}, nil
}

func (f *fakeClient) List(ctx context.Context, q models.ListQuery) (*models.Page[models.Photo], error) {
	if f.ListFunc != nil {
		return f.ListFunc(ctx, q)
	}
	return &models.Page[models.Photo]{Size: q.Size, Number: q.Page}, nil
}

func (f *fakeClient) Get(ctx context.Context, id int64) (*models.Photo, error) {
	if f.GetFunc != nil {
		return f.GetFunc(ctx, id)
	}
	return nil, api.ErrNotFound
}

func (f *fakeClient) Delete(ctx context.Context, id int64) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, id)
	}
	return nil
}

func (f *fakeClient) Retry(ctx context.Context, id int64) error {
	if f.RetryFunc != nil {
		return f.RetryFunc(ctx, id)
	}
	return nil
}

func (f *fakeClient) Events(ctx context.Context, id int64) ([]models.PhotoEvent, error) {
	if f.EventsFunc != nil {
		return f.EventsFunc(ctx, id)
	}
	return nil, nil
}

func (f *fakeClient) Stats(ctx context.Context) (*models.Stats, error) {
	if f.StatsFunc != nil {
		return f.StatsFunc(ctx)
	}
	return &models.Stats{}, nil
}

func (f *fakeClient) SetToken(token string) { f.token = token }
func (f *fakeClient) Close() error          { return nil }

// newTestApp wires an App around a fake transport with output captured
// in a buffer.
func newTestApp(t *testing.T, client *fakeClient, input string) (*App, *bytes.Buffer) {
	t.Helper()

	log := logging.NewJSONLogger(io.Discard)
	st := store.New(client, log)
	out := &bytes.Buffer{}

	cfg := &config.Config{}
	cfg.LoadDefaults()
	a := &App{
		config:   cfg,
		log:      log,
		client:   client,
		store:    st,
		uploader: upload.NewOrchestrator(client, st, upload.Policy{}, log),
		reader:   bufio.NewReader(strings.NewReader(input)),
		out:      out,
	}
	a.toasts = notify.NewQueue(a.printToast)
	t.Cleanup(a.toasts.Close)
	return a, out
}

func TestApp_List_PrintsPhotos(t *testing.T) {
	client := &fakeClient{
		ListFunc: func(ctx context.Context, q models.ListQuery) (*models.Page[models.Photo], error) {
			return &models.Page[models.Photo]{
				Content: []models.Photo{
					{ID: 3, OriginalFileName: "cat.jpg", Status: models.StatusCompleted},
					{ID: 2, OriginalFileName: "dog.png", Status: models.StatusFailed, LastError: "corrupt file"},
				},
				TotalElements: 2,
				TotalPages:    1,
				Size:          q.Size,
				Number:        q.Page,
			}, nil
		},
	}
	a, out := newTestApp(t, client, "")

	err := a.List(context.Background())
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "3  COMPLETED  cat.jpg")
	assert.Contains(t, s, "2  FAILED  dog.png  (corrupt file)")
	assert.Contains(t, s, "Page 1 of 1 (2 photos total)")
}

func TestApp_List_FailureKeepsQuietList(t *testing.T) {
	client := &fakeClient{
		ListFunc: func(ctx context.Context, q models.ListQuery) (*models.Page[models.Photo], error) {
			return nil, api.ErrNetwork
		},
	}
	a, out := newTestApp(t, client, "")

	err := a.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, out.String(), "list failed")
}

func TestApp_Page_RejectsBadInput(t *testing.T) {
	listCalled := false
	client := &fakeClient{
		ListFunc: func(ctx context.Context, q models.ListQuery) (*models.Page[models.Photo], error) {
			listCalled = true
			return &models.Page[models.Photo]{}, nil
		},
	}
	a, out := newTestApp(t, client, "")

	err := a.Page(context.Background(), []string{"minus-one"})
	require.NoError(t, err)
	assert.False(t, listCalled)
	assert.Contains(t, out.String(), "invalid page number")
}

func TestApp_Page_RequestsGivenPage(t *testing.T) {
	var gotPage int
	client := &fakeClient{
		ListFunc: func(ctx context.Context, q models.ListQuery) (*models.Page[models.Photo], error) {
			gotPage = q.Page
			return &models.Page[models.Photo]{Size: q.Size, Number: q.Page}, nil
		},
	}
	a, _ := newTestApp(t, client, "")

	require.NoError(t, a.Page(context.Background(), []string{"4"}))
	assert.Equal(t, 4, gotPage)
}

func TestApp_Filter_StatusAndClear(t *testing.T) {
	var gotStatus models.PhotoStatus
	client := &fakeClient{
		ListFunc: func(ctx context.Context, q models.ListQuery) (*models.Page[models.Photo], error) {
			gotStatus = q.Status
			return &models.Page[models.Photo]{Size: q.Size, Number: q.Page}, nil
		},
	}
	a, _ := newTestApp(t, client, "")

	require.NoError(t, a.Filter(context.Background(), []string{"status=failed"}))
	assert.Equal(t, models.StatusFailed, gotStatus)

	require.NoError(t, a.Filter(context.Background(), []string{"clear"}))
	assert.Equal(t, models.PhotoStatus(""), gotStatus)
}

func TestApp_Filter_UnknownStatusRejectedBeforeNetwork(t *testing.T) {
	listCalled := false
	client := &fakeClient{
		ListFunc: func(ctx context.Context, q models.ListQuery) (*models.Page[models.Photo], error) {
			listCalled = true
			return &models.Page[models.Photo]{}, nil
		},
	}
	a, out := newTestApp(t, client, "")

	require.NoError(t, a.Filter(context.Background(), []string{"status=SHINY"}))
	assert.False(t, listCalled)
	assert.Contains(t, out.String(), "unknown status")
}

func TestApp_Delete_NotFoundToast(t *testing.T) {
	client := &fakeClient{
		DeleteFunc: func(ctx context.Context, id int64) error { return api.ErrNotFound },
	}
	a, out := newTestApp(t, client, "")

	err := a.Delete(context.Background(), []string{"99"})
	require.Error(t, err)
	assert.Contains(t, out.String(), "photo 99 does not exist")
}

func TestApp_Delete_Success(t *testing.T) {
	var deleted int64
	client := &fakeClient{
		DeleteFunc: func(ctx context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	a, out := newTestApp(t, client, "")

	require.NoError(t, a.Delete(context.Background(), []string{"7"}))
	assert.Equal(t, int64(7), deleted)
	assert.Contains(t, out.String(), "deleted photo 7")
}

func TestApp_Delete_PromptsWhenNoArg(t *testing.T) {
	var deleted int64
	client := &fakeClient{
		DeleteFunc: func(ctx context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	a, _ := newTestApp(t, client, "12\n")

	require.NoError(t, a.Delete(context.Background(), nil))
	assert.Equal(t, int64(12), deleted)
}

func TestApp_Retry_NotRetryableToast(t *testing.T) {
	client := &fakeClient{
		ListFunc: func(ctx context.Context, q models.ListQuery) (*models.Page[models.Photo], error) {
			return &models.Page[models.Photo]{
				Content: []models.Photo{{ID: 5, Status: models.StatusCompleted}},
			}, nil
		},
	}
	a, out := newTestApp(t, client, "")
	_, err := a.store.Load(context.Background(), 0, 20)
	require.NoError(t, err)

	err = a.Retry(context.Background(), []string{"5"})
	require.ErrorIs(t, err, store.ErrNotRetryable)
	assert.Contains(t, out.String(), "not in a failed state")
}

func TestApp_Retry_Success(t *testing.T) {
	var retried int64
	client := &fakeClient{
		ListFunc: func(ctx context.Context, q models.ListQuery) (*models.Page[models.Photo], error) {
			return &models.Page[models.Photo]{
				Content: []models.Photo{{ID: 5, Status: models.StatusFailed}},
			}, nil
		},
		RetryFunc: func(ctx context.Context, id int64) error {
			retried = id
			return nil
		},
	}
	a, out := newTestApp(t, client, "")
	_, err := a.store.Load(context.Background(), 0, 20)
	require.NoError(t, err)

	require.NoError(t, a.Retry(context.Background(), []string{"5"}))
	assert.Equal(t, int64(5), retried)
	assert.Contains(t, out.String(), "retry requested for photo 5")
}

func TestApp_Show_PrintsRecord(t *testing.T) {
	client := &fakeClient{
		GetFunc: func(ctx context.Context, id int64) (*models.Photo, error) {
			return &models.Photo{
				ID:               id,
				OriginalFileName: "trip.jpg",
				ContentType:      "image/jpeg",
				FileSize:         2048,
				Status:           models.StatusCompleted,
				Width:            800,
				Height:           600,
				UploadedAt:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	a, out := newTestApp(t, client, "")

	require.NoError(t, a.Show(context.Background(), []string{"4"}))
	s := out.String()
	assert.Contains(t, s, "Photo 4")
	assert.Contains(t, s, "trip.jpg (image/jpeg, 2048 bytes)")
	assert.Contains(t, s, "COMPLETED")
	assert.Contains(t, s, "800x600")
}

func TestApp_Events_PrintsTrail(t *testing.T) {
	failed := false
	client := &fakeClient{
		EventsFunc: func(ctx context.Context, id int64) ([]models.PhotoEvent, error) {
			return []models.PhotoEvent{
				{EventType: "UPLOAD_COMPLETED", Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
				{EventType: "PROCESSING_FAILED", Success: &failed, ErrorMessage: "decode error",
					Timestamp: time.Date(2026, 3, 1, 12, 1, 0, 0, time.UTC)},
			}, nil
		},
	}
	a, out := newTestApp(t, client, "")

	require.NoError(t, a.Events(context.Background(), []string{"4"}))
	s := out.String()
	assert.Contains(t, s, "UPLOAD_COMPLETED")
	assert.Contains(t, s, "PROCESSING_FAILED  FAILED: decode error")
}

func TestApp_Stats_PrintsCounters(t *testing.T) {
	client := &fakeClient{
		StatsFunc: func(ctx context.Context) (*models.Stats, error) {
			return &models.Stats{TotalPhotos: 10, PendingPhotos: 2, ProcessingPhotos: 1, FailedPhotos: 3}, nil
		},
	}
	a, out := newTestApp(t, client, "")

	require.NoError(t, a.Stats(context.Background()))
	s := out.String()
	assert.Contains(t, s, "Photos:     10")
	assert.Contains(t, s, "Failed:     3")
}

func TestApp_Toasts_ListsActive(t *testing.T) {
	a, out := newTestApp(t, &fakeClient{}, "")

	a.notify(notify.SeverityInfo, "hello there")
	out.Reset()

	require.NoError(t, a.Toasts(context.Background()))
	assert.Contains(t, out.String(), "[info] hello there")
}

func TestApp_Toasts_EmptyQueue(t *testing.T) {
	a, out := newTestApp(t, &fakeClient{}, "")

	require.NoError(t, a.Toasts(context.Background()))
	assert.Contains(t, out.String(), "No active notifications")
}

func TestApp_InvalidPhotoID(t *testing.T) {
	a, out := newTestApp(t, &fakeClient{}, "")

	err := a.Delete(context.Background(), []string{"zero"})
	require.Error(t, err)
	assert.Contains(t, out.String(), "invalid photo id")
}

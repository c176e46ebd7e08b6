package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/photoupload/photoctl/internal/client/api"
	"github.com/photoupload/photoctl/internal/client/models"
	"github.com/photoupload/photoctl/internal/client/store"
	"github.com/photoupload/photoctl/internal/logging"
)

// Phase is an upload task's position in its short client-side lifecycle.
type Phase string

const (
	PhaseValidating     Phase = "validating"
	PhaseSending        Phase = "sending"
	PhaseAwaitingResult Phase = "awaiting-result"
	PhaseDone           Phase = "done"
	PhaseFailed         Phase = "failed"
)

// Task is the ephemeral progress record for one in-flight upload.
type Task struct {
	FileID   string
	FileName string
	Percent  int
	Phase    Phase
}

// Orchestrator runs upload operations. Multiple uploads may be in flight
// concurrently; each owns an independent Task.
type Orchestrator struct {
	client api.Client
	store  *store.Store
	policy Policy
	log    logging.Logger

	mu    sync.Mutex
	tasks map[string]*Task
}

// NewOrchestrator wires an orchestrator to the API boundary and the
// collection store. A zero Policy selects the default limits.
func NewOrchestrator(client api.Client, st *store.Store, policy Policy, log logging.Logger) *Orchestrator {
	return &Orchestrator{
		client: client,
		store:  st,
		policy: policy.withDefaults(),
		log:    log.With("component", "upload"),
		tasks:  make(map[string]*Task),
	}
}

// Upload validates in, streams it to the service, and on success registers
// the confirmed photo with the store. onProgress (optional) receives the
// combined progress stream for this one task.
func (o *Orchestrator) Upload(ctx context.Context, in api.UploadInput, onProgress api.ProgressFunc) (*models.Photo, error) {
	fileID := deriveFileID(in.FileName, in.Size)

	o.register(fileID, in.FileName)
	defer o.clear(fileID)

	if err := o.policy.validate(in.FileName, in.ContentType, in.Size); err != nil {
		o.setPhase(fileID, PhaseFailed)
		o.log.Warn(ctx, "upload rejected", "file", in.FileName, "error", err)
		return nil, err
	}

	o.setPhase(fileID, PhaseSending)
	o.log.Info(ctx, "upload started", "file", in.FileName, "size", in.Size, "fileId", fileID)

	photo, err := o.client.Upload(ctx, in, func(pct int) {
		o.advance(fileID, pct)
		if onProgress != nil {
			onProgress(pct)
		}
	})
	if err != nil {
		o.setPhase(fileID, PhaseFailed)
		o.log.Error(ctx, "upload failed", "file", in.FileName, "error", err)
		return nil, fmt.Errorf("uploading %s: %w", in.FileName, err)
	}

	o.setPhase(fileID, PhaseDone)
	o.store.InsertFromUpload(*photo)
	o.log.Info(ctx, "upload confirmed", "file", in.FileName, "photoId", photo.ID, "status", photo.Status)
	return photo, nil
}

// UploadFile is the path-based convenience wrapper: it opens the file,
// sniffs its content type from the leading bytes, and calls Upload.
func (o *Orchestrator) UploadFile(ctx context.Context, path, userID string, onProgress api.ProgressFunc) (*models.Photo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("cannot open %q: %v", path, err)}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("cannot stat %q: %v", path, err)}
	}

	contentType, err := sniffContentType(f)
	if err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("cannot read %q: %v", path, err)}
	}

	return o.Upload(ctx, api.UploadInput{
		FileName:    filepath.Base(path),
		ContentType: contentType,
		Size:        info.Size(),
		Body:        f,
		UserID:      userID,
	}, onProgress)
}

// Tasks returns a snapshot of the in-flight upload tasks.
func (o *Orchestrator) Tasks() []Task {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]Task, 0, len(o.tasks))
	for _, t := range o.tasks {
		out = append(out, *t)
	}
	return out
}

func (o *Orchestrator) register(fileID, fileName string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.tasks[fileID] = &Task{FileID: fileID, FileName: fileName, Phase: PhaseValidating}
}

func (o *Orchestrator) setPhase(fileID string, phase Phase) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if t, ok := o.tasks[fileID]; ok {
		t.Phase = phase
	}
}

// advance raises the task's percentage, never lowering it. Nearing the end
// of the stream the task flips to awaiting-result: the body is out, the
// server has not answered yet.
func (o *Orchestrator) advance(fileID string, pct int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	t, ok := o.tasks[fileID]
	if !ok {
		return
	}
	if pct > t.Percent {
		t.Percent = pct
	}
	if t.Phase == PhaseSending && t.Percent >= 99 {
		t.Phase = PhaseAwaitingResult
	}
}

// clear drops the task so no stale progress survives the operation.
func (o *Orchestrator) clear(fileID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.tasks, fileID)
}

// deriveFileID disambiguates same-named files uploaded close together.
func deriveFileID(fileName string, size int64) string {
	return fmt.Sprintf("%s|%d|%d", fileName, size, time.Now().UnixNano())
}

// sniffContentType detects the MIME type from the file's leading bytes and
// rewinds the handle.
func sniffContentType(f *os.File) (string, error) {
	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if _, err := f.Seek(0, 0); err != nil {
		return "", err
	}
	return normalizeContentType(http.DetectContentType(buf[:n])), nil
}

// normalizeContentType strips parameters like "; charset=utf-8".
func normalizeContentType(ct string) string {
	for i := 0; i < len(ct); i++ {
		if ct[i] == ';' {
			return ct[:i]
		}
	}
	return ct
}

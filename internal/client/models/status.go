package models

// PhotoStatus is a photo's position in the processing lifecycle.
//
// It is deliberately a string type: a status the server reports but this
// client does not know yet is carried verbatim rather than rejected, so
// callers can still render it. Known(), and every transition helper,
// treats such values as having no legal transitions.
type PhotoStatus string

const (
	StatusPending    PhotoStatus = "PENDING"
	StatusUploading  PhotoStatus = "UPLOADING"
	StatusUploaded   PhotoStatus = "UPLOADED"
	StatusProcessing PhotoStatus = "PROCESSING"
	StatusRetrying   PhotoStatus = "RETRYING"
	StatusCompleted  PhotoStatus = "COMPLETED"
	StatusFailed     PhotoStatus = "FAILED"
)

// transitions is the full lifecycle graph:
//
//	PENDING → UPLOADING → UPLOADED → PROCESSING → {COMPLETED | FAILED}
//	FAILED → {RETRYING, PENDING}; RETRYING → {PROCESSING, FAILED}
var transitions = map[PhotoStatus][]PhotoStatus{
	StatusPending:    {StatusUploading, StatusFailed},
	StatusUploading:  {StatusUploaded, StatusFailed},
	StatusUploaded:   {StatusProcessing, StatusFailed},
	StatusProcessing: {StatusCompleted, StatusFailed, StatusRetrying},
	StatusRetrying:   {StatusProcessing, StatusFailed},
	StatusCompleted:  {},
	StatusFailed:     {StatusRetrying, StatusPending},
}

// Known reports whether s is one of the statuses this client understands.
func (s PhotoStatus) Known() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is a legal
// lifecycle transition. Unknown statuses allow no transitions.
func (s PhotoStatus) CanTransitionTo(next PhotoStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the statuses reachable from s in one step.
// The returned slice is a copy and safe to modify.
func (s PhotoStatus) AllowedTransitions() []PhotoStatus {
	allowed := transitions[s]
	out := make([]PhotoStatus, len(allowed))
	copy(out, allowed)
	return out
}

// IsTerminal reports whether s is a final state with no way out.
func (s PhotoStatus) IsTerminal() bool {
	return s == StatusCompleted
}

// IsError reports whether s is the error state.
func (s PhotoStatus) IsError() bool {
	return s == StatusFailed
}

// IsInProgress reports whether work is actively happening on the photo.
func (s PhotoStatus) IsInProgress() bool {
	return s == StatusUploading || s == StatusProcessing || s == StatusRetrying
}

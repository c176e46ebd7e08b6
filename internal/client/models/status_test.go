package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhotoStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from PhotoStatus
		to   PhotoStatus
		want bool
	}{
		{name: "pending to uploading", from: StatusPending, to: StatusUploading, want: true},
		{name: "pending to failed", from: StatusPending, to: StatusFailed, want: true},
		{name: "pending cannot skip to completed", from: StatusPending, to: StatusCompleted, want: false},
		{name: "uploading to uploaded", from: StatusUploading, to: StatusUploaded, want: true},
		{name: "uploaded to processing", from: StatusUploaded, to: StatusProcessing, want: true},
		{name: "processing to completed", from: StatusProcessing, to: StatusCompleted, want: true},
		{name: "processing to retrying", from: StatusProcessing, to: StatusRetrying, want: true},
		{name: "retrying back to processing", from: StatusRetrying, to: StatusProcessing, want: true},
		{name: "retrying can fail again", from: StatusRetrying, to: StatusFailed, want: true},
		{name: "completed is final", from: StatusCompleted, to: StatusProcessing, want: false},
		{name: "failed to retrying", from: StatusFailed, to: StatusRetrying, want: true},
		{name: "failed to pending", from: StatusFailed, to: StatusPending, want: true},
		{name: "failed cannot complete directly", from: StatusFailed, to: StatusCompleted, want: false},
		{name: "unknown status has no transitions", from: PhotoStatus("ARCHIVED"), to: StatusPending, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestPhotoStatus_AllowedTransitions(t *testing.T) {
	assert.ElementsMatch(t,
		[]PhotoStatus{StatusCompleted, StatusFailed, StatusRetrying},
		StatusProcessing.AllowedTransitions())

	assert.Empty(t, StatusCompleted.AllowedTransitions())
	assert.Empty(t, PhotoStatus("WEIRD").AllowedTransitions())
}

func TestPhotoStatus_AllowedTransitions_ReturnsCopy(t *testing.T) {
	got := StatusFailed.AllowedTransitions()
	require.NotEmpty(t, got)
	got[0] = StatusCompleted

	// The underlying table must be unaffected.
	assert.False(t, StatusFailed.CanTransitionTo(StatusCompleted))
}

func TestPhotoStatus_Predicates(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.False(t, StatusFailed.IsTerminal())

	assert.True(t, StatusFailed.IsError())
	assert.False(t, StatusProcessing.IsError())

	assert.True(t, StatusUploading.IsInProgress())
	assert.True(t, StatusProcessing.IsInProgress())
	assert.True(t, StatusRetrying.IsInProgress())
	assert.False(t, StatusPending.IsInProgress())
	assert.False(t, StatusCompleted.IsInProgress())
}

func TestPhotoStatus_UnknownPreservedVerbatim(t *testing.T) {
	s := PhotoStatus("QUARANTINED")
	assert.False(t, s.Known())
	assert.Equal(t, "QUARANTINED", string(s))
}

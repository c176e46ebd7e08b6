// Package models defines the client-side view of the photo upload service:
// photo records, lifecycle events, paging envelopes, and the photo status
// state machine. Records are server-owned; the client holds read-mostly
// cache copies and never invents fields the server has not confirmed.
package models

import "time"

// Photo is the server-authoritative description of an uploaded image and
// its processing status.
type Photo struct {
	ID               int64       `json:"id"`
	UserID           string      `json:"userId"`
	OriginalFileName string      `json:"originalFileName"`
	ContentType      string      `json:"contentType"`
	FileSize         int64       `json:"fileSize"`
	StorageURL       string      `json:"storageUrl,omitempty"`
	ThumbnailURL     string      `json:"thumbnailUrl,omitempty"`
	Status           PhotoStatus `json:"status"`
	Width            int         `json:"width,omitempty"`
	Height           int         `json:"height,omitempty"`
	Metadata         string      `json:"metadata,omitempty"`
	Checksum         string      `json:"checksum,omitempty"`
	UploadedAt       time.Time   `json:"uploadedAt"`
	ProcessedAt      *time.Time  `json:"processedAt,omitempty"`
	UpdatedAt        time.Time   `json:"updatedAt"`
	RetryCount       int         `json:"retryCount,omitempty"`
	LastError        string      `json:"lastError,omitempty"`
}

// PhotoEvent is one record in a photo's lifecycle audit trail.
type PhotoEvent struct {
	ID            int64     `json:"id"`
	PhotoID       int64     `json:"photoId"`
	EventType     string    `json:"eventType"`
	Timestamp     time.Time `json:"timestamp"`
	Details       string    `json:"details,omitempty"`
	UserID        string    `json:"userId,omitempty"`
	CorrelationID string    `json:"correlationId,omitempty"`
	SourceService string    `json:"sourceService,omitempty"`
	Success       *bool     `json:"success,omitempty"`
	ErrorMessage  string    `json:"errorMessage,omitempty"`
}

// Page is the server's pagination envelope. Number is the 0-based page index.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Size          int   `json:"size"`
	Number        int   `json:"number"`
}

// Stats summarizes photo counts by lifecycle bucket.
type Stats struct {
	TotalPhotos      int64 `json:"totalPhotos"`
	PendingPhotos    int64 `json:"pendingPhotos"`
	ProcessingPhotos int64 `json:"processingPhotos"`
	FailedPhotos     int64 `json:"failedPhotos"`
}

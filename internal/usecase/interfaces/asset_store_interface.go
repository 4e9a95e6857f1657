package interfaces

import (
	"context"
	"time"
)

// UploadTarget is a pre-signed upload slot issued to the admin console.

type UploadTarget struct {
	Key       string
	UploadURL string
	PublicURL string
	ExpiresAt time.Time
}

// IAssetStore abstracts object storage for course assets (videos,
// thumbnails, attachments).
//
// DeleteByURL accepts the public URL previously handed out in an
// UploadTarget and resolves the object key from it.
type IAssetStore interface {
	PresignUpload(ctx context.Context, key string, contentType string, expires time.Duration) (UploadTarget, error)
	DeleteByURL(ctx context.Context, rawURL string) error
}

package response

import (
	"time"

	"coursedesk/internal/usecase/interfaces"
)

type AssetUploadResponse struct {
	Key       string    `json:"key"`
	UploadURL string    `json:"upload_url"`
	PublicURL string    `json:"public_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromUploadTarget(t interfaces.UploadTarget) AssetUploadResponse {
	return AssetUploadResponse{
		Key:       t.Key,
		UploadURL: t.UploadURL,
		PublicURL: t.PublicURL,
		ExpiresAt: t.ExpiresAt,
	}
}

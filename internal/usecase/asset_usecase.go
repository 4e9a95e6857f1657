package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"coursedesk/internal/usecase/interfaces"
)

var (
	ErrInvalidAssetKind     = errors.New("invalid asset kind")
	ErrInvalidAssetEntity   = errors.New("invalid asset entity id")
	ErrUnsupportedAssetType = errors.New("unsupported asset content type")
	ErrAssetTooLarge        = errors.New("asset exceeds size ceiling")
	ErrInvalidAssetURL      = errors.New("invalid asset url")
)

const uploadURLTTL = 15 * time.Minute

// assetContentTypes maps each asset kind to its content-type allowlist and
// the object-key extension per type.
var assetContentTypes = map[string]map[string]string{
	"video": {
		"video/mp4":  ".mp4",
		"video/webm": ".webm",
	},
	"thumbnail": {
		"image/jpeg": ".jpg",
		"image/png":  ".png",
		"image/webp": ".webp",
	},
	"attachment": {
		"application/pdf": ".pdf",
		"application/zip": ".zip",
	},
}

// assetSizeCeilings are per-kind upload ceilings in bytes.
var assetSizeCeilings = map[string]int64{
	"video":      2 << 30,
	"thumbnail":  10 << 20,
	"attachment": 50 << 20,
}

// AssetUpload describes a requested admin upload slot.

type AssetUpload struct {
	Kind        string
	EntityID    string
	ContentType string
	SizeBytes   int64
}

// IAssetUseCase issues pre-signed upload URLs for course assets and deletes
// assets by their public URL.

type IAssetUseCase interface {
	CreateUploadURL(ctx context.Context, req AssetUpload) (interfaces.UploadTarget, error)
	DeleteByURL(ctx context.Context, rawURL string) error
}

type AssetUseCase struct {
	store interfaces.IAssetStore
}

var _ IAssetUseCase = (*AssetUseCase)(nil)

func NewAssetUseCase(store interfaces.IAssetStore) *AssetUseCase {
	return &AssetUseCase{store: store}
}

func (u *AssetUseCase) CreateUploadURL(ctx context.Context, req AssetUpload) (interfaces.UploadTarget, error) {
	req.Kind = strings.ToLower(strings.TrimSpace(req.Kind))
	req.EntityID = strings.TrimSpace(req.EntityID)
	req.ContentType = strings.ToLower(strings.TrimSpace(req.ContentType))
	log.Printf("[asset][usecase] upload-url start kind=%s entity_id=%s content_type=%s size=%d",
		req.Kind, req.EntityID, req.ContentType, req.SizeBytes)

	allowed, ok := assetContentTypes[req.Kind]
	if !ok {
		return interfaces.UploadTarget{}, ErrInvalidAssetKind
	}
	if req.EntityID == "" || strings.Contains(req.EntityID, "/") {
		return interfaces.UploadTarget{}, ErrInvalidAssetEntity
	}
	ext, ok := allowed[req.ContentType]
	if !ok {
		return interfaces.UploadTarget{}, ErrUnsupportedAssetType
	}
	if req.SizeBytes <= 0 || req.SizeBytes > assetSizeCeilings[req.Kind] {
		return interfaces.UploadTarget{}, ErrAssetTooLarge
	}

	// Key scheme: {kind}/{entityId}/{unixnano}{ext}. The timestamp keeps
	// re-uploads for the same entity from clobbering each other.
	key := fmt.Sprintf("%s/%s/%d%s", req.Kind, req.EntityID, time.Now().UTC().UnixNano(), ext)

	target, err := u.store.PresignUpload(ctx, key, req.ContentType, uploadURLTTL)
	if err != nil {
		log.Printf("[asset][usecase] presign failed key=%s err=%v", key, err)
		return interfaces.UploadTarget{}, err
	}
	log.Printf("[asset][usecase] upload-url success key=%s", target.Key)
	return target, nil
}

func (u *AssetUseCase) DeleteByURL(ctx context.Context, rawURL string) error {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ErrInvalidAssetURL
	}

	if err := u.store.DeleteByURL(ctx, rawURL); err != nil {
		log.Printf("[asset][usecase] delete failed url=%s err=%v", rawURL, err)
		return err
	}
	log.Printf("[asset][usecase] delete success url=%s", rawURL)
	return nil
}

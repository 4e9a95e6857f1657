package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"coursedesk/internal/usecase/interfaces"
	mock_interfaces "coursedesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAssetUseCase_CreateUploadURL_Validations(t *testing.T) {
	cases := []struct {
		name string
		req  AssetUpload
		want error
	}{
		{name: "unknown kind", req: AssetUpload{Kind: "audio", EntityID: "lesson-1", ContentType: "audio/mpeg", SizeBytes: 10}, want: ErrInvalidAssetKind},
		{name: "empty entity id", req: AssetUpload{Kind: "video", EntityID: " ", ContentType: "video/mp4", SizeBytes: 10}, want: ErrInvalidAssetEntity},
		{name: "entity id with slash", req: AssetUpload{Kind: "video", EntityID: "a/b", ContentType: "video/mp4", SizeBytes: 10}, want: ErrInvalidAssetEntity},
		{name: "disallowed content type", req: AssetUpload{Kind: "thumbnail", EntityID: "course-1", ContentType: "image/gif", SizeBytes: 10}, want: ErrUnsupportedAssetType},
		{name: "zero size", req: AssetUpload{Kind: "video", EntityID: "lesson-1", ContentType: "video/mp4", SizeBytes: 0}, want: ErrAssetTooLarge},
		{name: "over the video ceiling", req: AssetUpload{Kind: "video", EntityID: "lesson-1", ContentType: "video/mp4", SizeBytes: (2 << 30) + 1}, want: ErrAssetTooLarge},
		{name: "over the thumbnail ceiling", req: AssetUpload{Kind: "thumbnail", EntityID: "course-1", ContentType: "image/png", SizeBytes: (10 << 20) + 1}, want: ErrAssetTooLarge},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewAssetUseCase(nil)
			_, err := uc.CreateUploadURL(context.Background(), tc.req)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestAssetUseCase_CreateUploadURL(t *testing.T) {
	t.Run("presigns with the expected key shape", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIAssetStore(ctrl)
		uc := NewAssetUseCase(store)

		store.EXPECT().PresignUpload(gomock.Any(), gomock.Any(), "video/mp4", 15*time.Minute).DoAndReturn(
			func(_ context.Context, key, contentType string, _ time.Duration) (interfaces.UploadTarget, error) {
				if !strings.HasPrefix(key, "video/lesson-1/") || !strings.HasSuffix(key, ".mp4") {
					t.Fatalf("unexpected key: %s", key)
				}
				return interfaces.UploadTarget{Key: key, UploadURL: "https://s3/upload", PublicURL: "https://cdn/" + key}, nil
			},
		)

		target, err := uc.CreateUploadURL(context.Background(), AssetUpload{
			Kind: "Video", EntityID: " lesson-1 ", ContentType: "VIDEO/MP4", SizeBytes: 1 << 20,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if target.UploadURL == "" || target.Key == "" {
			t.Fatalf("unexpected target: %+v", target)
		}
	})

	t.Run("thumbnail jpeg maps to .jpg", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIAssetStore(ctrl)
		uc := NewAssetUseCase(store)

		store.EXPECT().PresignUpload(gomock.Any(), gomock.Any(), "image/jpeg", 15*time.Minute).DoAndReturn(
			func(_ context.Context, key, _ string, _ time.Duration) (interfaces.UploadTarget, error) {
				if !strings.HasSuffix(key, ".jpg") {
					t.Fatalf("jpeg must map to .jpg, got %s", key)
				}
				return interfaces.UploadTarget{Key: key}, nil
			},
		)

		if _, err := uc.CreateUploadURL(context.Background(), AssetUpload{
			Kind: "thumbnail", EntityID: "course-1", ContentType: "image/jpeg", SizeBytes: 1024,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("presign failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIAssetStore(ctrl)
		uc := NewAssetUseCase(store)

		store.EXPECT().PresignUpload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(
			interfaces.UploadTarget{}, errors.New("s3 down"))

		_, err := uc.CreateUploadURL(context.Background(), AssetUpload{
			Kind: "attachment", EntityID: "lesson-1", ContentType: "application/pdf", SizeBytes: 1024,
		})
		if err == nil || err.Error() != "s3 down" {
			t.Fatalf("expected s3 down, got %v", err)
		}
	})
}

func TestAssetUseCase_DeleteByURL(t *testing.T) {
	t.Run("empty url", func(t *testing.T) {
		uc := NewAssetUseCase(nil)
		if err := uc.DeleteByURL(context.Background(), "  "); !errors.Is(err, ErrInvalidAssetURL) {
			t.Fatalf("expected ErrInvalidAssetURL, got %v", err)
		}
	})

	t.Run("store error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIAssetStore(ctrl)
		uc := NewAssetUseCase(store)
		store.EXPECT().DeleteByURL(gomock.Any(), "https://cdn/video/x/1.mp4").Return(errors.New("s3"))

		if err := uc.DeleteByURL(context.Background(), "https://cdn/video/x/1.mp4"); err == nil || err.Error() != "s3" {
			t.Fatalf("expected s3 error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIAssetStore(ctrl)
		uc := NewAssetUseCase(store)
		store.EXPECT().DeleteByURL(gomock.Any(), "https://cdn/video/x/1.mp4").Return(nil)

		if err := uc.DeleteByURL(context.Background(), " https://cdn/video/x/1.mp4 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

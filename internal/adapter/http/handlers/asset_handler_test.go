package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"coursedesk/internal/adapter/http/handlers/mocks"
	"coursedesk/internal/usecase"
	"coursedesk/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func assetRouter(h *AssetHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/admin/assets/upload-url", h.CreateUploadURL)
	r.DELETE("/v1/admin/assets", h.DeleteAsset)
	return r
}

func TestAssetHandler_CreateUploadURL(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("malformed json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssetUseCase(ctrl)
		h := NewAssetHandler(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/assets/upload-url", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		assetRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unsupported content type maps to 415", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssetUseCase(ctrl)
		h := NewAssetHandler(uc)

		uc.EXPECT().CreateUploadURL(gomock.Any(), gomock.Any()).Return(interfaces.UploadTarget{}, usecase.ErrUnsupportedAssetType)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/assets/upload-url",
			bytes.NewBufferString(`{"kind":"thumbnail","entity_id":"course-1","content_type":"image/gif","size_bytes":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		assetRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusUnsupportedMediaType {
			t.Fatalf("expected 415, got %d", w.Code)
		}
	})

	t.Run("oversized asset maps to 413", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssetUseCase(ctrl)
		h := NewAssetHandler(uc)

		uc.EXPECT().CreateUploadURL(gomock.Any(), gomock.Any()).Return(interfaces.UploadTarget{}, usecase.ErrAssetTooLarge)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/assets/upload-url",
			bytes.NewBufferString(`{"kind":"video","entity_id":"lesson-1","content_type":"video/mp4","size_bytes":99}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		assetRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("expected 413, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssetUseCase(ctrl)
		h := NewAssetHandler(uc)

		uc.EXPECT().CreateUploadURL(gomock.Any(), usecase.AssetUpload{
			Kind: "video", EntityID: "lesson-1", ContentType: "video/mp4", SizeBytes: 1048576,
		}).Return(interfaces.UploadTarget{
			Key: "video/lesson-1/1.mp4", UploadURL: "https://s3/upload", PublicURL: "https://cdn/video/lesson-1/1.mp4",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/assets/upload-url",
			bytes.NewBufferString(`{"kind":"video","entity_id":"lesson-1","content_type":"video/mp4","size_bytes":1048576}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		assetRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["upload_url"] != "https://s3/upload" || body["key"] != "video/lesson-1/1.mp4" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestAssetHandler_DeleteAsset(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid url maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssetUseCase(ctrl)
		h := NewAssetHandler(uc)

		uc.EXPECT().DeleteByURL(gomock.Any(), "").Return(usecase.ErrInvalidAssetURL)

		req := httptest.NewRequest(http.MethodDelete, "/v1/admin/assets", bytes.NewBufferString(`{"url":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		assetRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssetUseCase(ctrl)
		h := NewAssetHandler(uc)

		uc.EXPECT().DeleteByURL(gomock.Any(), "https://cdn/video/lesson-1/1.mp4").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/admin/assets",
			bytes.NewBufferString(`{"url":"https://cdn/video/lesson-1/1.mp4"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		assetRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["deleted"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMapAssetError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidAssetKind, http.StatusBadRequest},
		{usecase.ErrInvalidAssetEntity, http.StatusBadRequest},
		{usecase.ErrInvalidAssetURL, http.StatusBadRequest},
		{usecase.ErrUnsupportedAssetType, http.StatusUnsupportedMediaType},
		{usecase.ErrAssetTooLarge, http.StatusRequestEntityTooLarge},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapAssetError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"coursedesk/internal/adapter/http/handlers/mocks"
	"coursedesk/internal/domain/entities"
	"coursedesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAffiliateHandler_GetAffiliateByCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAffiliateUseCase(ctrl)
		h := NewAffiliateHandler(uc)

		r := gin.New()
		r.GET("/v1/affiliates/:code", h.GetAffiliateByCode)

		uc.EXPECT().GetByCode(gomock.Any(), "GHOST").Return(entities.Affiliate{}, usecase.ErrAffiliateNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/affiliates/GHOST", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAffiliateUseCase(ctrl)
		h := NewAffiliateHandler(uc)

		r := gin.New()
		r.GET("/v1/affiliates/:code", h.GetAffiliateByCode)

		uc.EXPECT().GetByCode(gomock.Any(), "SAVE20").Return(entities.Affiliate{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/affiliates/SAVE20", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAffiliateUseCase(ctrl)
		h := NewAffiliateHandler(uc)

		r := gin.New()
		r.GET("/v1/affiliates/:code", h.GetAffiliateByCode)

		uc.EXPECT().GetByCode(gomock.Any(), "SAVE20").Return(entities.Affiliate{
			ID: "aff-1", Code: "SAVE20", TotalEarnings: 4000, TotalReferrals: 2, IsActive: true,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/affiliates/SAVE20", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "SAVE20" || body["total_earnings"] != float64(4000) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMapAffiliateError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidAffiliateCode, http.StatusBadRequest},
		{usecase.ErrAffiliateNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapAffiliateError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}

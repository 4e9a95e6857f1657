package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coursedesk/internal/adapter/http/handlers/mocks"
	"coursedesk/internal/domain/entities"
	"coursedesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func simulationRouter(h *CheckoutSimulationHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/admin/checkout/simulate", h.SimulateCheckout)
	return r
}

func postSimulation(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/checkout/simulate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckoutSimulationHandler_SimulateCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("malformed json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutSimulationHandler(uc)

		w := postSimulation(simulationRouter(h), "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing product id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutSimulationHandler(uc)

		w := postSimulation(simulationRouter(h), `{"user_id":"user-1","final_price":9900}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non-positive final price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutSimulationHandler(uc)

		w := postSimulation(simulationRouter(h), `{"product_id":"full-course","final_price":0}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("fabricates synthetic identifiers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutSimulationHandler(uc)

		uc.EXPECT().HandleCheckoutCompleted(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.CheckoutCompleted) (entities.Payment, error) {
				if !strings.HasPrefix(cmd.EventID, "evt_sim_") {
					t.Fatalf("expected synthetic event id, got %s", cmd.EventID)
				}
				if !strings.HasPrefix(cmd.CheckoutSessionID, "cs_sim_") || !strings.HasPrefix(cmd.PaymentIntentID, "pi_sim_") {
					t.Fatalf("expected synthetic session identifiers: %+v", cmd)
				}
				if cmd.OriginalPrice != 9900 || cmd.FinalPrice != 7900 || cmd.DiscountAmount != 2000 {
					t.Fatalf("original price must be final plus discount: %+v", cmd)
				}
				return entities.Payment{ID: "pay-1", Status: entities.PaymentStatusCompleted}, nil
			},
		)

		w := postSimulation(simulationRouter(h), `{"user_id":"user-1","product_id":"full-course","affiliate_code":"SAVE20","final_price":7900,"discount_amount":2000}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "pay-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("usecase validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutSimulationHandler(uc)

		uc.EXPECT().HandleCheckoutCompleted(gomock.Any(), gomock.Any()).Return(entities.Payment{}, usecase.ErrInvalidCheckoutProduct)

		w := postSimulation(simulationRouter(h), `{"product_id":"x","final_price":100}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unexpected failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutSimulationHandler(uc)

		uc.EXPECT().HandleCheckoutCompleted(gomock.Any(), gomock.Any()).Return(entities.Payment{}, errors.New("ddb down"))

		w := postSimulation(simulationRouter(h), `{"product_id":"full-course","final_price":100}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestMapCheckoutError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidCheckoutProduct, http.StatusBadRequest},
		{usecase.ErrInvalidCheckoutAmount, http.StatusBadRequest},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapCheckoutError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}

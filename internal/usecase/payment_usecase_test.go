package usecase

import (
	"context"
	"errors"
	"testing"

	"coursedesk/internal/domain/entities"
	mock_interfaces "coursedesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "pay-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{}, nil)

		_, err := uc.GetByID(context.Background(), "pay-1")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("success trims the id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{ID: "pay-1"}, nil)

		p, err := uc.GetByID(context.Background(), " pay-1 ")
		if err != nil || p.ID != "pay-1" {
			t.Fatalf("unexpected result err=%v p=%+v", err, p)
		}
	})
}

func TestPaymentUseCase_ListByUserID(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil)
		_, err := uc.ListByUserID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPaymentUserID) {
			t.Fatalf("expected ErrInvalidPaymentUserID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo)
		repo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return([]entities.Payment{{ID: "pay-1"}}, nil)

		res, err := uc.ListByUserID(context.Background(), " user-1 ")
		if err != nil || len(res) != 1 || res[0].ID != "pay-1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

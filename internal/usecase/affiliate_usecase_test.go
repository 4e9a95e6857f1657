package usecase

import (
	"context"
	"errors"
	"testing"

	"coursedesk/internal/domain/entities"
	mock_interfaces "coursedesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAffiliateUseCase_GetByCode(t *testing.T) {
	t.Run("invalid code", func(t *testing.T) {
		uc := NewAffiliateUseCase(nil)
		_, err := uc.GetByCode(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidAffiliateCode) {
			t.Fatalf("expected ErrInvalidAffiliateCode, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAffiliateRepository(ctrl)
		uc := NewAffiliateUseCase(repo)
		repo.EXPECT().GetByCode(gomock.Any(), "SAVE20").Return(entities.Affiliate{}, errors.New("db"))

		_, err := uc.GetByCode(context.Background(), "SAVE20")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAffiliateRepository(ctrl)
		uc := NewAffiliateUseCase(repo)
		repo.EXPECT().GetByCode(gomock.Any(), "GHOST").Return(entities.Affiliate{}, nil)

		_, err := uc.GetByCode(context.Background(), "GHOST")
		if !errors.Is(err, ErrAffiliateNotFound) {
			t.Fatalf("expected ErrAffiliateNotFound, got %v", err)
		}
	})

	t.Run("success trims the code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAffiliateRepository(ctrl)
		uc := NewAffiliateUseCase(repo)
		repo.EXPECT().GetByCode(gomock.Any(), "SAVE20").Return(entities.Affiliate{ID: "aff-1", Code: "SAVE20"}, nil)

		aff, err := uc.GetByCode(context.Background(), " SAVE20 ")
		if err != nil || aff.ID != "aff-1" {
			t.Fatalf("unexpected result err=%v aff=%+v", err, aff)
		}
	})
}

package usecase

import (
	"context"
	"errors"
	"strings"

	"coursedesk/internal/domain/entities"
	"coursedesk/internal/usecase/interfaces"
)

var (
	ErrAffiliateNotFound    = errors.New("affiliate not found")
	ErrInvalidAffiliateCode = errors.New("invalid affiliate code")
)

// IAffiliateUseCase exposes affiliate lookups for the admin console.

type IAffiliateUseCase interface {
	GetByCode(ctx context.Context, code string) (entities.Affiliate, error)
}

type AffiliateUseCase struct {
	repo interfaces.IAffiliateRepository
}

var _ IAffiliateUseCase = (*AffiliateUseCase)(nil)

func NewAffiliateUseCase(repo interfaces.IAffiliateRepository) *AffiliateUseCase {
	return &AffiliateUseCase{repo: repo}
}

func (u *AffiliateUseCase) GetByCode(ctx context.Context, code string) (entities.Affiliate, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.Affiliate{}, ErrInvalidAffiliateCode
	}

	aff, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return entities.Affiliate{}, err
	}
	if aff.ID == "" {
		return entities.Affiliate{}, ErrAffiliateNotFound
	}
	return aff, nil
}

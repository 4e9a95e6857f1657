package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	response "coursedesk/internal/adapter/http/dto/response"
	"coursedesk/internal/usecase"
	"coursedesk/pkg"
)

// AffiliateHandler serves affiliate lookups for the admin console.

type AffiliateHandler struct {
	usecase usecase.IAffiliateUseCase
}

func NewAffiliateHandler(uc usecase.IAffiliateUseCase) *AffiliateHandler {
	return &AffiliateHandler{usecase: uc}
}

// GetAffiliateByCode godoc
// @Summary      Get an affiliate by referral code
// @Tags         affiliates
// @Produce      json
// @Param        code  path  string  true  "Referral code"
// @Success      200  {object}  response.AffiliateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /affiliates/{code} [get]
func (h *AffiliateHandler) GetAffiliateByCode(c *gin.Context) {
	code := c.Param("code")

	aff, err := h.usecase.GetByCode(c.Request.Context(), code)
	if err != nil {
		log.Printf("[affiliate][handler] get failed code=%s err=%v", code, err)
		appErr := mapAffiliateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAffiliate(aff))
}

func mapAffiliateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAffiliateCode):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAffiliateNotFound):
		return pkg.NewDomainErrorSimple("AFFILIATE_NOT_FOUND", "Affiliate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

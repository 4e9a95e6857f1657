package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "coursedesk/internal/adapter/http/dto/request"
	response "coursedesk/internal/adapter/http/dto/response"
	"coursedesk/internal/usecase"
	"coursedesk/pkg"
)

// AssetHandler issues pre-signed upload URLs and deletes course assets.

type AssetHandler struct {
	usecase usecase.IAssetUseCase
}

func NewAssetHandler(uc usecase.IAssetUseCase) *AssetHandler {
	return &AssetHandler{usecase: uc}
}

// CreateUploadURL godoc
// @Summary      Issue a pre-signed asset upload URL
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        payload  body  request.AssetUploadRequest  true  "Upload request"
// @Success      200  {object}  response.AssetUploadResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /admin/assets/upload-url [post]
func (h *AssetHandler) CreateUploadURL(c *gin.Context) {
	var payload request.AssetUploadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	target, err := h.usecase.CreateUploadURL(c.Request.Context(), usecase.AssetUpload{
		Kind:        payload.Kind,
		EntityID:    payload.EntityID,
		ContentType: payload.ContentType,
		SizeBytes:   payload.SizeBytes,
	})
	if err != nil {
		log.Printf("[asset][handler] upload-url failed kind=%s entity_id=%s err=%v", payload.Kind, payload.EntityID, err)
		appErr := mapAssetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUploadTarget(target))
}

// DeleteAsset godoc
// @Summary      Delete an asset by public URL
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        payload  body  request.AssetDeleteRequest  true  "Delete request"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  pkg.HTTPError
// @Router       /admin/assets [delete]
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	var payload request.AssetDeleteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.DeleteByURL(c.Request.Context(), payload.URL); err != nil {
		log.Printf("[asset][handler] delete failed url=%s err=%v", payload.URL, err)
		appErr := mapAssetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func mapAssetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAssetKind),
		errors.Is(err, usecase.ErrInvalidAssetEntity),
		errors.Is(err, usecase.ErrInvalidAssetURL):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedAssetType):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_ASSET_TYPE", "Asset content type not allowed", http.StatusUnsupportedMediaType)
	case errors.Is(err, usecase.ErrAssetTooLarge):
		return pkg.NewDomainErrorSimple("ASSET_TOO_LARGE", "Asset exceeds the size ceiling", http.StatusRequestEntityTooLarge)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

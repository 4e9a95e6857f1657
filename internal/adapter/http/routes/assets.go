package routes

import (
	"net/http"

	"coursedesk/internal/adapter/http/handlers"
	"coursedesk/pkg"

	"github.com/gin-gonic/gin"
)

func addAssetRoutes(rg *gin.RouterGroup, assetHandler *handlers.AssetHandler) {
	admin := rg.Group(PathAdmin)

	if assetHandler == nil {
		notConfigured := func(c *gin.Context) {
			appErr := pkg.NewDomainErrorSimple("ASSET_STORE_NOT_CONFIGURED", "Asset storage not configured", http.StatusServiceUnavailable)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		}
		admin.POST("/assets/upload-url", notConfigured)
		admin.DELETE("/assets", notConfigured)
		return
	}

	admin.POST("/assets/upload-url", assetHandler.CreateUploadURL)
	admin.DELETE("/assets", assetHandler.DeleteAsset)
}

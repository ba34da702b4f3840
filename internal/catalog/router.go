package catalog

import (
	"github.com/gin-gonic/gin"
)

func SetupCatalogRoutes(rg *gin.RouterGroup, controller *Controller) {
	packages := rg.Group("/packages")
	{
		packages.GET("", controller.GetPackages)    // GET /api/v1/packages
		packages.GET("/:id", controller.GetPackage) // GET /api/v1/packages/:id
	}

	venues := rg.Group("/venues")
	{
		venues.GET("", controller.GetVenues)    // GET /api/v1/venues
		venues.GET("/:id", controller.GetVenue) // GET /api/v1/venues/:id
	}
}

package builder

import (
	"github.com/gin-gonic/gin"
)

func SetupBuilderRoutes(rg *gin.RouterGroup, controller *Controller) {
	sessions := rg.Group("/builder/sessions")
	{
		sessions.POST("", controller.CreateSession)      // POST /api/v1/builder/sessions
		sessions.GET("/:id", controller.GetSession)      // GET /api/v1/builder/sessions/:id
		sessions.DELETE("/:id", controller.DiscardSession)

		sessions.DELETE("/:id/components/:componentId", controller.RemoveComponent)
		sessions.POST("/:id/components/:componentId/restore", controller.RestoreComponent)

		sessions.PUT("/:id/venue", controller.SelectVenue)
		sessions.DELETE("/:id/venue", controller.ClearVenue)
		sessions.PUT("/:id/venue-options", controller.SelectVenueOption)

		sessions.POST("/:id/custom-inclusions", controller.AddCustomInclusion)
		sessions.POST("/:id/supplier-services", controller.AddSupplierService)

		sessions.PUT("/:id/schedule", controller.SetSchedule)
		sessions.PUT("/:id/percentage", controller.SetPercentage)
		sessions.PUT("/:id/down-payment", controller.SetDownPayment)
		sessions.PUT("/:id/cash-bond", controller.UpdateCashBond)
		sessions.POST("/:id/cash-bond/damage", controller.FileDamageClaim)
		sessions.POST("/:id/payments", controller.RecordPayment)

		sessions.POST("/:id/submit", controller.Submit)
	}
}

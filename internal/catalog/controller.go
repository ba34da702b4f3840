package catalog

import (
	"errors"
	"net/http"

	"festiva/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) GetPackages(ctx *gin.Context) {
	packages, err := c.service.ListPackages(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, http.StatusBadGateway, "Failed to get packages", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Packages retrieved successfully", packages)
}

func (c *Controller) GetPackage(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		response.Error(ctx, http.StatusBadRequest, "Package ID is required", "missing package ID")
		return
	}

	pkg, err := c.service.GetPackage(ctx.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusBadGateway
		if errors.Is(err, ErrNotFound) {
			statusCode = http.StatusNotFound
		}
		response.Error(ctx, statusCode, "Failed to get package", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Package retrieved successfully", pkg)
}

func (c *Controller) GetVenues(ctx *gin.Context) {
	venues, err := c.service.ListVenues(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, http.StatusBadGateway, "Failed to get venues", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Venues retrieved successfully", venues)
}

func (c *Controller) GetVenue(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		response.Error(ctx, http.StatusBadRequest, "Venue ID is required", "missing venue ID")
		return
	}

	venue, err := c.service.GetVenue(ctx.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusBadGateway
		if errors.Is(err, ErrNotFound) {
			statusCode = http.StatusNotFound
		}
		response.Error(ctx, statusCode, "Failed to get venue", err.Error())
		return
	}

	response.Success(ctx, http.StatusOK, "Venue retrieved successfully", venue)
}

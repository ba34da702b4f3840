package builder

import (
	"errors"
	"net/http"

	"festiva/internal/catalog"
	"festiva/internal/payments"
	"festiva/internal/shared/apperrors"
	"festiva/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// respondMutationError maps engine errors to API responses: refused
// mutations come back as 422 with the typed error code, bad catalog
// lookups as 404, everything unexpected as 500.
func respondMutationError(ctx *gin.Context, message string, err error) {
	if ve, ok := apperrors.AsValidation(err); ok {
		response.Error(ctx, http.StatusUnprocessableEntity, message, gin.H{
			"code":    ve.Code,
			"field":   ve.Field,
			"message": ve.Message,
		})
		return
	}
	if se, ok := apperrors.AsInputShape(err); ok {
		response.Error(ctx, http.StatusBadRequest, message, gin.H{
			"field":   se.Field,
			"message": se.Reason,
		})
		return
	}
	if errors.Is(err, ErrSessionNotFound) || errors.Is(err, catalog.ErrNotFound) {
		response.Error(ctx, http.StatusNotFound, message, err.Error())
		return
	}
	response.Error(ctx, http.StatusInternalServerError, message, err.Error())
}

func sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid session ID", err.Error())
		return uuid.Nil, false
	}
	return id, true
}

func (c *Controller) CreateSession(ctx *gin.Context) {
	var req CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	session, err := c.service.CreateSession(ctx.Request.Context(), req.PackageID)
	if err != nil {
		respondMutationError(ctx, "Failed to create session", err)
		return
	}

	response.Success(ctx, http.StatusCreated, "Session created successfully", ToSessionResponse(session))
}

func (c *Controller) GetSession(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	session, err := c.service.GetSession(ctx.Request.Context(), id)
	if err != nil {
		respondMutationError(ctx, "Failed to get session", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Session retrieved successfully", ToSessionResponse(session))
}

func (c *Controller) DiscardSession(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	if err := c.service.DiscardSession(ctx.Request.Context(), id); err != nil {
		respondMutationError(ctx, "Failed to discard session", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Session discarded", nil)
}

func (c *Controller) RemoveComponent(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	componentID := ctx.Param("componentId")
	if componentID == "" {
		response.Error(ctx, http.StatusBadRequest, "Component ID is required", "missing component ID")
		return
	}

	session, err := c.service.RemoveComponent(ctx.Request.Context(), id, componentID)
	if err != nil {
		respondMutationError(ctx, "Failed to remove component", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Component removed", ToSessionResponse(session))
}

func (c *Controller) RestoreComponent(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	componentID := ctx.Param("componentId")

	session, err := c.service.RestoreComponent(ctx.Request.Context(), id, componentID)
	if err != nil {
		respondMutationError(ctx, "Failed to restore component", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Component restored", ToSessionResponse(session))
}

func (c *Controller) SelectVenue(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	var req SelectVenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	session, err := c.service.SelectVenue(ctx.Request.Context(), id, req.VenueID)
	if err != nil {
		respondMutationError(ctx, "Failed to select venue", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Venue selected", ToSessionResponse(session))
}

func (c *Controller) ClearVenue(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	session, err := c.service.ClearVenue(ctx.Request.Context(), id)
	if err != nil {
		respondMutationError(ctx, "Failed to clear venue", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Venue cleared", ToSessionResponse(session))
}

func (c *Controller) SelectVenueOption(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	var req VenueOptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	session, err := c.service.SelectVenueOption(ctx.Request.Context(), id, req.ComponentID, req.OptionID)
	if err != nil {
		respondMutationError(ctx, "Failed to select venue option", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Venue option selected", ToSessionResponse(session))
}

func (c *Controller) AddCustomInclusion(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	var req CustomInclusionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	session, err := c.service.AddCustomInclusion(ctx.Request.Context(), id, catalog.CustomInclusion{
		Name:     req.Name,
		Price:    req.Price,
		Category: catalog.Category(req.Category),
	})
	if err != nil {
		respondMutationError(ctx, "Failed to add custom inclusion", err)
		return
	}

	response.Success(ctx, http.StatusCreated, "Custom inclusion added", ToSessionResponse(session))
}

func (c *Controller) AddSupplierService(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	var req SupplierServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	session, err := c.service.AddSupplierService(ctx.Request.Context(), id, catalog.SupplierService{
		SupplierID: req.SupplierID,
		Name:       req.Name,
		Price:      req.Price,
		Category:   catalog.Category(req.Category),
	})
	if err != nil {
		respondMutationError(ctx, "Failed to add supplier service", err)
		return
	}

	response.Success(ctx, http.StatusCreated, "Supplier service added", ToSessionResponse(session))
}

func (c *Controller) SetSchedule(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	var req ScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	session, err := c.service.SetSchedule(ctx.Request.Context(), id, payments.ScheduleType(req.ScheduleType), req.Percentage)
	if err != nil {
		respondMutationError(ctx, "Failed to set schedule", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Schedule updated", ToSessionResponse(session))
}

func (c *Controller) SetPercentage(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	var req PercentageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	session, err := c.service.SetCustomPercentage(ctx.Request.Context(), id, req.Percentage)
	if err != nil {
		respondMutationError(ctx, "Failed to set percentage", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Percentage updated", ToSessionResponse(session))
}

func (c *Controller) SetDownPayment(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	var req DownPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	session, err := c.service.SetDownPayment(ctx.Request.Context(), id, req.Amount)
	if err != nil {
		respondMutationError(ctx, "Failed to set down payment", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Down payment updated", ToSessionResponse(session))
}

func (c *Controller) UpdateCashBond(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	var req CashBondRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	var session *Session
	var err error
	if req.Required != nil {
		session, err = c.service.SetCashBondRequired(ctx.Request.Context(), id, *req.Required)
		if err != nil {
			respondMutationError(ctx, "Failed to update cash bond", err)
			return
		}
	}
	if req.Status != "" {
		session, err = c.service.SetCashBondStatus(ctx.Request.Context(), id, payments.BondStatus(req.Status))
		if err != nil {
			respondMutationError(ctx, "Failed to update cash bond", err)
			return
		}
	}
	if session == nil {
		session, err = c.service.GetSession(ctx.Request.Context(), id)
		if err != nil {
			respondMutationError(ctx, "Failed to update cash bond", err)
			return
		}
	}

	response.Success(ctx, http.StatusOK, "Cash bond updated", ToSessionResponse(session))
}

func (c *Controller) FileDamageClaim(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	var req DamageClaimRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	session, err := c.service.FileDamageClaim(ctx.Request.Context(), id, req.Description, req.Amount)
	if err != nil {
		respondMutationError(ctx, "Failed to file damage claim", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Damage claim filed", ToSessionResponse(session))
}

func (c *Controller) RecordPayment(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}
	var req PaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	session, err := c.service.RecordPayment(ctx.Request.Context(), id, payments.PaymentMethod(req.Method), req.Reference)
	if err != nil {
		respondMutationError(ctx, "Failed to record payment", err)
		return
	}

	response.Success(ctx, http.StatusOK, "Payment recorded", ToSessionResponse(session))
}

func (c *Controller) Submit(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	payload, err := c.service.Submit(ctx.Request.Context(), id)
	if err != nil {
		respondMutationError(ctx, "Failed to submit booking", err)
		return
	}

	response.Success(ctx, http.StatusCreated, "Booking submitted successfully", payload)
}

package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/motorlane/carstock/internal/constants"
	"github.com/motorlane/carstock/internal/dto"
	apperrors "github.com/motorlane/carstock/internal/errors"
	"github.com/motorlane/carstock/internal/service"
	"github.com/motorlane/carstock/pkg/ctxutil"
	"github.com/motorlane/carstock/pkg/logger"
	"github.com/motorlane/carstock/pkg/validation"
)

type ManufacturerHandler struct {
	manufacturerService *service.ManufacturerService
}

func NewManufacturerHandler(manufacturerService *service.ManufacturerService) *ManufacturerHandler {
	return &ManufacturerHandler{manufacturerService: manufacturerService}
}

func (h *ManufacturerHandler) GetByID(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "GetByID")

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	manufacturer, err := h.manufacturerService.GetByID(ctx, id)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.WarnWithContext(ctx, "Failed to fetch manufacturer").
			Int("manufacturer_id", int(id)).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusOK, manufacturer)
}

func (h *ManufacturerHandler) GetAll(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "GetAll")

	page := constants.ParsePageable(c)

	manufacturers, total, pageTotal, err := h.manufacturerService.GetAll(ctx, page)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.ErrorWithContext(ctx, "Failed to fetch manufacturers").
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse("Failed to fetch manufacturers", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildListResponse(total, page.Page, pageTotal, manufacturers))
}

func (h *ManufacturerHandler) Create(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "Create")

	var req dto.CreateManufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", validation.BindingErrorMessage(err)))
		return
	}

	manufacturer, err := h.manufacturerService.Create(ctx, &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.WarnWithContext(ctx, "Failed to create manufacturer").
			String("name", req.Name).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/manufacturers/%d", manufacturer.ID))
	setEntityAlert(c, "manufacturer.created", manufacturer.ID)
	c.JSON(http.StatusCreated, manufacturer)
}

func (h *ManufacturerHandler) Update(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "Update")

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateManufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", validation.BindingErrorMessage(err)))
		return
	}

	manufacturer, err := h.manufacturerService.Update(ctx, id, &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.WarnWithContext(ctx, "Failed to update manufacturer").
			Int("manufacturer_id", int(id)).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	setEntityAlert(c, "manufacturer.updated", manufacturer.ID)
	c.JSON(http.StatusOK, manufacturer)
}

func (h *ManufacturerHandler) Delete(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "Delete")

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.manufacturerService.Delete(ctx, id); err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.WarnWithContext(ctx, "Failed to delete manufacturer").
			Int("manufacturer_id", int(id)).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	setEntityAlert(c, "manufacturer.deleted", id)
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Manufacturer deleted successfully"))
}

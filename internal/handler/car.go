package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/motorlane/carstock/internal/constants"
	"github.com/motorlane/carstock/internal/dto"
	apperrors "github.com/motorlane/carstock/internal/errors"
	"github.com/motorlane/carstock/internal/query"
	"github.com/motorlane/carstock/internal/service"
	"github.com/motorlane/carstock/pkg/ctxutil"
	"github.com/motorlane/carstock/pkg/logger"
	"github.com/motorlane/carstock/pkg/validation"
)

type CarHandler struct {
	carService *service.CarService
}

func NewCarHandler(carService *service.CarService) *CarHandler {
	return &CarHandler{carService: carService}
}

func (h *CarHandler) GetByID(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "GetByID")

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	car, err := h.carService.GetByID(ctx, id)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.WarnWithContext(ctx, "Failed to fetch car").
			Int("car_id", int(id)).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusOK, car)
}

func (h *CarHandler) GetAll(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "GetAll")

	page := constants.ParsePageable(c)

	cars, total, pageTotal, err := h.carService.GetAll(ctx, page)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.ErrorWithContext(ctx, "Failed to fetch cars").
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse("Failed to fetch cars", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildListResponse(total, page.Page, pageTotal, cars))
}

func (h *CarHandler) Create(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "Create")

	var req dto.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid request body for car creation").
			Err(err).
			Log()
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", validation.BindingErrorMessage(err)))
		return
	}

	car, err := h.carService.Create(ctx, &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.WarnWithContext(ctx, "Failed to create car").
			String("model_name", req.ModelName).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/cars/%d", car.ID))
	setEntityAlert(c, "car.created", car.ID)
	c.JSON(http.StatusCreated, car)
}

func (h *CarHandler) Update(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "Update")

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid request body for car update").
			Int("car_id", int(id)).
			Err(err).
			Log()
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", validation.BindingErrorMessage(err)))
		return
	}

	car, err := h.carService.Update(ctx, id, &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.WarnWithContext(ctx, "Failed to update car").
			Int("car_id", int(id)).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	setEntityAlert(c, "car.updated", car.ID)
	c.JSON(http.StatusOK, car)
}

func (h *CarHandler) Delete(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "Delete")

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.carService.Delete(ctx, id); err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.WarnWithContext(ctx, "Failed to delete car").
			Int("car_id", int(id)).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	setEntityAlert(c, "car.deleted", id)
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Car deleted successfully"))
}

// Search serves the filtered inventory listing. The six criteria arrive as
// optional query parameters; the filter compiler validates them and either
// the whole request executes or a single field is reported back as a 400.
func (h *CarHandler) Search(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "Search")

	var filter dto.CarSearchFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid query parameters", err.Error()))
		return
	}
	page := constants.ParsePageable(c)

	result, err := h.carService.Search(ctx, filter, page)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)

		var numErr *query.InvalidNumberError
		var enumErr *query.InvalidEnumError
		switch {
		case errors.As(err, &numErr):
			c.Header(constants.HeaderError, "invalid.number."+numErr.Field)
			c.JSON(status, constants.BuildFieldErrorResponse("A numeric criterion could not be parsed", numErr.Field))
		case errors.As(err, &enumErr):
			c.Header(constants.HeaderError, "invalid.enum."+enumErr.Field)
			c.JSON(status, constants.BuildFieldErrorResponse("Criterion value is outside the allowed set", enumErr.Field))
		default:
			logger.ErrorWithContext(ctx, "Car search failed").
				Int("http_status", status).
				Err(err).
				Log()
			c.JSON(status, constants.BuildErrorResponse("Failed to search cars", apperrors.GetErrorMessage(err)))
		}
		return
	}

	constants.SetPageHeaders(c, result, c.Request.URL.Path)
	c.JSON(http.StatusOK, result.Items)
}

// parseIDParam reads the :id path parameter, answering the request itself
// when the value is not a positive integer.
func parseIDParam(c *gin.Context) (uint, bool) {
	idStr := c.Param("id")
	id64, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid id", idStr))
		return 0, false
	}
	return uint(id64), true
}

// setEntityAlert writes the mutation notification headers the web client
// flashes to the user.
func setEntityAlert(c *gin.Context, alert string, id uint) {
	c.Header(constants.HeaderAlert, alert)
	c.Header(constants.HeaderAlertParams, strconv.FormatUint(uint64(id), 10))
}

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

type PhotoHandler struct {
	photoService *service.PhotoService
}

func NewPhotoHandler(photoService *service.PhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

func (h *PhotoHandler) GetByID(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "GetByID")

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	photo, err := h.photoService.GetByID(ctx, id)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.WarnWithContext(ctx, "Failed to fetch photo").
			Int("photo_id", int(id)).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusOK, photo)
}

func (h *PhotoHandler) GetAll(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "GetAll")

	page := constants.ParsePageable(c)

	photos, total, pageTotal, err := h.photoService.GetAll(ctx, page)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.ErrorWithContext(ctx, "Failed to fetch photos").
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse("Failed to fetch photos", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildListResponse(total, page.Page, pageTotal, photos))
}

func (h *PhotoHandler) Create(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "Create")

	var req dto.CreatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", validation.BindingErrorMessage(err)))
		return
	}

	photo, err := h.photoService.Create(ctx, &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.WarnWithContext(ctx, "Failed to create photo").
			Int("car_id", int(req.CarID)).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/photos/%d", photo.ID))
	setEntityAlert(c, "photo.created", photo.ID)
	c.JSON(http.StatusCreated, photo)
}

func (h *PhotoHandler) Update(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "Update")

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", validation.BindingErrorMessage(err)))
		return
	}

	photo, err := h.photoService.Update(ctx, id, &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.WarnWithContext(ctx, "Failed to update photo").
			Int("photo_id", int(id)).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	setEntityAlert(c, "photo.updated", photo.ID)
	c.JSON(http.StatusOK, photo)
}

func (h *PhotoHandler) Delete(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "Delete")

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.photoService.Delete(ctx, id); err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.WarnWithContext(ctx, "Failed to delete photo").
			Int("photo_id", int(id)).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	setEntityAlert(c, "photo.deleted", id)
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Photo deleted successfully"))
}

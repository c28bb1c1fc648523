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

type LinkHandler struct {
	linkService *service.LinkService
}

func NewLinkHandler(linkService *service.LinkService) *LinkHandler {
	return &LinkHandler{linkService: linkService}
}

func (h *LinkHandler) GetByID(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "GetByID")

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	link, err := h.linkService.GetByID(ctx, id)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.WarnWithContext(ctx, "Failed to fetch link").
			Int("link_id", int(id)).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.JSON(http.StatusOK, link)
}

func (h *LinkHandler) GetAll(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "GetAll")

	page := constants.ParsePageable(c)

	links, total, pageTotal, err := h.linkService.GetAll(ctx, page)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.ErrorWithContext(ctx, "Failed to fetch links").
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse("Failed to fetch links", apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildListResponse(total, page.Page, pageTotal, links))
}

func (h *LinkHandler) Create(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "Create")

	var req dto.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", validation.BindingErrorMessage(err)))
		return
	}

	link, err := h.linkService.Create(ctx, &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.WarnWithContext(ctx, "Failed to create link").
			Int("car_id", int(req.CarID)).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/links/%d", link.ID))
	setEntityAlert(c, "link.created", link.ID)
	c.JSON(http.StatusCreated, link)
}

func (h *LinkHandler) Update(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "Update")

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid request format", validation.BindingErrorMessage(err)))
		return
	}

	link, err := h.linkService.Update(ctx, id, &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.WarnWithContext(ctx, "Failed to update link").
			Int("link_id", int(id)).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	setEntityAlert(c, "link.updated", link.ID)
	c.JSON(http.StatusOK, link)
}

func (h *LinkHandler) Delete(c *gin.Context) {
	ctx := ctxutil.NewContextWithRequest(c.Request.Context(), c.Request, "handler", "Delete")

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.linkService.Delete(ctx, id); err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.WarnWithContext(ctx, "Failed to delete link").
			Int("link_id", int(id)).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err), nil))
		return
	}

	setEntityAlert(c, "link.deleted", id)
	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Link deleted successfully"))
}

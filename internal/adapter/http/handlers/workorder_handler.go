package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	request "pma_workorders/internal/adapter/http/dto/request"
	response "pma_workorders/internal/adapter/http/dto/response"
	"pma_workorders/internal/adapter/http/middleware"
	"pma_workorders/internal/domain/entities"
	"pma_workorders/internal/usecase"
	"pma_workorders/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWorkOrderPayload = pkg.NewDomainErrorSimple("INVALID_WORKORDER_INPUT", "Invalid work order payload", http.StatusBadRequest)
	errMissingOwner            = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing user identity", http.StatusUnauthorized)
)

// WorkOrderHandler handles the HTTP surface of the PMA work-order store.
//
// Every route is owner-scoped: the owner id comes from the auth middleware
// and is passed through to the use case untouched.

type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

// Draft serves a fully-populated default work order (template checklist,
// today's date) so clients never start from partial data.
func (h *WorkOrderHandler) Draft(c *gin.Context) {
	draft := entities.NewDraft(time.Now().UTC())
	c.JSON(http.StatusOK, response.FromWorkOrder(draft))
}

func (h *WorkOrderHandler) Create(c *gin.Context) {
	ownerID, ok := ownerFrom(c)
	if !ok {
		return
	}

	var payload request.WorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	draft, err := payload.ToEntity(time.Now().UTC())
	if err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), draft, ownerID)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkOrder(created))
}

func (h *WorkOrderHandler) Get(c *gin.Context) {
	ownerID, ok := ownerFrom(c)
	if !ok {
		return
	}

	wo, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"), ownerID)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

func (h *WorkOrderHandler) List(c *gin.Context) {
	ownerID, ok := ownerFrom(c)
	if !ok {
		return
	}

	orders, err := h.usecase.List(c.Request.Context(), ownerID)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrders(orders))
}

func (h *WorkOrderHandler) Update(c *gin.Context) {
	ownerID, ok := ownerFrom(c)
	if !ok {
		return
	}

	var payload request.WorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	wo, err := payload.ToEntity(time.Now().UTC())
	if err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), wo, ownerID)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(updated))
}

func (h *WorkOrderHandler) Delete(c *gin.Context) {
	ownerID, ok := ownerFrom(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), ownerID); err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportPDF streams the rendered work order as a PDF download named after
// the work-order code.
func (h *WorkOrderHandler) ExportPDF(c *gin.Context) {
	ownerID, ok := ownerFrom(c)
	if !ok {
		return
	}

	pdf, filename, err := h.usecase.ExportPDF(c.Request.Context(), c.Param("id"), ownerID)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func ownerFrom(c *gin.Context) (string, bool) {
	ownerID := middleware.OwnerID(c)
	if ownerID == "" {
		c.JSON(errMissingOwner.HTTPStatus, errMissingOwner.ToHTTPError())
		return "", false
	}
	return ownerID, true
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID), errors.Is(err, usecase.ErrInvalidOwnerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORKORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotOwner):
		return pkg.NewDomainErrorSimple("NOT_OWNER", "Work order belongs to another user", http.StatusForbidden)
	default:
		return pkg.NewDomainError("STORE_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

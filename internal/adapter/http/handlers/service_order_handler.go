package handlers

import (
	"errors"
	"net/http"

	request "github.com/rafacrt/studio-sub000/internal/adapter/http/dto/request"
	response "github.com/rafacrt/studio-sub000/internal/adapter/http/dto/response"
	"github.com/rafacrt/studio-sub000/internal/usecase"
	"github.com/rafacrt/studio-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOSPayload = pkg.NewDomainErrorSimple("INVALID_OS_INPUT", "Invalid service order payload", http.StatusBadRequest)
)

// ServiceOrderHandler handles HTTP requests for the OS board.

type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

// CreateServiceOrder accepts the board's creation payload and returns the
// persisted OS with its assigned numero.
func (h *ServiceOrderHandler) CreateServiceOrder(c *gin.Context) {
	var payload request.ServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOSPayload.HTTPStatus, errInvalidOSPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreateServiceOrderInput{
		Cliente:         payload.ResolveCliente(),
		Parceiro:        payload.ResolveParceiro(),
		Projeto:         payload.Projeto,
		Tarefa:          payload.Tarefa,
		Observacoes:     payload.Observacoes,
		TempoTrabalhado: payload.TempoTrabalhado,
		Status:          payload.Status,
		IsUrgent:        payload.IsUrgent,
	})
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceOrder(created))
}

// ListServiceOrders returns the whole board, or one column when ?status= is
// given.
func (h *ServiceOrderHandler) ListServiceOrders(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

func (h *ServiceOrderHandler) GetServiceOrder(c *gin.Context) {
	os, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(os))
}

// UpdateServiceOrderStatus moves a card to another column.
func (h *ServiceOrderHandler) UpdateServiceOrderStatus(c *gin.Context) {
	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOSPayload.HTTPStatus, errInvalidOSPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.ChangeStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(updated))
}

// ToggleServiceOrderUrgency flips the urgency flag.
func (h *ServiceOrderHandler) ToggleServiceOrderUrgency(c *gin.Context) {
	updated, err := h.usecase.ToggleUrgency(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(updated))
}

// DuplicateServiceOrder clones an OS into a new card with a fresh numero.
func (h *ServiceOrderHandler) DuplicateServiceOrder(c *gin.Context) {
	created, err := h.usecase.Duplicate(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceOrder(created))
}

func mapServiceOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOSID),
		errors.Is(err, usecase.ErrInvalidCliente),
		errors.Is(err, usecase.ErrInvalidProjeto),
		errors.Is(err, usecase.ErrInvalidTarefa),
		errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOSNotFound):
		return pkg.NewDomainErrorSimple("OS_NOT_FOUND", "Service order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

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
	errInvalidPartyPayload = pkg.NewDomainErrorSimple("INVALID_PARTY_INPUT", "Invalid payload", http.StatusBadRequest)
)

// PartyHandler handles the Cliente/Parceiro management screens. One instance
// is mounted per kind; the handler itself is kind-agnostic.

type PartyHandler struct {
	usecase usecase.IPartyUseCase
}

func NewPartyHandler(uc usecase.IPartyUseCase) *PartyHandler {
	return &PartyHandler{usecase: uc}
}

// CreateParty resolves-or-creates a row by name, so repeated submissions of
// the same name return the existing entity.
func (h *PartyHandler) CreateParty(c *gin.Context) {
	var payload request.PartyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPartyPayload.HTTPStatus, errInvalidPartyPayload.ToHTTPError())
		return
	}

	party, err := h.usecase.FindOrCreate(c.Request.Context(), payload.ResolveNome())
	if err != nil {
		appErr := mapPartyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromParty(party))
}

func (h *PartyHandler) ListParties(c *gin.Context) {
	parties, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapPartyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromParties(parties))
}

func (h *PartyHandler) DeleteParty(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapPartyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapPartyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPartyID), errors.Is(err, usecase.ErrInvalidPartyName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPartyNotFound):
		return pkg.NewDomainErrorSimple("PARTY_NOT_FOUND", "Entity not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartyInUse):
		return pkg.NewDomainErrorSimple("PARTY_IN_USE", "Entity is referenced by a service order", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

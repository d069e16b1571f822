package handlers

import (
	"net/http"

	response "github.com/rafacrt/studio-sub000/internal/adapter/http/dto/response"
	"github.com/rafacrt/studio-sub000/internal/usecase"
	"github.com/rafacrt/studio-sub000/pkg"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the production-time report screen.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) GetServiceOrderReport(c *gin.Context) {
	report, err := h.usecase.BuildServiceOrderReport(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrderReport(report))
}

package controller

import (
	"net/http"

	"backoffice-api/internal/service"

	"github.com/labstack/echo"
)

type reportRoutesHandler struct {
	reportService service.Report
}

func newReportRoutesHandler(outer *echo.Group, services *service.Services) *reportRoutesHandler {
	h := &reportRoutesHandler{reportService: services.Report}

	outer.GET("/reports/profitability", h.GetProfitability)
	outer.GET("/reports/profitability.pdf", h.GetProfitabilityPDF)

	return h
}

// GET /reports/profitability
func (h *reportRoutesHandler) GetProfitability(c echo.Context) error {
	report, err := h.reportService.GetProfitabilityReport(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusOK, report); e != nil {
		return e
	}

	return nil
}

// GET /reports/profitability.pdf
func (h *reportRoutesHandler) GetProfitabilityPDF(c echo.Context) error {
	document, err := h.reportService.GetProfitabilityReportPDF(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="profitability.pdf"`)
	if e := c.Blob(http.StatusOK, "application/pdf", document); e != nil {
		return e
	}

	return nil
}

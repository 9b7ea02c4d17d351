package controller

import (
	"backoffice-api/internal/service"

	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services, allowOrigins []string) {
	handler.Use(middleware.Recover())
	handler.Use(middleware.Logger())
	handler.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: allowOrigins}))

	validate := newValidator()
	api := handler.Group("/api")
	newDiagnosticRoutesHandler(api, services)
	newClientRoutesHandler(api, services, validate)
	newContractRoutesHandler(api, services, validate)
	newConsultantRoutesHandler(api, services, validate)
	newServiceRecordRoutesHandler(api, services, validate)
	newLogbookRoutesHandler(api, services, validate)
	newAnnouncementRoutesHandler(api, services, validate)
	newReportRoutesHandler(api, services)
}

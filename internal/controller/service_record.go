package controller

import (
	"net/http"

	"backoffice-api/internal/entity"
	"backoffice-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type serviceRecordRoutesHandler struct {
	serviceRecordService service.ServiceRecord
	validate             *validator.Validate
}

func newServiceRecordRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *serviceRecordRoutesHandler {
	h := &serviceRecordRoutesHandler{serviceRecordService: services.ServiceRecord, validate: v}

	outer.GET("/services", h.GetServices)
	outer.POST("/services", h.PostService)
	outer.GET("/services/:serviceId", h.GetService)
	outer.PUT("/services/:serviceId", h.PutService)
	outer.PATCH("/services/:serviceId", h.PatchService)
	outer.DELETE("/services/:serviceId", h.DeleteService)

	return h
}

type costsInput struct {
	Travel        float64 `json:"travel" validate:"gte=0"`
	Accommodation float64 `json:"accommodation" validate:"gte=0"`
	Food          float64 `json:"food" validate:"gte=0"`
	Transport     float64 `json:"transport" validate:"gte=0"`
}

func (in costsInput) toEntity() entity.Costs {
	return entity.Costs{Travel: in.Travel, Accommodation: in.Accommodation, Food: in.Food, Transport: in.Transport}
}

type getServicesInput struct {
	Limit  int    `query:"limit" validate:"gte=0,lte=100"`
	Offset int    `query:"offset" validate:"gte=0"`
	Status string `query:"status" validate:"omitempty,oneof=InProgress Pending Completed Cancelled"`
}

// GET /services
func (h *serviceRecordRoutesHandler) GetServices(c echo.Context) error {
	var input = getServicesInput{Limit: defaultLimit, Offset: defaultOffset}
	if err := bindInput(c, h.validate, &input); err != nil {
		return err
	}

	pg := entity.NewPaginationInput(input.Limit, input.Offset)
	records, err := h.serviceRecordService.GetServices(c.Request().Context(), input.Status, pg)
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusOK, records); e != nil {
		return e
	}

	return nil
}

type postServiceInput struct {
	ClientName  string     `json:"clientName" validate:"required,max=200"`
	ContractId  string     `json:"contractId" validate:"max=100"`
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	Status      string     `json:"status" validate:"omitempty,oneof=InProgress Pending Completed Cancelled"`
	Costs       costsInput `json:"costs"`
}

// POST /services
func (h *serviceRecordRoutesHandler) PostService(c echo.Context) error {
	var input postServiceInput
	if err := bindInput(c, h.validate, &input); err != nil {
		return err
	}

	model := &entity.CreateServiceInput{
		ClientName: input.ClientName, ContractId: input.ContractId, Title: input.Title,
		Description: input.Description, Status: input.Status, Costs: input.Costs.toEntity(),
	}

	record, err := h.serviceRecordService.CreateService(c.Request().Context(), model)
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusCreated, record); e != nil {
		return e
	}

	return nil
}

// GET /services/:serviceId
func (h *serviceRecordRoutesHandler) GetService(c echo.Context) error {
	record, err := h.serviceRecordService.GetServiceById(c.Request().Context(), c.Param("serviceId"))
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusOK, record); e != nil {
		return e
	}

	return nil
}

// PUT /services/:serviceId
func (h *serviceRecordRoutesHandler) PutService(c echo.Context) error {
	var input postServiceInput
	if err := bindInput(c, h.validate, &input); err != nil {
		return err
	}

	costs := input.Costs.toEntity()
	model := &entity.UpdateServiceInput{
		ClientName: &input.ClientName, ContractId: &input.ContractId, Title: &input.Title,
		Description: &input.Description, Costs: &costs,
	}
	if input.Status != "" {
		model.Status = &input.Status
	}

	return h.updateService(c, model)
}

type patchServiceInput struct {
	ClientName  *string     `json:"clientName" validate:"omitempty,min=1,max=200"`
	ContractId  *string     `json:"contractId" validate:"omitempty,max=100"`
	Title       *string     `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string     `json:"description" validate:"omitempty,max=2000"`
	Status      *string     `json:"status" validate:"omitempty,oneof=InProgress Pending Completed Cancelled"`
	Costs       *costsInput `json:"costs" validate:"omitempty"`
}

// PATCH /services/:serviceId
func (h *serviceRecordRoutesHandler) PatchService(c echo.Context) error {
	var input patchServiceInput
	if err := bindInput(c, h.validate, &input); err != nil {
		return err
	}

	model := &entity.UpdateServiceInput{
		ClientName: input.ClientName, ContractId: input.ContractId, Title: input.Title,
		Description: input.Description, Status: input.Status,
	}
	if input.Costs != nil {
		costs := input.Costs.toEntity()
		model.Costs = &costs
	}

	return h.updateService(c, model)
}

func (h *serviceRecordRoutesHandler) updateService(c echo.Context, model *entity.UpdateServiceInput) error {
	record, err := h.serviceRecordService.UpdateServiceById(c.Request().Context(), c.Param("serviceId"), model)
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusOK, record); e != nil {
		return e
	}

	return nil
}

// DELETE /services/:serviceId
func (h *serviceRecordRoutesHandler) DeleteService(c echo.Context) error {
	if err := h.serviceRecordService.DeleteServiceById(c.Request().Context(), c.Param("serviceId")); err != nil {
		return writeServiceError(c, err)
	}
	if e := c.NoContent(http.StatusNoContent); e != nil {
		return e
	}

	return nil
}

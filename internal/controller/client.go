package controller

import (
	"net/http"

	"backoffice-api/internal/entity"
	"backoffice-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type clientRoutesHandler struct {
	clientService service.Client
	validate      *validator.Validate
}

func newClientRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *clientRoutesHandler {
	h := &clientRoutesHandler{clientService: services.Client, validate: v}

	outer.GET("/clients", h.GetClients)
	outer.POST("/clients", h.PostClient)
	outer.GET("/clients/:clientId", h.GetClient)
	outer.PUT("/clients/:clientId", h.PutClient)
	outer.PATCH("/clients/:clientId", h.PatchClient)
	outer.DELETE("/clients/:clientId", h.DeleteClient)

	return h
}

type addressInput struct {
	Street string `json:"street" validate:"max=200"`
	City   string `json:"city" validate:"max=100"`
	State  string `json:"state" validate:"max=100"`
	Zip    string `json:"zip" validate:"max=20"`
}

func (a addressInput) toEntity() entity.Address {
	return entity.Address{Street: a.Street, City: a.City, State: a.State, Zip: a.Zip}
}

// GET /clients
func (h *clientRoutesHandler) GetClients(c echo.Context) error {
	var input = newListInput()
	if err := bindInput(c, h.validate, &input); err != nil {
		return err
	}

	pg := entity.NewPaginationInput(input.Limit, input.Offset)
	clients, err := h.clientService.GetClients(c.Request().Context(), pg)
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusOK, clients); e != nil {
		return e
	}

	return nil
}

type postClientInput struct {
	CompanyName      string       `json:"companyName" validate:"required,max=200"`
	ContactName      string       `json:"contactName" validate:"max=200"`
	Email            string       `json:"email" validate:"omitempty,email"`
	Phone            string       `json:"phone" validate:"max=50"`
	Status           string       `json:"status" validate:"omitempty,oneof=Active Inactive"`
	RegistrationDate string       `json:"registrationDate" validate:"omitempty,datetime=2006-01-02"`
	Type             string       `json:"type" validate:"required,oneof=Private Public"`
	TaxId            string       `json:"taxId" validate:"max=50"`
	Address          addressInput `json:"address"`
}

// POST /clients
func (h *clientRoutesHandler) PostClient(c echo.Context) error {
	var input postClientInput
	if err := bindInput(c, h.validate, &input); err != nil {
		return err
	}

	model := &entity.CreateClientInput{
		CompanyName: input.CompanyName, ContactName: input.ContactName, Email: input.Email,
		Phone: input.Phone, Status: input.Status, RegistrationDate: input.RegistrationDate,
		Type: input.Type, TaxId: input.TaxId, Address: input.Address.toEntity(),
	}

	client, err := h.clientService.CreateClient(c.Request().Context(), model)
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusCreated, client); e != nil {
		return e
	}

	return nil
}

// GET /clients/:clientId
func (h *clientRoutesHandler) GetClient(c echo.Context) error {
	client, err := h.clientService.GetClientById(c.Request().Context(), c.Param("clientId"))
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusOK, client); e != nil {
		return e
	}

	return nil
}

// PUT /clients/:clientId replaces every field. Status and registrationDate
// keep their stored value when left empty.
func (h *clientRoutesHandler) PutClient(c echo.Context) error {
	var input postClientInput
	if err := bindInput(c, h.validate, &input); err != nil {
		return err
	}

	address := input.Address.toEntity()
	model := &entity.UpdateClientInput{
		CompanyName: &input.CompanyName, ContactName: &input.ContactName, Email: &input.Email,
		Phone: &input.Phone, Type: &input.Type, TaxId: &input.TaxId, Address: &address,
	}
	if input.Status != "" {
		model.Status = &input.Status
	}
	if input.RegistrationDate != "" {
		model.RegistrationDate = &input.RegistrationDate
	}

	return h.updateClient(c, model)
}

type patchClientInput struct {
	CompanyName      *string       `json:"companyName" validate:"omitempty,min=1,max=200"`
	ContactName      *string       `json:"contactName" validate:"omitempty,max=200"`
	Email            *string       `json:"email" validate:"omitempty,email"`
	Phone            *string       `json:"phone" validate:"omitempty,max=50"`
	Status           *string       `json:"status" validate:"omitempty,oneof=Active Inactive"`
	RegistrationDate *string       `json:"registrationDate" validate:"omitempty,datetime=2006-01-02"`
	Type             *string       `json:"type" validate:"omitempty,oneof=Private Public"`
	TaxId            *string       `json:"taxId" validate:"omitempty,max=50"`
	Address          *addressInput `json:"address" validate:"omitempty"`
}

// PATCH /clients/:clientId
func (h *clientRoutesHandler) PatchClient(c echo.Context) error {
	var input patchClientInput
	if err := bindInput(c, h.validate, &input); err != nil {
		return err
	}

	model := &entity.UpdateClientInput{
		CompanyName: input.CompanyName, ContactName: input.ContactName, Email: input.Email,
		Phone: input.Phone, Status: input.Status, RegistrationDate: input.RegistrationDate,
		Type: input.Type, TaxId: input.TaxId,
	}
	if input.Address != nil {
		address := input.Address.toEntity()
		model.Address = &address
	}

	return h.updateClient(c, model)
}

func (h *clientRoutesHandler) updateClient(c echo.Context, model *entity.UpdateClientInput) error {
	client, err := h.clientService.UpdateClientById(c.Request().Context(), c.Param("clientId"), model)
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusOK, client); e != nil {
		return e
	}

	return nil
}

// DELETE /clients/:clientId
func (h *clientRoutesHandler) DeleteClient(c echo.Context) error {
	if err := h.clientService.DeleteClientById(c.Request().Context(), c.Param("clientId")); err != nil {
		return writeServiceError(c, err)
	}
	if e := c.NoContent(http.StatusNoContent); e != nil {
		return e
	}

	return nil
}

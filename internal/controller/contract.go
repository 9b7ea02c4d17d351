package controller

import (
	"net/http"

	"backoffice-api/internal/entity"
	"backoffice-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type contractRoutesHandler struct {
	contractService service.Contract
	validate        *validator.Validate
}

func newContractRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *contractRoutesHandler {
	h := &contractRoutesHandler{contractService: services.Contract, validate: v}

	outer.GET("/contracts", h.GetContracts)
	outer.POST("/contracts", h.PostContract)
	outer.GET("/contracts/:contractId", h.GetContract)
	outer.PUT("/contracts/:contractId", h.PutContract)
	outer.PATCH("/contracts/:contractId", h.PatchContract)
	outer.DELETE("/contracts/:contractId", h.DeleteContract)

	return h
}

type responsibleContactInput struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"max=50"`
	Whatsapp string `json:"whatsapp" validate:"max=50"`
}

func (r responsibleContactInput) toEntity() entity.ResponsibleContact {
	return entity.ResponsibleContact{Name: r.Name, Email: r.Email, Phone: r.Phone, Whatsapp: r.Whatsapp}
}

type getContractsInput struct {
	Limit    int    `query:"limit" validate:"gte=0,lte=100"`
	Offset   int    `query:"offset" validate:"gte=0"`
	ClientId string `query:"clientId" validate:"max=100"`
}

// GET /contracts
func (h *contractRoutesHandler) GetContracts(c echo.Context) error {
	var input = getContractsInput{Limit: defaultLimit, Offset: defaultOffset}
	if err := bindInput(c, h.validate, &input); err != nil {
		return err
	}

	pg := entity.NewPaginationInput(input.Limit, input.Offset)
	contracts, err := h.contractService.GetContracts(c.Request().Context(), input.ClientId, pg)
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusOK, contracts); e != nil {
		return e
	}

	return nil
}

type postContractInput struct {
	ClientId            string                  `json:"clientId" validate:"required,max=100"`
	Title               string                  `json:"title" validate:"required,max=200"`
	StartDate           string                  `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate             string                  `json:"endDate" validate:"required,datetime=2006-01-02"`
	Manager             string                  `json:"manager" validate:"max=200"`
	Status              string                  `json:"status" validate:"omitempty,oneof=Negotiating AwaitingSignature Active Expired Rejected Pending Completed Inactive"`
	AnnualValue         float64                 `json:"annualValue" validate:"gte=0"`
	PaymentMethod       string                  `json:"paymentMethod" validate:"required,oneof=Monthly OneTime Installments"`
	MonthlyValue        *float64                `json:"monthlyValue" validate:"omitempty,gte=0"`
	HiringType          string                  `json:"hiringType" validate:"required,oneof=Private PublicBid BidExemption"`
	ServicesDescription string                  `json:"servicesDescription" validate:"max=2000"`
	ResponsibleContact  responsibleContactInput `json:"responsibleContact"`
}

// POST /contracts
func (h *contractRoutesHandler) PostContract(c echo.Context) error {
	var input postContractInput
	if err := bindInput(c, h.validate, &input); err != nil {
		return err
	}

	model := &entity.CreateContractInput{
		ClientId: input.ClientId, Title: input.Title, StartDate: input.StartDate, EndDate: input.EndDate,
		Manager: input.Manager, Status: input.Status, AnnualValue: input.AnnualValue,
		PaymentMethod: input.PaymentMethod, MonthlyValue: input.MonthlyValue, HiringType: input.HiringType,
		ServicesDescription: input.ServicesDescription, ResponsibleContact: input.ResponsibleContact.toEntity(),
	}

	contract, err := h.contractService.CreateContract(c.Request().Context(), model)
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusCreated, contract); e != nil {
		return e
	}

	return nil
}

// GET /contracts/:contractId
func (h *contractRoutesHandler) GetContract(c echo.Context) error {
	contract, err := h.contractService.GetContractById(c.Request().Context(), c.Param("contractId"))
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusOK, contract); e != nil {
		return e
	}

	return nil
}

// PUT /contracts/:contractId replaces every field; an empty status keeps the
// stored one.
func (h *contractRoutesHandler) PutContract(c echo.Context) error {
	var input postContractInput
	if err := bindInput(c, h.validate, &input); err != nil {
		return err
	}

	contact := input.ResponsibleContact.toEntity()
	model := &entity.UpdateContractInput{
		ClientId: &input.ClientId, Title: &input.Title, StartDate: &input.StartDate, EndDate: &input.EndDate,
		Manager: &input.Manager, AnnualValue: &input.AnnualValue, PaymentMethod: &input.PaymentMethod,
		MonthlyValue: input.MonthlyValue, HiringType: &input.HiringType,
		ServicesDescription: &input.ServicesDescription, ResponsibleContact: &contact,
	}
	if input.Status != "" {
		model.Status = &input.Status
	}

	return h.updateContract(c, model)
}

type patchContractInput struct {
	ClientId            *string                  `json:"clientId" validate:"omitempty,min=1,max=100"`
	Title               *string                  `json:"title" validate:"omitempty,min=1,max=200"`
	StartDate           *string                  `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate             *string                  `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Manager             *string                  `json:"manager" validate:"omitempty,max=200"`
	Status              *string                  `json:"status" validate:"omitempty,oneof=Negotiating AwaitingSignature Active Expired Rejected Pending Completed Inactive"`
	AnnualValue         *float64                 `json:"annualValue" validate:"omitempty,gte=0"`
	PaymentMethod       *string                  `json:"paymentMethod" validate:"omitempty,oneof=Monthly OneTime Installments"`
	MonthlyValue        *float64                 `json:"monthlyValue" validate:"omitempty,gte=0"`
	HiringType          *string                  `json:"hiringType" validate:"omitempty,oneof=Private PublicBid BidExemption"`
	ServicesDescription *string                  `json:"servicesDescription" validate:"omitempty,max=2000"`
	ResponsibleContact  *responsibleContactInput `json:"responsibleContact" validate:"omitempty"`
}

// PATCH /contracts/:contractId
func (h *contractRoutesHandler) PatchContract(c echo.Context) error {
	var input patchContractInput
	if err := bindInput(c, h.validate, &input); err != nil {
		return err
	}

	model := &entity.UpdateContractInput{
		ClientId: input.ClientId, Title: input.Title, StartDate: input.StartDate, EndDate: input.EndDate,
		Manager: input.Manager, Status: input.Status, AnnualValue: input.AnnualValue,
		PaymentMethod: input.PaymentMethod, MonthlyValue: input.MonthlyValue, HiringType: input.HiringType,
		ServicesDescription: input.ServicesDescription,
	}
	if input.ResponsibleContact != nil {
		contact := input.ResponsibleContact.toEntity()
		model.ResponsibleContact = &contact
	}

	return h.updateContract(c, model)
}

func (h *contractRoutesHandler) updateContract(c echo.Context, model *entity.UpdateContractInput) error {
	contract, err := h.contractService.UpdateContractById(c.Request().Context(), c.Param("contractId"), model)
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusOK, contract); e != nil {
		return e
	}

	return nil
}

// DELETE /contracts/:contractId
func (h *contractRoutesHandler) DeleteContract(c echo.Context) error {
	if err := h.contractService.DeleteContractById(c.Request().Context(), c.Param("contractId")); err != nil {
		return writeServiceError(c, err)
	}
	if e := c.NoContent(http.StatusNoContent); e != nil {
		return e
	}

	return nil
}

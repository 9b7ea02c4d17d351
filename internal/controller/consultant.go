package controller

import (
	"net/http"

	"backoffice-api/internal/entity"
	"backoffice-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type consultantRoutesHandler struct {
	consultantService service.Consultant
	validate          *validator.Validate
}

func newConsultantRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *consultantRoutesHandler {
	h := &consultantRoutesHandler{consultantService: services.Consultant, validate: v}

	outer.GET("/consultants", h.GetConsultants)
	outer.POST("/consultants", h.PostConsultant)
	outer.GET("/consultants/:consultantId", h.GetConsultant)
	outer.PUT("/consultants/:consultantId", h.PutConsultant)
	outer.PATCH("/consultants/:consultantId", h.PatchConsultant)
	outer.DELETE("/consultants/:consultantId", h.DeleteConsultant)

	return h
}

type paymentDetailsInput struct {
	MonthlySalary *float64 `json:"monthlySalary" validate:"omitempty,gte=0"`
	HourlyRate    *float64 `json:"hourlyRate" validate:"omitempty,gte=0"`
}

func (p paymentDetailsInput) toEntity() entity.PaymentDetails {
	return entity.PaymentDetails{MonthlySalary: p.MonthlySalary, HourlyRate: p.HourlyRate}
}

// GET /consultants
func (h *consultantRoutesHandler) GetConsultants(c echo.Context) error {
	var input = newListInput()
	if err := bindInput(c, h.validate, &input); err != nil {
		return err
	}

	pg := entity.NewPaginationInput(input.Limit, input.Offset)
	consultants, err := h.consultantService.GetConsultants(c.Request().Context(), pg)
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusOK, consultants); e != nil {
		return e
	}

	return nil
}

type postConsultantInput struct {
	Name           string              `json:"name" validate:"required,max=200"`
	Email          string              `json:"email" validate:"omitempty,email"`
	Phone          string              `json:"phone" validate:"max=50"`
	TaxId          string              `json:"taxId" validate:"max=50"`
	BirthDate      string              `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Role           string              `json:"role" validate:"max=100"`
	Address        addressInput        `json:"address"`
	EmploymentType string              `json:"employmentType" validate:"required,oneof=Fixed OnDemand"`
	PaymentDetails paymentDetailsInput `json:"paymentDetails"`
	ContractType   string              `json:"contractType" validate:"required,oneof=Contract Other"`
}

func (in postConsultantInput) toCreateModel() *entity.CreateConsultantInput {
	return &entity.CreateConsultantInput{
		Name: in.Name, Email: in.Email, Phone: in.Phone, TaxId: in.TaxId, BirthDate: in.BirthDate,
		Role: in.Role, Address: in.Address.toEntity(), EmploymentType: in.EmploymentType,
		PaymentDetails: in.PaymentDetails.toEntity(), ContractType: in.ContractType,
	}
}

// POST /consultants
func (h *consultantRoutesHandler) PostConsultant(c echo.Context) error {
	var input postConsultantInput
	if err := bindInput(c, h.validate, &input); err != nil {
		return err
	}

	consultant, err := h.consultantService.CreateConsultant(c.Request().Context(), input.toCreateModel())
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusCreated, consultant); e != nil {
		return e
	}

	return nil
}

// GET /consultants/:consultantId
func (h *consultantRoutesHandler) GetConsultant(c echo.Context) error {
	consultant, err := h.consultantService.GetConsultantById(c.Request().Context(), c.Param("consultantId"))
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusOK, consultant); e != nil {
		return e
	}

	return nil
}

// PUT /consultants/:consultantId
func (h *consultantRoutesHandler) PutConsultant(c echo.Context) error {
	var input postConsultantInput
	if err := bindInput(c, h.validate, &input); err != nil {
		return err
	}

	m := input.toCreateModel()
	model := &entity.UpdateConsultantInput{
		Name: &m.Name, Email: &m.Email, Phone: &m.Phone, TaxId: &m.TaxId, BirthDate: &m.BirthDate,
		Role: &m.Role, Address: &m.Address, EmploymentType: &m.EmploymentType,
		PaymentDetails: &m.PaymentDetails, ContractType: &m.ContractType,
	}

	return h.updateConsultant(c, model)
}

type patchConsultantInput struct {
	Name           *string              `json:"name" validate:"omitempty,min=1,max=200"`
	Email          *string              `json:"email" validate:"omitempty,email"`
	Phone          *string              `json:"phone" validate:"omitempty,max=50"`
	TaxId          *string              `json:"taxId" validate:"omitempty,max=50"`
	BirthDate      *string              `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Role           *string              `json:"role" validate:"omitempty,max=100"`
	Address        *addressInput        `json:"address" validate:"omitempty"`
	EmploymentType *string              `json:"employmentType" validate:"omitempty,oneof=Fixed OnDemand"`
	PaymentDetails *paymentDetailsInput `json:"paymentDetails" validate:"omitempty"`
	ContractType   *string              `json:"contractType" validate:"omitempty,oneof=Contract Other"`
}

// PATCH /consultants/:consultantId. Switching employmentType requires the
// matching paymentDetails in the same request.
func (h *consultantRoutesHandler) PatchConsultant(c echo.Context) error {
	var input patchConsultantInput
	if err := bindInput(c, h.validate, &input); err != nil {
		return err
	}

	model := &entity.UpdateConsultantInput{
		Name: input.Name, Email: input.Email, Phone: input.Phone, TaxId: input.TaxId,
		BirthDate: input.BirthDate, Role: input.Role, EmploymentType: input.EmploymentType,
		ContractType: input.ContractType,
	}
	if input.Address != nil {
		address := input.Address.toEntity()
		model.Address = &address
	}
	if input.PaymentDetails != nil {
		details := input.PaymentDetails.toEntity()
		model.PaymentDetails = &details
	}

	return h.updateConsultant(c, model)
}

func (h *consultantRoutesHandler) updateConsultant(c echo.Context, model *entity.UpdateConsultantInput) error {
	consultant, err := h.consultantService.UpdateConsultantById(c.Request().Context(), c.Param("consultantId"), model)
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusOK, consultant); e != nil {
		return e
	}

	return nil
}

// DELETE /consultants/:consultantId
func (h *consultantRoutesHandler) DeleteConsultant(c echo.Context) error {
	if err := h.consultantService.DeleteConsultantById(c.Request().Context(), c.Param("consultantId")); err != nil {
		return writeServiceError(c, err)
	}
	if e := c.NoContent(http.StatusNoContent); e != nil {
		return e
	}

	return nil
}

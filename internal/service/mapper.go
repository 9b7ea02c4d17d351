package service

import (
	"time"

	"backoffice-api/internal/common"
	"backoffice-api/internal/entity"
)

func newClient(in *entity.CreateClientInput, now time.Time) *entity.Client {
	c := &entity.Client{
		CompanyName:      in.CompanyName,
		ContactName:      in.ContactName,
		Email:            in.Email,
		Phone:            in.Phone,
		Status:           in.Status,
		RegistrationDate: in.RegistrationDate,
		Type:             in.Type,
		TaxId:            in.TaxId,
		Address:          in.Address,
		ContractIds:      make([]string, 0),
	}
	if c.Status == "" {
		c.Status = common.ClientActive
	}
	if c.RegistrationDate == "" {
		c.RegistrationDate = now.Format(common.DateLayout)
	}

	return c
}

func applyClientUpdate(c *entity.Client, in *entity.UpdateClientInput) {
	set(&c.CompanyName, in.CompanyName)
	set(&c.ContactName, in.ContactName)
	set(&c.Email, in.Email)
	set(&c.Phone, in.Phone)
	set(&c.Status, in.Status)
	set(&c.RegistrationDate, in.RegistrationDate)
	set(&c.Type, in.Type)
	set(&c.TaxId, in.TaxId)
	set(&c.Address, in.Address)
}

func newContract(in *entity.CreateContractInput) *entity.Contract {
	c := &entity.Contract{
		ClientId:            in.ClientId,
		Title:               in.Title,
		StartDate:           in.StartDate,
		EndDate:             in.EndDate,
		Manager:             in.Manager,
		Status:              in.Status,
		AnnualValue:         in.AnnualValue,
		PaymentMethod:       in.PaymentMethod,
		MonthlyValue:        copyFloat(in.MonthlyValue),
		HiringType:          in.HiringType,
		ServicesDescription: in.ServicesDescription,
		ResponsibleContact:  in.ResponsibleContact,
	}
	if c.Status == "" {
		c.Status = common.ContractNegotiating
	}

	return c
}

func applyContractUpdate(c *entity.Contract, in *entity.UpdateContractInput) {
	set(&c.ClientId, in.ClientId)
	set(&c.Title, in.Title)
	set(&c.StartDate, in.StartDate)
	set(&c.EndDate, in.EndDate)
	set(&c.Manager, in.Manager)
	set(&c.Status, in.Status)
	set(&c.AnnualValue, in.AnnualValue)
	set(&c.HiringType, in.HiringType)
	set(&c.ServicesDescription, in.ServicesDescription)
	set(&c.ResponsibleContact, in.ResponsibleContact)

	if in.PaymentMethod != nil {
		if *in.PaymentMethod != common.PaymentMonthly && in.MonthlyValue == nil {
			c.MonthlyValue = nil
		}
		c.PaymentMethod = *in.PaymentMethod
	}
	if in.MonthlyValue != nil {
		c.MonthlyValue = copyFloat(in.MonthlyValue)
	}
}

func newConsultant(in *entity.CreateConsultantInput) *entity.Consultant {
	return &entity.Consultant{
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		TaxId:          in.TaxId,
		BirthDate:      in.BirthDate,
		Role:           in.Role,
		Address:        in.Address,
		EmploymentType: in.EmploymentType,
		PaymentDetails: copyPaymentDetails(in.PaymentDetails),
		ContractType:   in.ContractType,
	}
}

func applyConsultantUpdate(c *entity.Consultant, in *entity.UpdateConsultantInput) {
	set(&c.Name, in.Name)
	set(&c.Email, in.Email)
	set(&c.Phone, in.Phone)
	set(&c.TaxId, in.TaxId)
	set(&c.BirthDate, in.BirthDate)
	set(&c.Role, in.Role)
	set(&c.Address, in.Address)
	set(&c.EmploymentType, in.EmploymentType)
	set(&c.ContractType, in.ContractType)
	if in.PaymentDetails != nil {
		c.PaymentDetails = copyPaymentDetails(*in.PaymentDetails)
	}
}

func newService(in *entity.CreateServiceInput) *entity.Service {
	s := &entity.Service{
		ClientName:  in.ClientName,
		ContractId:  in.ContractId,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Costs:       in.Costs,
	}
	if s.Status == "" {
		s.Status = common.ServicePending
	}

	return s
}

func applyServiceUpdate(s *entity.Service, in *entity.UpdateServiceInput) {
	set(&s.ClientName, in.ClientName)
	set(&s.ContractId, in.ContractId)
	set(&s.Title, in.Title)
	set(&s.Description, in.Description)
	set(&s.Status, in.Status)
	set(&s.Costs, in.Costs)
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f

	return &v
}

func copyPaymentDetails(p entity.PaymentDetails) entity.PaymentDetails {
	return entity.PaymentDetails{
		MonthlySalary: copyFloat(p.MonthlySalary),
		HourlyRate:    copyFloat(p.HourlyRate),
	}
}

func paginate[T any](items []T, pg *entity.PaginationInput) []T {
	start, end := pg.Bounds(len(items))

	return items[start:end]
}

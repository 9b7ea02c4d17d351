package entity

// PaymentDetails holds MonthlySalary for Fixed consultants and HourlyRate for
// OnDemand ones, never both.
type PaymentDetails struct {
	MonthlySalary *float64 `json:"monthlySalary,omitempty" yaml:"monthlySalary"`
	HourlyRate    *float64 `json:"hourlyRate,omitempty" yaml:"hourlyRate"`
}

type Consultant struct {
	Id             string         `json:"id"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	TaxId          string         `json:"taxId"`
	BirthDate      string         `json:"birthDate,omitempty"`
	Role           string         `json:"role"`
	Address        Address        `json:"address"`
	EmploymentType string         `json:"employmentType"`
	PaymentDetails PaymentDetails `json:"paymentDetails"`
	ContractType   string         `json:"contractType"`
}

// service input model
type CreateConsultantInput struct {
	Name           string         `yaml:"name"`
	Email          string         `yaml:"email"`
	Phone          string         `yaml:"phone"`
	TaxId          string         `yaml:"taxId"`
	BirthDate      string         `yaml:"birthDate"`
	Role           string         `yaml:"role"`
	Address        Address        `yaml:"address"`
	EmploymentType string         `yaml:"employmentType"`
	PaymentDetails PaymentDetails `yaml:"paymentDetails"`
	ContractType   string         `yaml:"contractType"`
}

// service input model, nil fields keep the stored value
type UpdateConsultantInput struct {
	Name           *string
	Email          *string
	Phone          *string
	TaxId          *string
	BirthDate      *string
	Role           *string
	Address        *Address
	EmploymentType *string
	PaymentDetails *PaymentDetails
	ContractType   *string
}

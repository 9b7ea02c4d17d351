package entity

type ResponsibleContact struct {
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email"`
	Phone    string `json:"phone,omitempty" yaml:"phone"`
	Whatsapp string `json:"whatsapp,omitempty" yaml:"whatsapp"`
}

type Contract struct {
	Id                  string             `json:"id"`
	ClientId            string             `json:"clientId"`
	ClientName          string             `json:"clientName"`
	Title               string             `json:"title"`
	StartDate           string             `json:"startDate"`
	EndDate             string             `json:"endDate"`
	Manager             string             `json:"manager"`
	Status              string             `json:"status"`
	AnnualValue         float64            `json:"annualValue"`
	PaymentMethod       string             `json:"paymentMethod"`
	MonthlyValue        *float64           `json:"monthlyValue,omitempty"`
	HiringType          string             `json:"hiringType"`
	ServicesDescription string             `json:"servicesDescription"`
	ResponsibleContact  ResponsibleContact `json:"responsibleContact"`
}

// service input model
type CreateContractInput struct {
	ClientId            string             `yaml:"clientId"` // given, seed files leave it empty
	Title               string             `yaml:"title"`
	StartDate           string             `yaml:"startDate"`
	EndDate             string             `yaml:"endDate"`
	Manager             string             `yaml:"manager"`
	Status              string             `yaml:"status"` // optional, "Negotiating" when empty
	AnnualValue         float64            `yaml:"annualValue"`
	PaymentMethod       string             `yaml:"paymentMethod"`
	MonthlyValue        *float64           `yaml:"monthlyValue"`
	HiringType          string             `yaml:"hiringType"`
	ServicesDescription string             `yaml:"servicesDescription"`
	ResponsibleContact  ResponsibleContact `yaml:"responsibleContact"`
	// Id sets automatically
	// ClientName is copied from the owning client
}

// service input model, nil fields keep the stored value.
// Switching PaymentMethod away from Monthly drops the stored MonthlyValue.
type UpdateContractInput struct {
	ClientId            *string
	Title               *string
	StartDate           *string
	EndDate             *string
	Manager             *string
	Status              *string
	AnnualValue         *float64
	PaymentMethod       *string
	MonthlyValue        *float64
	HiringType          *string
	ServicesDescription *string
	ResponsibleContact  *ResponsibleContact
}

package entity

type Client struct {
	Id               string   `json:"id"`
	CompanyName      string   `json:"companyName"`
	ContactName      string   `json:"contactName"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Status           string   `json:"status"`
	RegistrationDate string   `json:"registrationDate"`
	Type             string   `json:"type"`
	TaxId            string   `json:"taxId"`
	Address          Address  `json:"address"`
	ContractIds      []string `json:"contractIds"`
}

// service input model
type CreateClientInput struct {
	CompanyName      string  `yaml:"companyName"`      // given
	ContactName      string  `yaml:"contactName"`      // given
	Email            string  `yaml:"email"`            // given
	Phone            string  `yaml:"phone"`            // given
	Type             string  `yaml:"type"`             // given
	TaxId            string  `yaml:"taxId"`            // given
	Address          Address `yaml:"address"`          // given
	Status           string  `yaml:"status"`           // optional, "Active" when empty
	RegistrationDate string  `yaml:"registrationDate"` // optional, today when empty
	// Id sets automatically
	// ContractIds is maintained by contract operations
}

// service input model, nil fields keep the stored value
type UpdateClientInput struct {
	CompanyName      *string
	ContactName      *string
	Email            *string
	Phone            *string
	Status           *string
	RegistrationDate *string
	Type             *string
	TaxId            *string
	Address          *Address
}

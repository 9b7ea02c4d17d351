package entity

type Costs struct {
	Travel        float64 `json:"travel" yaml:"travel"`
	Accommodation float64 `json:"accommodation" yaml:"accommodation"`
	Food          float64 `json:"food" yaml:"food"`
	Transport     float64 `json:"transport" yaml:"transport"`
}

func (c Costs) Total() float64 {
	return c.Travel + c.Accommodation + c.Food + c.Transport
}

// Service is a piece of work delivered to a client. It points at its client
// by display name; ContractId, when set, names the contract explicitly.
type Service struct {
	Id          string `json:"id"`
	ClientName  string `json:"clientName"`
	ContractId  string `json:"contractId,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Costs       Costs  `json:"costs"`
}

// service input model
type CreateServiceInput struct {
	ClientName  string `yaml:"clientName"`
	ContractId  string `yaml:"contractId"` // optional
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Status      string `yaml:"status"` // optional, "Pending" when empty
	Costs       Costs  `yaml:"costs"`  // missing costs are 0
}

// service input model, nil fields keep the stored value
type UpdateServiceInput struct {
	ClientName  *string
	ContractId  *string
	Title       *string
	Description *string
	Status      *string
	Costs       *Costs
}

package entity

// ReportRow carries the financial figures of one service.
type ReportRow struct {
	ServiceId    string  `json:"serviceId"`
	Title        string  `json:"title"`
	ClientName   string  `json:"clientName"`
	Status       string  `json:"status"`
	ContractId   string  `json:"contractId,omitempty"` // matched contract, empty when none
	Revenue      float64 `json:"revenue"`
	Costs        float64 `json:"costs"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profitMargin"`
}

// ReportSummary has nil Most/LeastProfitable when there is no data.
type ReportSummary struct {
	MostProfitable  *ReportRow `json:"mostProfitable"`
	LeastProfitable *ReportRow `json:"leastProfitable"`
	TotalProfit     float64    `json:"totalProfit"`
	CompletedCount  int        `json:"completedCount"`
	ServiceCount    int        `json:"serviceCount"`
}

func (s ReportSummary) HasData() bool {
	return s.ServiceCount > 0
}

type Report struct {
	Rows    []ReportRow   `json:"rows"`
	Summary ReportSummary `json:"summary"`
}

package service

import (
	"context"
	"time"

	"backoffice-api/internal/common"
	"backoffice-api/internal/entity"
	"backoffice-api/internal/repo"
)

// GenerateReport joins every service to a contract and computes its revenue,
// costs, profit and margin.
//
// A service whose ContractId names a contract in the list is joined to it.
// Otherwise it is joined to the first contract, in list order, whose
// ClientName is exactly the service's ClientName. Unmatched services earn
// nothing. Most and least profitable keep the first service reaching the
// extreme; both are nil when there are no services.
func GenerateReport(services []entity.Service, contracts []entity.Contract) *entity.Report {
	byId := make(map[string]*entity.Contract, len(contracts))
	byName := make(map[string]*entity.Contract, len(contracts))
	for i := range contracts {
		c := &contracts[i]
		byId[c.Id] = c
		if _, ok := byName[c.ClientName]; !ok {
			byName[c.ClientName] = c
		}
	}

	report := &entity.Report{Rows: make([]entity.ReportRow, 0, len(services))}
	for _, s := range services {
		contract, ok := byId[s.ContractId]
		if s.ContractId == "" || !ok {
			contract = byName[s.ClientName]
		}
		report.Rows = append(report.Rows, reportRow(s, contract))
	}

	summary := &report.Summary
	summary.ServiceCount = len(report.Rows)
	for i := range report.Rows {
		row := &report.Rows[i]
		summary.TotalProfit += row.Profit
		if row.Status == common.ServiceCompleted {
			summary.CompletedCount++
		}
		if summary.MostProfitable == nil || row.Profit > summary.MostProfitable.Profit {
			summary.MostProfitable = row
		}
		if summary.LeastProfitable == nil || row.Profit < summary.LeastProfitable.Profit {
			summary.LeastProfitable = row
		}
	}

	// detach the summary from the rows slice
	if summary.MostProfitable != nil {
		most, least := *summary.MostProfitable, *summary.LeastProfitable
		summary.MostProfitable, summary.LeastProfitable = &most, &least
	}

	return report
}

func reportRow(s entity.Service, contract *entity.Contract) entity.ReportRow {
	row := entity.ReportRow{
		ServiceId:  s.Id,
		Title:      s.Title,
		ClientName: s.ClientName,
		Status:     s.Status,
		Costs:      s.Costs.Total(),
	}
	if contract != nil {
		row.ContractId = contract.Id
		row.Revenue = contract.AnnualValue
	}

	row.Profit = row.Revenue - row.Costs
	if row.Revenue > 0 {
		row.ProfitMargin = row.Profit / row.Revenue * 100
	}

	return row
}

// ReportRenderer turns a report into a printable document.
type ReportRenderer interface {
	Render(report *entity.Report, generatedAt time.Time) ([]byte, error)
}

type ReportService struct {
	tx           repo.Transactor
	serviceRepo  repo.Service
	contractRepo repo.Contract
	renderer     ReportRenderer
	now          func() time.Time
}

func NewReportService(repos *repo.Repositories, renderer ReportRenderer, now func() time.Time) *ReportService {
	return &ReportService{
		tx:           repos.Transactor,
		serviceRepo:  repos.Service,
		contractRepo: repos.Contract,
		renderer:     renderer,
		now:          now,
	}
}

// GetProfitabilityReport runs GenerateReport over one consistent view of the
// service and contract stores.
func (s *ReportService) GetProfitabilityReport(ctx context.Context) (*entity.Report, error) {
	var services []entity.Service
	var contracts []entity.Contract
	err := s.tx.View(ctx, func(ctx context.Context) error {
		var err error
		if services, err = s.serviceRepo.GetServices(ctx); err != nil {
			return err
		}
		contracts, err = s.contractRepo.GetContracts(ctx)

		return err
	})
	if err != nil {
		return nil, err
	}

	return GenerateReport(services, contracts), nil
}

func (s *ReportService) GetProfitabilityReportPDF(ctx context.Context) ([]byte, error) {
	report, err := s.GetProfitabilityReport(ctx)
	if err != nil {
		return nil, err
	}

	return s.renderer.Render(report, s.now())
}

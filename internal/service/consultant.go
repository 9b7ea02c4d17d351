package service

import (
	"context"
	"errors"

	"backoffice-api/internal/common"
	"backoffice-api/internal/entity"
	"backoffice-api/internal/repo"
	"backoffice-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

type ConsultantService struct {
	tx             repo.Transactor
	consultantRepo repo.Consultant
}

func NewConsultantService(repos *repo.Repositories) *ConsultantService {
	return &ConsultantService{
		tx:             repos.Transactor,
		consultantRepo: repos.Consultant,
	}
}

func validateConsultant(c *entity.Consultant) error {
	if err := firstError(
		requireText("name", c.Name),
		requireOneOf("employmentType", c.EmploymentType, common.EmploymentTypes),
		requireOneOf("contractType", c.ContractType, common.ContractTypes),
		optionalDate("birthDate", c.BirthDate),
	); err != nil {
		return err
	}

	pd := c.PaymentDetails
	switch c.EmploymentType {
	case common.EmploymentFixed:
		if pd.MonthlySalary == nil || pd.HourlyRate != nil {
			return invalid("paymentDetails", "Fixed consultants have monthlySalary only")
		}

		return requireNonNegative("paymentDetails.monthlySalary", *pd.MonthlySalary)
	default:
		if pd.HourlyRate == nil || pd.MonthlySalary != nil {
			return invalid("paymentDetails", "OnDemand consultants have hourlyRate only")
		}

		return requireNonNegative("paymentDetails.hourlyRate", *pd.HourlyRate)
	}
}

func (s *ConsultantService) CreateConsultant(ctx context.Context, input *entity.CreateConsultantInput) (*entity.Consultant, error) {
	consultant := newConsultant(input)
	if err := validateConsultant(consultant); err != nil {
		return nil, err
	}

	consultant.Id = uuid.NewString()
	if err := s.consultantRepo.CreateConsultant(ctx, consultant); err != nil {
		return nil, err
	}

	return consultant, nil
}

func (s *ConsultantService) GetConsultantById(ctx context.Context, id string) (*entity.Consultant, error) {
	consultant, err := s.consultantRepo.GetConsultantById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrConsultantNotFound
		}

		return nil, err
	}

	return consultant, nil
}

func (s *ConsultantService) GetConsultants(ctx context.Context, pg *entity.PaginationInput) ([]entity.Consultant, error) {
	consultants, err := s.consultantRepo.GetConsultants(ctx)
	if err != nil {
		return nil, err
	}

	return paginate(consultants, pg), nil
}

func (s *ConsultantService) UpdateConsultantById(ctx context.Context, id string, input *entity.UpdateConsultantInput) (*entity.Consultant, error) {
	var consultant *entity.Consultant
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		consultant, err = s.GetConsultantById(ctx, id)
		if err != nil {
			return err
		}

		applyConsultantUpdate(consultant, input)
		if err := validateConsultant(consultant); err != nil {
			return err
		}

		return s.consultantRepo.UpdateConsultant(ctx, consultant)
	})
	if err != nil {
		return nil, err
	}

	return consultant, nil
}

func (s *ConsultantService) DeleteConsultantById(ctx context.Context, id string) error {
	err := s.consultantRepo.DeleteConsultantById(ctx, id)
	if errors.Is(err, repo_errors.ErrNotFound) {
		return ErrConsultantNotFound
	}

	return err
}

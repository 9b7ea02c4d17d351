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

// ServiceRecordService manages the services delivered to clients. The name
// avoids a clash with the package's own notion of a service.
type ServiceRecordService struct {
	tx           repo.Transactor
	serviceRepo  repo.Service
	contractRepo repo.Contract
}

func NewServiceRecordService(repos *repo.Repositories) *ServiceRecordService {
	return &ServiceRecordService{
		tx:           repos.Transactor,
		serviceRepo:  repos.Service,
		contractRepo: repos.Contract,
	}
}

func validateService(s *entity.Service) error {
	return firstError(
		requireText("title", s.Title),
		requireText("clientName", s.ClientName),
		requireOneOf("status", s.Status, common.ServiceStatuses),
		requireNonNegative("costs.travel", s.Costs.Travel),
		requireNonNegative("costs.accommodation", s.Costs.Accommodation),
		requireNonNegative("costs.food", s.Costs.Food),
		requireNonNegative("costs.transport", s.Costs.Transport),
	)
}

// checkContract fails with ErrServiceContractNotFound when a non-empty
// ContractId names no contract.
func (s *ServiceRecordService) checkContract(ctx context.Context, contractId string) error {
	if contractId == "" {
		return nil
	}

	_, err := s.contractRepo.GetContractById(ctx, contractId)
	if errors.Is(err, repo_errors.ErrNotFound) {
		return ErrServiceContractNotFound
	}

	return err
}

func (s *ServiceRecordService) CreateService(ctx context.Context, input *entity.CreateServiceInput) (*entity.Service, error) {
	record := newService(input)
	if err := validateService(record); err != nil {
		return nil, err
	}

	record.Id = uuid.NewString()
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.checkContract(ctx, record.ContractId); err != nil {
			return err
		}

		return s.serviceRepo.CreateService(ctx, record)
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (s *ServiceRecordService) GetServiceById(ctx context.Context, id string) (*entity.Service, error) {
	record, err := s.serviceRepo.GetServiceById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrServiceNotFound
		}

		return nil, err
	}

	return record, nil
}

// GetServices lists every service, or only the ones in status when it is set.
func (s *ServiceRecordService) GetServices(ctx context.Context, status string, pg *entity.PaginationInput) ([]entity.Service, error) {
	var records []entity.Service
	var err error
	if status != "" {
		if err := requireOneOf("status", status, common.ServiceStatuses); err != nil {
			return nil, err
		}
		records, err = s.serviceRepo.GetServicesByStatus(ctx, status)
	} else {
		records, err = s.serviceRepo.GetServices(ctx)
	}
	if err != nil {
		return nil, err
	}

	return paginate(records, pg), nil
}

func (s *ServiceRecordService) UpdateServiceById(ctx context.Context, id string, input *entity.UpdateServiceInput) (*entity.Service, error) {
	var record *entity.Service
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		record, err = s.GetServiceById(ctx, id)
		if err != nil {
			return err
		}

		applyServiceUpdate(record, input)
		if err := validateService(record); err != nil {
			return err
		}
		if input.ContractId != nil {
			if err := s.checkContract(ctx, record.ContractId); err != nil {
				return err
			}
		}

		return s.serviceRepo.UpdateService(ctx, record)
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (s *ServiceRecordService) DeleteServiceById(ctx context.Context, id string) error {
	err := s.serviceRepo.DeleteServiceById(ctx, id)
	if errors.Is(err, repo_errors.ErrNotFound) {
		return ErrServiceNotFound
	}

	return err
}

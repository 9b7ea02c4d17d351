package service

import (
	"context"
	"errors"
	"time"

	"backoffice-api/internal/common"
	"backoffice-api/internal/entity"
	"backoffice-api/internal/repo"
	"backoffice-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

type ContractService struct {
	tx           repo.Transactor
	contractRepo repo.Contract
	relations    *relationshipMaintainer
}

func NewContractService(repos *repo.Repositories) *ContractService {
	return &ContractService{
		tx:           repos.Transactor,
		contractRepo: repos.Contract,
		relations:    newRelationshipMaintainer(repos),
	}
}

func validateContract(c *entity.Contract) error {
	if err := firstError(
		requireText("clientId", c.ClientId),
		requireOneOf("status", c.Status, common.ContractStatuses),
		requireOneOf("paymentMethod", c.PaymentMethod, common.PaymentMethods),
		requireOneOf("hiringType", c.HiringType, common.HiringTypes),
		requireNonNegative("annualValue", c.AnnualValue),
	); err != nil {
		return err
	}

	start, err := parseDate("startDate", c.StartDate)
	if err != nil {
		return err
	}
	end, err := parseDate("endDate", c.EndDate)
	if err != nil {
		return err
	}
	if end.Before(start) {
		return invalid("endDate", "should not be before startDate")
	}

	if c.PaymentMethod == common.PaymentMonthly {
		if c.MonthlyValue == nil {
			return invalid("monthlyValue", "is required when paymentMethod is Monthly")
		}

		return requireNonNegative("monthlyValue", *c.MonthlyValue)
	}
	if c.MonthlyValue != nil {
		return invalid("monthlyValue", "is only allowed when paymentMethod is Monthly")
	}

	return nil
}

// CreateContract stores the contract, copies the owning client's name into it
// and appends it to the client's contracts, all in one transaction.
func (s *ContractService) CreateContract(ctx context.Context, input *entity.CreateContractInput) (*entity.Contract, error) {
	contract := newContract(input)
	if err := validateContract(contract); err != nil {
		return nil, err
	}

	contract.Id = uuid.NewString()
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		client, err := s.relations.resolveClient(ctx, contract.ClientId)
		if err != nil {
			return err
		}

		contract.ClientName = client.CompanyName
		if err := s.contractRepo.CreateContract(ctx, contract); err != nil {
			return err
		}

		return s.relations.syncClient(ctx, client.Id)
	})
	if err != nil {
		return nil, err
	}

	return contract, nil
}

func (s *ContractService) GetContractById(ctx context.Context, id string) (*entity.Contract, error) {
	contract, err := s.contractRepo.GetContractById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrContractNotFound
		}

		return nil, err
	}

	return contract, nil
}

// GetContracts lists every contract, or only the ones of clientId when it is set.
func (s *ContractService) GetContracts(ctx context.Context, clientId string, pg *entity.PaginationInput) ([]entity.Contract, error) {
	var contracts []entity.Contract
	var err error
	if clientId != "" {
		contracts, err = s.contractRepo.GetContractsByClientId(ctx, clientId)
	} else {
		contracts, err = s.contractRepo.GetContracts(ctx)
	}
	if err != nil {
		return nil, err
	}

	return paginate(contracts, pg), nil
}

// UpdateContractById applies input. Moving the contract to another client
// takes it off the old client's list, appends it to the new one and refreshes
// the cached client name.
func (s *ContractService) UpdateContractById(ctx context.Context, id string, input *entity.UpdateContractInput) (*entity.Contract, error) {
	var contract *entity.Contract
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		contract, err = s.GetContractById(ctx, id)
		if err != nil {
			return err
		}

		previousClientId := contract.ClientId
		applyContractUpdate(contract, input)
		if err := validateContract(contract); err != nil {
			return err
		}

		client, err := s.relations.resolveClient(ctx, contract.ClientId)
		if err != nil {
			return err
		}
		contract.ClientName = client.CompanyName

		if err := s.contractRepo.UpdateContract(ctx, contract); err != nil {
			return err
		}
		if previousClientId != contract.ClientId {
			if err := s.relations.syncClient(ctx, previousClientId); err != nil {
				return err
			}
		}

		return s.relations.syncClient(ctx, contract.ClientId)
	})
	if err != nil {
		return nil, err
	}

	return contract, nil
}

func (s *ContractService) DeleteContractById(ctx context.Context, id string) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		contract, err := s.GetContractById(ctx, id)
		if err != nil {
			return err
		}

		if err := s.contractRepo.DeleteContractById(ctx, id); err != nil {
			return err
		}

		return s.relations.syncClient(ctx, contract.ClientId)
	})
}

// ExpireContracts marks Active contracts whose end date is before now as
// Expired and returns how many changed.
func (s *ContractService) ExpireContracts(ctx context.Context, now time.Time) (int, error) {
	today := now.Format(common.DateLayout)
	expired := 0
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		contracts, err := s.contractRepo.GetContracts(ctx)
		if err != nil {
			return err
		}

		for i := range contracts {
			c := &contracts[i]
			if c.Status != common.ContractActive || c.EndDate >= today {
				continue
			}

			c.Status = common.ContractExpired
			if err := s.contractRepo.UpdateContract(ctx, c); err != nil {
				return err
			}
			expired++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return expired, nil
}

package memdb

import (
	"context"

	"backoffice-api/internal/entity"
)

type ContractRepo struct {
	*DB
}

func NewContractRepo(db *DB) *ContractRepo {
	return &ContractRepo{db}
}

func (r *ContractRepo) CreateContract(ctx context.Context, contract *entity.Contract) error {
	return r.write(ctx, func(s *state) error {
		return s.contracts.insert(contract.Id, *contract)
	})
}

func (r *ContractRepo) GetContractById(ctx context.Context, id string) (*entity.Contract, error) {
	var contract entity.Contract
	err := r.read(ctx, func(s *state) error {
		var err error
		contract, err = s.contracts.get(id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return &contract, nil
}

func (r *ContractRepo) GetContracts(ctx context.Context) ([]entity.Contract, error) {
	var contracts []entity.Contract
	err := r.read(ctx, func(s *state) error {
		contracts = s.contracts.list(nil)

		return nil
	})

	return contracts, err
}

// GetContractsByClientId lists the contracts pointing at clientId in creation order.
func (r *ContractRepo) GetContractsByClientId(ctx context.Context, clientId string) ([]entity.Contract, error) {
	var contracts []entity.Contract
	err := r.read(ctx, func(s *state) error {
		contracts = s.contracts.list(func(c entity.Contract) bool {
			return c.ClientId == clientId
		})

		return nil
	})

	return contracts, err
}

func (r *ContractRepo) UpdateContract(ctx context.Context, contract *entity.Contract) error {
	return r.write(ctx, func(s *state) error {
		return s.contracts.replace(contract.Id, *contract)
	})
}

func (r *ContractRepo) DeleteContractById(ctx context.Context, id string) error {
	return r.write(ctx, func(s *state) error {
		return s.contracts.remove(id)
	})
}

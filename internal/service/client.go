package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backoffice-api/internal/common"
	"backoffice-api/internal/entity"
	"backoffice-api/internal/repo"
	"backoffice-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

// DeletePolicy decides what happens to the contracts of a deleted client.
type DeletePolicy string

const (
	// DeleteReject refuses to delete a client that still owns contracts.
	DeleteReject DeletePolicy = "reject"
	// DeleteCascade deletes the client's contracts along with it.
	DeleteCascade DeletePolicy = "cascade"
	// DeleteOrphan keeps the contracts but detaches them from any client.
	DeleteOrphan DeletePolicy = "orphan"
)

func ParseDeletePolicy(s string) (DeletePolicy, error) {
	switch p := DeletePolicy(s); p {
	case DeleteReject, DeleteCascade, DeleteOrphan:
		return p, nil
	case "":
		return DeleteReject, nil
	}

	return "", fmt.Errorf("unknown client delete policy %q", s)
}

type ClientService struct {
	tx           repo.Transactor
	clientRepo   repo.Client
	contractRepo repo.Contract
	relations    *relationshipMaintainer
	deletePolicy DeletePolicy
	now          func() time.Time
}

func NewClientService(repos *repo.Repositories, policy DeletePolicy, now func() time.Time) *ClientService {
	return &ClientService{
		tx:           repos.Transactor,
		clientRepo:   repos.Client,
		contractRepo: repos.Contract,
		relations:    newRelationshipMaintainer(repos),
		deletePolicy: policy,
		now:          now,
	}
}

func validateClient(c *entity.Client) error {
	return firstError(
		requireText("companyName", c.CompanyName),
		requireOneOf("status", c.Status, common.ClientStatuses),
		requireOneOf("type", c.Type, common.ClientTypes),
		optionalDate("registrationDate", c.RegistrationDate),
	)
}

func (s *ClientService) CreateClient(ctx context.Context, input *entity.CreateClientInput) (*entity.Client, error) {
	client := newClient(input, s.now())
	if err := validateClient(client); err != nil {
		return nil, err
	}

	client.Id = uuid.NewString()
	if err := s.clientRepo.CreateClient(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

func (s *ClientService) GetClientById(ctx context.Context, id string) (*entity.Client, error) {
	client, err := s.clientRepo.GetClientById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrClientNotFound
		}

		return nil, err
	}

	return client, nil
}

func (s *ClientService) GetClients(ctx context.Context, pg *entity.PaginationInput) ([]entity.Client, error) {
	clients, err := s.clientRepo.GetClients(ctx)
	if err != nil {
		return nil, err
	}

	return paginate(clients, pg), nil
}

// UpdateClientById applies input and, when the company name changes, renames
// every contract of the client in the same transaction.
func (s *ClientService) UpdateClientById(ctx context.Context, id string, input *entity.UpdateClientInput) (*entity.Client, error) {
	var client *entity.Client
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		client, err = s.GetClientById(ctx, id)
		if err != nil {
			return err
		}

		applyClientUpdate(client, input)
		if err := validateClient(client); err != nil {
			return err
		}

		if err := s.clientRepo.UpdateClient(ctx, client); err != nil {
			return err
		}
		if err := s.relations.syncClient(ctx, id); err != nil {
			return err
		}

		client, err = s.clientRepo.GetClientById(ctx, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return client, nil
}

// DeleteClientById removes the client and treats its contracts according to
// the configured DeletePolicy.
func (s *ClientService) DeleteClientById(ctx context.Context, id string) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		client, err := s.GetClientById(ctx, id)
		if err != nil {
			return err
		}

		contracts, err := s.contractRepo.GetContractsByClientId(ctx, id)
		if err != nil {
			return err
		}

		switch s.deletePolicy {
		case DeleteCascade:
			for _, c := range contracts {
				if err := s.contractRepo.DeleteContractById(ctx, c.Id); err != nil {
					return err
				}
			}
		case DeleteOrphan:
			for i := range contracts {
				contracts[i].ClientId, contracts[i].ClientName = "", ""
				if err := s.contractRepo.UpdateContract(ctx, &contracts[i]); err != nil {
					return err
				}
			}
		default:
			if len(client.ContractIds) > 0 || len(contracts) > 0 {
				return ErrClientHasContracts
			}
		}

		return s.clientRepo.DeleteClientById(ctx, id)
	})
}

package service

import (
	"context"
	"errors"
	"slices"

	"backoffice-api/internal/entity"
	"backoffice-api/internal/repo"
	"backoffice-api/internal/repo/repo_errors"
)

// reconcile derives the client side of the client/contract graph from the
// contracts. It returns the ids the client owns, keeping the order already
// recorded and appending newly owned contracts in the order given, together
// with the owned contracts whose cached client name is out of date (already
// corrected).
func reconcile(client *entity.Client, contracts []entity.Contract) ([]string, []entity.Contract) {
	owned := make(map[string]bool, len(contracts))
	for _, c := range contracts {
		if c.ClientId == client.Id {
			owned[c.Id] = true
		}
	}

	ids := make([]string, 0, len(owned))
	listed := make(map[string]bool, len(owned))
	for _, id := range client.ContractIds {
		if owned[id] && !listed[id] {
			ids = append(ids, id)
			listed[id] = true
		}
	}

	var stale []entity.Contract
	for _, c := range contracts {
		if c.ClientId != client.Id {
			continue
		}
		if !listed[c.Id] {
			ids = append(ids, c.Id)
			listed[c.Id] = true
		}
		if c.ClientName != client.CompanyName {
			c.ClientName = client.CompanyName
			stale = append(stale, c)
		}
	}

	return ids, stale
}

type relationshipMaintainer struct {
	clientRepo   repo.Client
	contractRepo repo.Contract
}

func newRelationshipMaintainer(repos *repo.Repositories) *relationshipMaintainer {
	return &relationshipMaintainer{clientRepo: repos.Client, contractRepo: repos.Contract}
}

// syncClient reconciles one client with the contracts that point at it. It
// must run inside the transaction of the mutation that made it necessary.
// A missing client is not an error: there is nothing left to keep in sync.
func (m *relationshipMaintainer) syncClient(ctx context.Context, clientId string) error {
	if clientId == "" {
		return nil
	}

	client, err := m.clientRepo.GetClientById(ctx, clientId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil
		}

		return err
	}

	contracts, err := m.contractRepo.GetContractsByClientId(ctx, clientId)
	if err != nil {
		return err
	}

	ids, stale := reconcile(client, contracts)
	for i := range stale {
		if err := m.contractRepo.UpdateContract(ctx, &stale[i]); err != nil {
			return err
		}
	}

	if slices.Equal(ids, client.ContractIds) {
		return nil
	}
	client.ContractIds = ids

	return m.clientRepo.UpdateClient(ctx, client)
}

// resolveClient loads the client a contract points at.
func (m *relationshipMaintainer) resolveClient(ctx context.Context, clientId string) (*entity.Client, error) {
	client, err := m.clientRepo.GetClientById(ctx, clientId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrContractClientNotFound
		}

		return nil, err
	}

	return client, nil
}

package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"backoffice-api/internal/common"
	"backoffice-api/internal/entity"
	"backoffice-api/internal/repo"
	"backoffice-api/internal/repo/memdb"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)

func newTestServices(t *testing.T, policy DeletePolicy) (*Services, *repo.Repositories) {
	t.Helper()

	repos := repo.NewRepositories(memdb.New())
	services := NewServices(repos, Options{
		ClientDeletePolicy: policy,
		Renderer:           stubRenderer{},
		Now:                func() time.Time { return testNow },
	})

	return services, repos
}

type stubRenderer struct{}

func (stubRenderer) Render(report *entity.Report, _ time.Time) ([]byte, error) {
	return []byte("rows:" + strconv.Itoa(len(report.Rows))), nil
}

func clientInput(name string) *entity.CreateClientInput {
	return &entity.CreateClientInput{
		CompanyName: name,
		ContactName: "Jane Roe",
		Email:       "jane@example.com",
		Type:        common.ClientPrivate,
	}
}

func contractInput(clientId, title string, annual float64) *entity.CreateContractInput {
	return &entity.CreateContractInput{
		ClientId:      clientId,
		Title:         title,
		StartDate:     "2024-01-01",
		EndDate:       "2024-12-31",
		Manager:       "John Doe",
		AnnualValue:   annual,
		PaymentMethod: common.PaymentOneTime,
		HiringType:    common.HiringPrivate,
		ResponsibleContact: entity.ResponsibleContact{
			Name:  "Jane Roe",
			Email: "jane@example.com",
		},
	}
}

func mustClient(t *testing.T, s *Services, name string) *entity.Client {
	t.Helper()

	client, err := s.Client.CreateClient(context.Background(), clientInput(name))
	require.NoError(t, err)

	return client
}

func mustContract(t *testing.T, s *Services, clientId, title string, annual float64) *entity.Contract {
	t.Helper()

	contract, err := s.Contract.CreateContract(context.Background(), contractInput(clientId, title, annual))
	require.NoError(t, err)

	return contract
}

// requireConsistent checks both directions of the client/contract link over
// the whole store.
func requireConsistent(t *testing.T, repos *repo.Repositories) {
	t.Helper()
	ctx := context.Background()

	clients, err := repos.Client.GetClients(ctx)
	require.NoError(t, err)
	contracts, err := repos.Contract.GetContracts(ctx)
	require.NoError(t, err)

	byId := make(map[string]entity.Client, len(clients))
	for _, k := range clients {
		byId[k.Id] = k
	}

	owned := make(map[string][]string)
	for _, c := range contracts {
		if c.ClientId == "" {
			require.Empty(t, c.ClientName, "orphaned contract %s keeps a client name", c.Id)
			continue
		}
		k, ok := byId[c.ClientId]
		require.True(t, ok, "contract %s points at missing client %s", c.Id, c.ClientId)
		require.Equal(t, k.CompanyName, c.ClientName, "contract %s has a stale client name", c.Id)
		owned[k.Id] = append(owned[k.Id], c.Id)
	}

	for _, k := range clients {
		require.ElementsMatch(t, owned[k.Id], k.ContractIds, "client %s lists the wrong contracts", k.Id)
	}
}

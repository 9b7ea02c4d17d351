package service

import (
	"context"
	"testing"

	"backoffice-api/internal/common"
	"backoffice-api/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeletePolicy(t *testing.T) {
	for in, want := range map[string]DeletePolicy{
		"":        DeleteReject,
		"reject":  DeleteReject,
		"cascade": DeleteCascade,
		"orphan":  DeleteOrphan,
	} {
		got, err := ParseDeletePolicy(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseDeletePolicy("purge")
	assert.Error(t, err)
}

func TestCreateClientDefaults(t *testing.T) {
	s, _ := newTestServices(t, DeleteReject)

	client := mustClient(t, s, "Acme")

	assert.NotEmpty(t, client.Id)
	assert.Equal(t, common.ClientActive, client.Status)
	assert.Equal(t, "2024-05-10", client.RegistrationDate)
	assert.NotNil(t, client.ContractIds)
	assert.Empty(t, client.ContractIds)
}

func TestCreateClientValidation(t *testing.T) {
	ctx := context.Background()
	s, repos := newTestServices(t, DeleteReject)

	tests := []struct {
		name  string
		edit  func(in *entity.CreateClientInput)
		field string
	}{
		{"missing company name", func(in *entity.CreateClientInput) { in.CompanyName = "  " }, "companyName"},
		{"unknown status", func(in *entity.CreateClientInput) { in.Status = "Paused" }, "status"},
		{"unknown type", func(in *entity.CreateClientInput) { in.Type = "Mixed" }, "type"},
		{"bad registration date", func(in *entity.CreateClientInput) { in.RegistrationDate = "10/05/2024" }, "registrationDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := clientInput("Acme")
			tt.edit(in)

			_, err := s.Client.CreateClient(ctx, in)
			require.ErrorIs(t, err, ErrValidation)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	clients, err := repos.Client.GetClients(ctx)
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestGetClientNotFound(t *testing.T) {
	s, _ := newTestServices(t, DeleteReject)

	_, err := s.Client.GetClientById(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetClientsPagination(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestServices(t, DeleteReject)
	for _, name := range []string{"A", "B", "C"} {
		mustClient(t, s, name)
	}

	all, err := s.Client.GetClients(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	page, err := s.Client.GetClients(ctx, entity.NewPaginationInput(1, 1))
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "B", page[0].CompanyName)

	past, err := s.Client.GetClients(ctx, entity.NewPaginationInput(5, 10))
	require.NoError(t, err)
	assert.Empty(t, past)
}

func TestRenameClientUpdatesExactlyItsContracts(t *testing.T) {
	ctx := context.Background()
	s, repos := newTestServices(t, DeleteReject)

	acme := mustClient(t, s, "Acme")
	beta := mustClient(t, s, "Beta")
	a := mustContract(t, s, acme.Id, "A", 100)
	b := mustContract(t, s, acme.Id, "B", 200)
	other := mustContract(t, s, beta.Id, "Other", 300)

	updated, err := s.Client.UpdateClientById(ctx, acme.Id, &entity.UpdateClientInput{CompanyName: strPtr("Acme Corp")})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", updated.CompanyName)
	assert.Equal(t, []string{a.Id, b.Id}, updated.ContractIds)

	for _, id := range []string{a.Id, b.Id} {
		c, err := s.Contract.GetContractById(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", c.ClientName)
	}
	c, err := s.Contract.GetContractById(ctx, other.Id)
	require.NoError(t, err)
	assert.Equal(t, "Beta", c.ClientName)

	requireConsistent(t, repos)
}

func TestUpdateClientPartial(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestServices(t, DeleteReject)
	acme := mustClient(t, s, "Acme")

	updated, err := s.Client.UpdateClientById(ctx, acme.Id, &entity.UpdateClientInput{
		Status:  strPtr(common.ClientInactive),
		Address: &entity.Address{City: "Lisbon"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme", updated.CompanyName)
	assert.Equal(t, "jane@example.com", updated.Email)
	assert.Equal(t, common.ClientInactive, updated.Status)
	assert.Equal(t, "Lisbon", updated.Address.City)

	_, err = s.Client.UpdateClientById(ctx, acme.Id, &entity.UpdateClientInput{Type: strPtr("Mixed")})
	assert.ErrorIs(t, err, ErrValidation)
	got, err := s.Client.GetClientById(ctx, acme.Id)
	require.NoError(t, err)
	assert.Equal(t, common.ClientPrivate, got.Type)

	_, err = s.Client.UpdateClientById(ctx, "missing", &entity.UpdateClientInput{})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestDeleteClientReject(t *testing.T) {
	ctx := context.Background()
	s, repos := newTestServices(t, DeleteReject)

	acme := mustClient(t, s, "Acme")
	contract := mustContract(t, s, acme.Id, "A", 100)

	err := s.Client.DeleteClientById(ctx, acme.Id)
	require.ErrorIs(t, err, ErrClientHasContracts)
	_, err = s.Client.GetClientById(ctx, acme.Id)
	require.NoError(t, err)

	require.NoError(t, s.Contract.DeleteContractById(ctx, contract.Id))
	require.NoError(t, s.Client.DeleteClientById(ctx, acme.Id))
	_, err = s.Client.GetClientById(ctx, acme.Id)
	assert.ErrorIs(t, err, ErrClientNotFound)

	assert.ErrorIs(t, s.Client.DeleteClientById(ctx, acme.Id), ErrClientNotFound)
	requireConsistent(t, repos)
}

func TestDeleteClientCascade(t *testing.T) {
	ctx := context.Background()
	s, repos := newTestServices(t, DeleteCascade)

	acme := mustClient(t, s, "Acme")
	beta := mustClient(t, s, "Beta")
	mustContract(t, s, acme.Id, "A", 100)
	mustContract(t, s, acme.Id, "B", 100)
	kept := mustContract(t, s, beta.Id, "C", 100)

	require.NoError(t, s.Client.DeleteClientById(ctx, acme.Id))

	contracts, err := s.Contract.GetContracts(ctx, "", nil)
	require.NoError(t, err)
	require.Len(t, contracts, 1)
	assert.Equal(t, kept.Id, contracts[0].Id)
	requireConsistent(t, repos)
}

func TestDeleteClientOrphan(t *testing.T) {
	ctx := context.Background()
	s, repos := newTestServices(t, DeleteOrphan)

	acme := mustClient(t, s, "Acme")
	a := mustContract(t, s, acme.Id, "A", 100)

	require.NoError(t, s.Client.DeleteClientById(ctx, acme.Id))

	orphan, err := s.Contract.GetContractById(ctx, a.Id)
	require.NoError(t, err)
	assert.Empty(t, orphan.ClientId)
	assert.Empty(t, orphan.ClientName)
	requireConsistent(t, repos)

	// an orphan can only be edited by giving it a client again
	_, err = s.Contract.UpdateContractById(ctx, a.Id, &entity.UpdateContractInput{Title: strPtr("A2")})
	assert.ErrorIs(t, err, ErrValidation)

	beta := mustClient(t, s, "Beta")
	moved, err := s.Contract.UpdateContractById(ctx, a.Id, &entity.UpdateContractInput{ClientId: &beta.Id})
	require.NoError(t, err)
	assert.Equal(t, "Beta", moved.ClientName)
	requireConsistent(t, repos)
}

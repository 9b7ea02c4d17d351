package memdb

import (
	"context"
	"errors"
	"testing"

	"backoffice-api/internal/entity"
	"backoffice-api/internal/repo/repo_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRepoCRUD(t *testing.T) {
	ctx := context.Background()
	r := NewClientRepo(New())

	require.NoError(t, r.CreateClient(ctx, &entity.Client{Id: "a", CompanyName: "Acme"}))
	require.NoError(t, r.CreateClient(ctx, &entity.Client{Id: "b", CompanyName: "Beta"}))
	assert.ErrorIs(t, r.CreateClient(ctx, &entity.Client{Id: "a"}), repo_errors.ErrAlreadyExists)

	got, err := r.GetClientById(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.CompanyName)

	got.CompanyName = "Acme Corp"
	require.NoError(t, r.UpdateClient(ctx, got))
	got, err = r.GetClientById(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", got.CompanyName)

	assert.ErrorIs(t, r.UpdateClient(ctx, &entity.Client{Id: "missing"}), repo_errors.ErrNotFound)
	assert.ErrorIs(t, r.DeleteClientById(ctx, "missing"), repo_errors.ErrNotFound)

	require.NoError(t, r.DeleteClientById(ctx, "a"))
	_, err = r.GetClientById(ctx, "a")
	assert.ErrorIs(t, err, repo_errors.ErrNotFound)
}

func TestListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	r := NewContractRepo(New())

	for _, id := range []string{"c3", "c1", "c2", "c4"} {
		require.NoError(t, r.CreateContract(ctx, &entity.Contract{Id: id, ClientId: "k"}))
	}
	require.NoError(t, r.DeleteContractById(ctx, "c1"))

	contracts, err := r.GetContracts(ctx)
	require.NoError(t, err)

	ids := make([]string, 0, len(contracts))
	for _, c := range contracts {
		ids = append(ids, c.Id)
	}
	assert.Equal(t, []string{"c3", "c2", "c4"}, ids)
}

func TestGetContractsByClientId(t *testing.T) {
	ctx := context.Background()
	r := NewContractRepo(New())

	require.NoError(t, r.CreateContract(ctx, &entity.Contract{Id: "1", ClientId: "a"}))
	require.NoError(t, r.CreateContract(ctx, &entity.Contract{Id: "2", ClientId: "b"}))
	require.NoError(t, r.CreateContract(ctx, &entity.Contract{Id: "3", ClientId: "a"}))

	contracts, err := r.GetContractsByClientId(ctx, "a")
	require.NoError(t, err)
	require.Len(t, contracts, 2)
	assert.Equal(t, "1", contracts[0].Id)
	assert.Equal(t, "3", contracts[1].Id)
}

func TestStoredValuesAreCopies(t *testing.T) {
	ctx := context.Background()
	r := NewClientRepo(New())

	client := &entity.Client{Id: "a", ContractIds: []string{"x"}}
	require.NoError(t, r.CreateClient(ctx, client))
	client.ContractIds[0] = "changed"

	got, err := r.GetClientById(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, got.ContractIds)

	got.ContractIds[0] = "changed again"
	again, err := r.GetClientById(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, again.ContractIds)
}

func TestWithinTxCommits(t *testing.T) {
	ctx := context.Background()
	db := New()
	clients, contracts := NewClientRepo(db), NewContractRepo(db)

	err := db.WithinTx(ctx, func(ctx context.Context) error {
		if err := clients.CreateClient(ctx, &entity.Client{Id: "a"}); err != nil {
			return err
		}

		// writes are visible inside the same transaction
		if _, err := clients.GetClientById(ctx, "a"); err != nil {
			return err
		}

		return contracts.CreateContract(ctx, &entity.Contract{Id: "c", ClientId: "a"})
	})
	require.NoError(t, err)

	_, err = clients.GetClientById(ctx, "a")
	assert.NoError(t, err)
	_, err = contracts.GetContractById(ctx, "c")
	assert.NoError(t, err)
}

func TestWithinTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := New()
	clients := NewClientRepo(db)
	require.NoError(t, clients.CreateClient(ctx, &entity.Client{Id: "a", CompanyName: "Acme"}))

	boom := errors.New("boom")
	err := db.WithinTx(ctx, func(ctx context.Context) error {
		if err := clients.UpdateClient(ctx, &entity.Client{Id: "a", CompanyName: "Renamed"}); err != nil {
			return err
		}
		if err := clients.CreateClient(ctx, &entity.Client{Id: "b"}); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := clients.GetClientById(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.CompanyName)
	_, err = clients.GetClientById(ctx, "b")
	assert.ErrorIs(t, err, repo_errors.ErrNotFound)
}

func TestNestedWithinTxJoinsOuter(t *testing.T) {
	ctx := context.Background()
	db := New()
	clients := NewClientRepo(db)

	boom := errors.New("boom")
	err := db.WithinTx(ctx, func(ctx context.Context) error {
		err := db.WithinTx(ctx, func(ctx context.Context) error {
			return clients.CreateClient(ctx, &entity.Client{Id: "inner"})
		})
		if err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = clients.GetClientById(ctx, "inner")
	assert.ErrorIs(t, err, repo_errors.ErrNotFound)
}

func TestViewIsReadOnly(t *testing.T) {
	ctx := context.Background()
	db := New()
	clients := NewClientRepo(db)
	require.NoError(t, clients.CreateClient(ctx, &entity.Client{Id: "a"}))

	err := db.View(ctx, func(ctx context.Context) error {
		if _, err := clients.GetClientById(ctx, "a"); err != nil {
			return err
		}

		return clients.CreateClient(ctx, &entity.Client{Id: "b"})
	})
	assert.ErrorIs(t, err, repo_errors.ErrReadOnly)
}

func TestFinishedTxContextIsRejected(t *testing.T) {
	ctx := context.Background()
	db := New()
	clients := NewClientRepo(db)

	var leaked context.Context
	require.NoError(t, db.WithinTx(ctx, func(ctx context.Context) error {
		leaked = ctx

		return nil
	}))

	_, err := clients.GetClients(leaked)
	assert.ErrorIs(t, err, repo_errors.ErrTxDone)
	assert.ErrorIs(t, clients.CreateClient(leaked, &entity.Client{Id: "a"}), repo_errors.ErrTxDone)
}

func TestDiagnostics(t *testing.T) {
	ctx := context.Background()
	db := New()
	require.NoError(t, NewServiceRepo(db).CreateService(ctx, &entity.Service{Id: "s"}))
	require.NoError(t, NewLogEntryRepo(db).CreateLogEntry(ctx, &entity.LogEntry{Id: "l"}))

	d := NewDiagnosticsRepo(db)
	assert.NoError(t, d.Ping())

	counts := d.Counts()
	assert.Equal(t, 1, counts["services"])
	assert.Equal(t, 1, counts["logEntries"])
	assert.Equal(t, 0, counts["clients"])
}

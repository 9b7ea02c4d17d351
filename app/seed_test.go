package app

import (
	"context"
	"testing"
	"time"

	"backoffice-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
clients:
  - companyName: Acme
    contactName: Jane Roe
    email: jane@example.com
    type: Private
    address:
      city: Lisbon
    contracts:
      - title: T1
        startDate: "2024-01-01"
        endDate: "2024-12-31"
        status: Active
        annualValue: 1200
        paymentMethod: Monthly
        monthlyValue: 100
        hiringType: Private
        responsibleContact:
          name: Jane Roe
          email: jane@example.com
consultants:
  - name: Ana Lima
    employmentType: OnDemand
    contractType: Other
    paymentDetails:
      hourlyRate: 80
services:
  - clientName: Acme
    title: Audit
    status: Completed
    contractTitle: T1
    costs:
      travel: 100
      food: 50
logbook:
  - author: {id: u1, name: Jane Roe}
    text: Kickoff
    comments:
      - author: {id: u2, name: John Doe}
        text: Noted
announcements:
  - title: Holiday
    text: Friday off
    author: {id: u1, name: Jane Roe}
`

func TestSeed(t *testing.T) {
	ctx := context.Background()
	_, services := newHandler(&Config{ClientDeletePolicy: service.DeleteReject})

	require.NoError(t, seed(ctx, []byte(seedYAML), services))

	clients, err := services.Client.GetClients(ctx, nil)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Lisbon", clients[0].Address.City)
	require.Len(t, clients[0].ContractIds, 1)

	contract, err := services.Contract.GetContractById(ctx, clients[0].ContractIds[0])
	require.NoError(t, err)
	assert.Equal(t, "Acme", contract.ClientName)
	require.NotNil(t, contract.MonthlyValue)
	assert.Equal(t, 100.0, *contract.MonthlyValue)

	records, err := services.ServiceRecord.GetServices(ctx, "", nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, contract.Id, records[0].ContractId)

	entries, err := services.Logbook.GetLogEntries(ctx, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Len(t, entries[0].Comments, 1)

	report, err := services.Report.GetProfitabilityReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1050.0, report.Summary.TotalProfit)
}

func TestSeedStopsAtFirstInvalidRecord(t *testing.T) {
	ctx := context.Background()
	_, services := newHandler(&Config{})

	err := seed(ctx, []byte(`
services:
  - clientName: Acme
    title: Audit
    contractTitle: Unknown
`), services)
	assert.ErrorIs(t, err, service.ErrReferenceNotFound)

	err = seed(ctx, []byte(`
clients:
  - contactName: Nobody
    type: Private
`), services)
	assert.ErrorIs(t, err, service.ErrValidation)

	err = seed(ctx, []byte("clients: ["), services)
	assert.Error(t, err)
}

func TestContractExpirySchedule(t *testing.T) {
	ctx := context.Background()
	_, services := newHandler(&Config{})
	require.NoError(t, seed(ctx, []byte(seedYAML), services))

	expireContracts(ctx, services.Contract, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	contracts, err := services.Contract.GetContracts(ctx, "", nil)
	require.NoError(t, err)
	require.Len(t, contracts, 1)
	assert.Equal(t, "Expired", contracts[0].Status)

	c, err := startContractExpiry("@every 1h", services.Contract)
	require.NoError(t, err)
	c.Stop()

	_, err = startContractExpiry("not a schedule", services.Contract)
	assert.Error(t, err)
}

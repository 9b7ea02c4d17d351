package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backoffice-api/internal/entity"
	"backoffice-api/internal/pdf"
	"backoffice-api/internal/repo"
	"backoffice-api/internal/repo/memdb"
	"backoffice-api/internal/service"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, policy service.DeletePolicy) *echo.Echo {
	t.Helper()

	services := service.NewServices(repo.NewRepositories(memdb.New()), service.Options{
		ClientDeletePolicy: policy,
		Renderer:           pdf.NewReportGenerator(),
	})
	e := echo.New()
	SetupRoutesHandlers(e, services, []string{"*"})

	return e
}

func do(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())

	return v
}

const acmeJSON = `{"companyName":"Acme","contactName":"Jane Roe","email":"jane@example.com","type":"Private"}`

func contractJSON(clientId string) string {
	return `{"clientId":"` + clientId + `","title":"T1","startDate":"2024-01-01","endDate":"2024-12-31",` +
		`"annualValue":1200,"paymentMethod":"OneTime","hiringType":"Private",` +
		`"responsibleContact":{"name":"Jane Roe","email":"jane@example.com"}}`
}

func TestPing(t *testing.T) {
	e := newTestServer(t, service.DeleteReject)

	rec := do(t, e, http.MethodGet, "/api/ping", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, e, http.MethodGet, "/api/stats", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, decode[map[string]int](t, rec)["clients"])
}

func TestClientContractFlow(t *testing.T) {
	e := newTestServer(t, service.DeleteReject)

	rec := do(t, e, http.MethodPost, "/api/clients", acmeJSON)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	client := decode[entity.Client](t, rec)
	assert.Equal(t, "Active", client.Status)

	rec = do(t, e, http.MethodPost, "/api/contracts", contractJSON(client.Id))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	contract := decode[entity.Contract](t, rec)
	assert.Equal(t, "Acme", contract.ClientName)

	rec = do(t, e, http.MethodGet, "/api/clients/"+client.Id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{contract.Id}, decode[entity.Client](t, rec).ContractIds)

	rec = do(t, e, http.MethodPatch, "/api/clients/"+client.Id, `{"companyName":"Acme Corp"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodGet, "/api/contracts?clientId="+client.Id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	contracts := decode[[]entity.Contract](t, rec)
	require.Len(t, contracts, 1)
	assert.Equal(t, "Acme Corp", contracts[0].ClientName)

	rec = do(t, e, http.MethodDelete, "/api/clients/"+client.Id, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, e, http.MethodDelete, "/api/contracts/"+contract.Id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, e, http.MethodDelete, "/api/clients/"+client.Id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, e, http.MethodGet, "/api/clients/"+client.Id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "There is no client with given id", decode[errorResponse](t, rec).Reason)
}

func TestErrorStatuses(t *testing.T) {
	e := newTestServer(t, service.DeleteReject)

	rec := do(t, e, http.MethodPost, "/api/clients", `{"contactName":"No company"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[errorResponse](t, rec).Reason, "'companyName': this field is required")

	rec = do(t, e, http.MethodPost, "/api/clients", `{"companyName":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, http.MethodPost, "/api/contracts", contractJSON("missing"))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, e, http.MethodPost, "/api/clients", acmeJSON)
	require.Equal(t, http.StatusCreated, rec.Code)
	client := decode[entity.Client](t, rec)

	// passes the request checks but breaks the date order
	body := strings.Replace(contractJSON(client.Id), `"endDate":"2024-12-31"`, `"endDate":"2023-12-31"`, 1)
	rec = do(t, e, http.MethodPost, "/api/contracts", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "endDate: should not be before startDate", decode[errorResponse](t, rec).Reason)

	rec = do(t, e, http.MethodGet, "/api/services?status=Done", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, http.MethodGet, "/api/consultants/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfitabilityReportRoutes(t *testing.T) {
	e := newTestServer(t, service.DeleteReject)

	rec := do(t, e, http.MethodGet, "/api/reports/profitability", "")
	require.Equal(t, http.StatusOK, rec.Code)
	empty := decode[entity.Report](t, rec)
	assert.Empty(t, empty.Rows)
	assert.Nil(t, empty.Summary.MostProfitable)

	rec = do(t, e, http.MethodPost, "/api/clients", acmeJSON)
	require.Equal(t, http.StatusCreated, rec.Code)
	client := decode[entity.Client](t, rec)
	rec = do(t, e, http.MethodPost, "/api/contracts", contractJSON(client.Id))
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = do(t, e, http.MethodPost, "/api/services",
		`{"clientName":"Acme","title":"Audit","status":"Completed","costs":{"travel":100,"food":50}}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, e, http.MethodGet, "/api/reports/profitability", "")
	require.Equal(t, http.StatusOK, rec.Code)
	report := decode[entity.Report](t, rec)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, 1050.0, report.Rows[0].Profit)
	assert.InDelta(t, 87.5, report.Rows[0].ProfitMargin, 1e-9)
	assert.Equal(t, 1, report.Summary.CompletedCount)

	rec = do(t, e, http.MethodGet, "/api/reports/profitability.pdf", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
}

func TestConsultantRoutes(t *testing.T) {
	e := newTestServer(t, service.DeleteReject)

	rec := do(t, e, http.MethodPost, "/api/consultants",
		`{"name":"Ana Lima","employmentType":"Fixed","contractType":"Contract","paymentDetails":{"monthlySalary":5000}}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	consultant := decode[entity.Consultant](t, rec)

	rec = do(t, e, http.MethodPatch, "/api/consultants/"+consultant.Id, `{"employmentType":"OnDemand"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, http.MethodPatch, "/api/consultants/"+consultant.Id,
		`{"employmentType":"OnDemand","paymentDetails":{"hourlyRate":90}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Nil(t, decode[entity.Consultant](t, rec).PaymentDetails.MonthlySalary)

	rec = do(t, e, http.MethodGet, "/api/consultants?limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]entity.Consultant](t, rec), 1)

	rec = do(t, e, http.MethodGet, "/api/consultants?limit=1000", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogbookAndAnnouncementRoutes(t *testing.T) {
	e := newTestServer(t, service.DeleteReject)
	author := `"author":{"id":"u1","name":"Jane Roe"}`

	rec := do(t, e, http.MethodPost, "/api/logbook", `{`+author+`,"text":"Kickoff"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	entry := decode[entity.LogEntry](t, rec)

	rec = do(t, e, http.MethodPost, "/api/logbook/"+entry.Id+"/comments", `{`+author+`,"text":"Noted"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	entry = decode[entity.LogEntry](t, rec)
	require.Len(t, entry.Comments, 1)

	rec = do(t, e, http.MethodDelete, "/api/logbook/"+entry.Id+"/comments/"+entry.Comments[0].Id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[entity.LogEntry](t, rec).Comments)

	rec = do(t, e, http.MethodDelete, "/api/logbook/"+entry.Id+"/comments/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, e, http.MethodPost, "/api/announcements", `{"title":"Holiday","text":"Friday off",`+author+`}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	announcement := decode[entity.Announcement](t, rec)

	rec = do(t, e, http.MethodPatch, "/api/announcements/"+announcement.Id, `{"title":"Holiday"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Nothing to update, all values are the same", decode[errorResponse](t, rec).Reason)
}

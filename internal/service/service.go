package service

import (
	"context"
	"time"

	"backoffice-api/internal/entity"
	"backoffice-api/internal/repo"
)

type Diagnostics interface {
	Ping() error
	Stats() map[string]int
}

type Client interface {
	CreateClient(ctx context.Context, input *entity.CreateClientInput) (*entity.Client, error)
	GetClientById(ctx context.Context, id string) (*entity.Client, error)
	GetClients(ctx context.Context, pg *entity.PaginationInput) ([]entity.Client, error)
	UpdateClientById(ctx context.Context, id string, input *entity.UpdateClientInput) (*entity.Client, error)
	DeleteClientById(ctx context.Context, id string) error
}

type Contract interface {
	CreateContract(ctx context.Context, input *entity.CreateContractInput) (*entity.Contract, error)
	GetContractById(ctx context.Context, id string) (*entity.Contract, error)
	GetContracts(ctx context.Context, clientId string, pg *entity.PaginationInput) ([]entity.Contract, error)
	UpdateContractById(ctx context.Context, id string, input *entity.UpdateContractInput) (*entity.Contract, error)
	DeleteContractById(ctx context.Context, id string) error

	ExpireContracts(ctx context.Context, now time.Time) (int, error)
}

type Consultant interface {
	CreateConsultant(ctx context.Context, input *entity.CreateConsultantInput) (*entity.Consultant, error)
	GetConsultantById(ctx context.Context, id string) (*entity.Consultant, error)
	GetConsultants(ctx context.Context, pg *entity.PaginationInput) ([]entity.Consultant, error)
	UpdateConsultantById(ctx context.Context, id string, input *entity.UpdateConsultantInput) (*entity.Consultant, error)
	DeleteConsultantById(ctx context.Context, id string) error
}

type ServiceRecord interface {
	CreateService(ctx context.Context, input *entity.CreateServiceInput) (*entity.Service, error)
	GetServiceById(ctx context.Context, id string) (*entity.Service, error)
	GetServices(ctx context.Context, status string, pg *entity.PaginationInput) ([]entity.Service, error)
	UpdateServiceById(ctx context.Context, id string, input *entity.UpdateServiceInput) (*entity.Service, error)
	DeleteServiceById(ctx context.Context, id string) error
}

type Logbook interface {
	CreateLogEntry(ctx context.Context, input *entity.CreateLogEntryInput) (*entity.LogEntry, error)
	GetLogEntryById(ctx context.Context, id string) (*entity.LogEntry, error)
	GetLogEntries(ctx context.Context, pg *entity.PaginationInput) ([]entity.LogEntry, error)
	UpdateLogEntryById(ctx context.Context, id string, input *entity.UpdateLogEntryInput) (*entity.LogEntry, error)
	DeleteLogEntryById(ctx context.Context, id string) error

	AddComment(ctx context.Context, entryId string, input *entity.CreateLogCommentInput) (*entity.LogEntry, error)
	DeleteComment(ctx context.Context, entryId, commentId string) (*entity.LogEntry, error)
}

type Announcement interface {
	CreateAnnouncement(ctx context.Context, input *entity.CreateAnnouncementInput) (*entity.Announcement, error)
	GetAnnouncementById(ctx context.Context, id string) (*entity.Announcement, error)
	GetAnnouncements(ctx context.Context, pg *entity.PaginationInput) ([]entity.Announcement, error)
	UpdateAnnouncementById(ctx context.Context, id string, input *entity.UpdateAnnouncementInput) (*entity.Announcement, error)
	DeleteAnnouncementById(ctx context.Context, id string) error
}

type Report interface {
	GetProfitabilityReport(ctx context.Context) (*entity.Report, error)
	GetProfitabilityReportPDF(ctx context.Context) ([]byte, error)
}

type Services struct {
	Diagnostics   Diagnostics
	Client        Client
	Contract      Contract
	Consultant    Consultant
	ServiceRecord ServiceRecord
	Logbook       Logbook
	Announcement  Announcement
	Report        Report
}

type Options struct {
	ClientDeletePolicy DeletePolicy
	Renderer           ReportRenderer
	// Now defaults to time.Now.
	Now func() time.Time
}

func NewServices(repos *repo.Repositories, opts Options) *Services {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Services{
		Diagnostics:   NewDiagnosticsService(repos),
		Client:        NewClientService(repos, opts.ClientDeletePolicy, now),
		Contract:      NewContractService(repos),
		Consultant:    NewConsultantService(repos),
		ServiceRecord: NewServiceRecordService(repos),
		Logbook:       NewLogbookService(repos, now),
		Announcement:  NewAnnouncementService(repos, now),
		Report:        NewReportService(repos, opts.Renderer, now),
	}
}

package repo

import (
	"context"

	"backoffice-api/internal/entity"
	"backoffice-api/internal/repo/memdb"
)

// Transactor groups repository calls. Calls made with the context handed to
// fn see each other's writes and are committed or dropped together.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
	View(ctx context.Context, fn func(ctx context.Context) error) error
}

type Diagnostics interface {
	Ping() error
	Counts() map[string]int
}

type Client interface {
	CreateClient(ctx context.Context, client *entity.Client) error
	GetClientById(ctx context.Context, id string) (*entity.Client, error)
	GetClients(ctx context.Context) ([]entity.Client, error)
	UpdateClient(ctx context.Context, client *entity.Client) error
	DeleteClientById(ctx context.Context, id string) error
}

type Contract interface {
	CreateContract(ctx context.Context, contract *entity.Contract) error
	GetContractById(ctx context.Context, id string) (*entity.Contract, error)
	GetContracts(ctx context.Context) ([]entity.Contract, error)
	GetContractsByClientId(ctx context.Context, clientId string) ([]entity.Contract, error)
	UpdateContract(ctx context.Context, contract *entity.Contract) error
	DeleteContractById(ctx context.Context, id string) error
}

type Consultant interface {
	CreateConsultant(ctx context.Context, consultant *entity.Consultant) error
	GetConsultantById(ctx context.Context, id string) (*entity.Consultant, error)
	GetConsultants(ctx context.Context) ([]entity.Consultant, error)
	UpdateConsultant(ctx context.Context, consultant *entity.Consultant) error
	DeleteConsultantById(ctx context.Context, id string) error
}

type Service interface {
	CreateService(ctx context.Context, service *entity.Service) error
	GetServiceById(ctx context.Context, id string) (*entity.Service, error)
	GetServices(ctx context.Context) ([]entity.Service, error)
	GetServicesByStatus(ctx context.Context, status string) ([]entity.Service, error)
	UpdateService(ctx context.Context, service *entity.Service) error
	DeleteServiceById(ctx context.Context, id string) error
}

type LogEntry interface {
	CreateLogEntry(ctx context.Context, entry *entity.LogEntry) error
	GetLogEntryById(ctx context.Context, id string) (*entity.LogEntry, error)
	GetLogEntries(ctx context.Context) ([]entity.LogEntry, error)
	UpdateLogEntry(ctx context.Context, entry *entity.LogEntry) error
	DeleteLogEntryById(ctx context.Context, id string) error
}

type Announcement interface {
	CreateAnnouncement(ctx context.Context, announcement *entity.Announcement) error
	GetAnnouncementById(ctx context.Context, id string) (*entity.Announcement, error)
	GetAnnouncements(ctx context.Context) ([]entity.Announcement, error)
	UpdateAnnouncement(ctx context.Context, announcement *entity.Announcement) error
	DeleteAnnouncementById(ctx context.Context, id string) error
}

type Repositories struct {
	Transactor
	Diagnostics
	Client
	Contract
	Consultant
	Service
	LogEntry
	Announcement
}

func NewRepositories(db *memdb.DB) *Repositories {
	return &Repositories{
		Transactor:   db,
		Diagnostics:  memdb.NewDiagnosticsRepo(db),
		Client:       memdb.NewClientRepo(db),
		Contract:     memdb.NewContractRepo(db),
		Consultant:   memdb.NewConsultantRepo(db),
		Service:      memdb.NewServiceRepo(db),
		LogEntry:     memdb.NewLogEntryRepo(db),
		Announcement: memdb.NewAnnouncementRepo(db),
	}
}

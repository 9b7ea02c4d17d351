package app

import (
	"context"
	"fmt"
	"os"

	"backoffice-api/internal/entity"
	"backoffice-api/internal/service"

	"gopkg.in/yaml.v3"
)

type seedClient struct {
	entity.CreateClientInput `yaml:",inline"`
	Contracts                []entity.CreateContractInput `yaml:"contracts"`
}

type seedLogEntry struct {
	entity.CreateLogEntryInput `yaml:",inline"`
	Comments                   []entity.CreateLogCommentInput `yaml:"comments"`
}

type seedData struct {
	Clients       []seedClient                     `yaml:"clients"`
	Consultants   []entity.CreateConsultantInput   `yaml:"consultants"`
	Services      []seedService                    `yaml:"services"`
	Logbook       []seedLogEntry                   `yaml:"logbook"`
	Announcements []entity.CreateAnnouncementInput `yaml:"announcements"`
}

// seedService may point at a contract by its title, since ids are assigned
// while seeding.
type seedService struct {
	entity.CreateServiceInput `yaml:",inline"`
	ContractTitle             string `yaml:"contractTitle"`
}

func loadSeedFile(ctx context.Context, path string, services *service.Services) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	return seed(ctx, raw, services)
}

// seed feeds the YAML document through the services, so seeded records obey
// the same rules as ones created over HTTP.
func seed(ctx context.Context, raw []byte, services *service.Services) error {
	var data seedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	contractIds := make(map[string]string)
	for i := range data.Clients {
		sc := &data.Clients[i]
		client, err := services.Client.CreateClient(ctx, &sc.CreateClientInput)
		if err != nil {
			return fmt.Errorf("seed client %q: %w", sc.CompanyName, err)
		}

		for j := range sc.Contracts {
			input := sc.Contracts[j]
			input.ClientId = client.Id
			contract, err := services.Contract.CreateContract(ctx, &input)
			if err != nil {
				return fmt.Errorf("seed contract %q: %w", input.Title, err)
			}
			contractIds[contract.Title] = contract.Id
		}
	}

	for i := range data.Consultants {
		if _, err := services.Consultant.CreateConsultant(ctx, &data.Consultants[i]); err != nil {
			return fmt.Errorf("seed consultant %q: %w", data.Consultants[i].Name, err)
		}
	}

	for i := range data.Services {
		ss := &data.Services[i]
		if ss.ContractTitle != "" {
			id, ok := contractIds[ss.ContractTitle]
			if !ok {
				return fmt.Errorf("seed service %q: %w", ss.Title, service.ErrServiceContractNotFound)
			}
			ss.ContractId = id
		}
		if _, err := services.ServiceRecord.CreateService(ctx, &ss.CreateServiceInput); err != nil {
			return fmt.Errorf("seed service %q: %w", ss.Title, err)
		}
	}

	for i := range data.Logbook {
		se := &data.Logbook[i]
		entry, err := services.Logbook.CreateLogEntry(ctx, &se.CreateLogEntryInput)
		if err != nil {
			return fmt.Errorf("seed log entry: %w", err)
		}
		for j := range se.Comments {
			if _, err := services.Logbook.AddComment(ctx, entry.Id, &se.Comments[j]); err != nil {
				return fmt.Errorf("seed log comment: %w", err)
			}
		}
	}

	for i := range data.Announcements {
		if _, err := services.Announcement.CreateAnnouncement(ctx, &data.Announcements[i]); err != nil {
			return fmt.Errorf("seed announcement %q: %w", data.Announcements[i].Title, err)
		}
	}

	return nil
}

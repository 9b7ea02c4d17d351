package memdb

import (
	"context"

	"backoffice-api/internal/entity"
)

type ServiceRepo struct {
	*DB
}

func NewServiceRepo(db *DB) *ServiceRepo {
	return &ServiceRepo{db}
}

func (r *ServiceRepo) CreateService(ctx context.Context, service *entity.Service) error {
	return r.write(ctx, func(s *state) error {
		return s.services.insert(service.Id, *service)
	})
}

func (r *ServiceRepo) GetServiceById(ctx context.Context, id string) (*entity.Service, error) {
	var service entity.Service
	err := r.read(ctx, func(s *state) error {
		var err error
		service, err = s.services.get(id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return &service, nil
}

func (r *ServiceRepo) GetServices(ctx context.Context) ([]entity.Service, error) {
	var services []entity.Service
	err := r.read(ctx, func(s *state) error {
		services = s.services.list(nil)

		return nil
	})

	return services, err
}

func (r *ServiceRepo) GetServicesByStatus(ctx context.Context, status string) ([]entity.Service, error) {
	var services []entity.Service
	err := r.read(ctx, func(s *state) error {
		services = s.services.list(func(sv entity.Service) bool {
			return sv.Status == status
		})

		return nil
	})

	return services, err
}

func (r *ServiceRepo) UpdateService(ctx context.Context, service *entity.Service) error {
	return r.write(ctx, func(s *state) error {
		return s.services.replace(service.Id, *service)
	})
}

func (r *ServiceRepo) DeleteServiceById(ctx context.Context, id string) error {
	return r.write(ctx, func(s *state) error {
		return s.services.remove(id)
	})
}

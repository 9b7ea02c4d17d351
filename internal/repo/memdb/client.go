package memdb

import (
	"context"

	"backoffice-api/internal/entity"
)

type ClientRepo struct {
	*DB
}

func NewClientRepo(db *DB) *ClientRepo {
	return &ClientRepo{db}
}

func (r *ClientRepo) CreateClient(ctx context.Context, client *entity.Client) error {
	return r.write(ctx, func(s *state) error {
		return s.clients.insert(client.Id, *client)
	})
}

func (r *ClientRepo) GetClientById(ctx context.Context, id string) (*entity.Client, error) {
	var client entity.Client
	err := r.read(ctx, func(s *state) error {
		var err error
		client, err = s.clients.get(id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return &client, nil
}

func (r *ClientRepo) GetClients(ctx context.Context) ([]entity.Client, error) {
	var clients []entity.Client
	err := r.read(ctx, func(s *state) error {
		clients = s.clients.list(nil)

		return nil
	})

	return clients, err
}

func (r *ClientRepo) UpdateClient(ctx context.Context, client *entity.Client) error {
	return r.write(ctx, func(s *state) error {
		return s.clients.replace(client.Id, *client)
	})
}

func (r *ClientRepo) DeleteClientById(ctx context.Context, id string) error {
	return r.write(ctx, func(s *state) error {
		return s.clients.remove(id)
	})
}

package memdb

import (
	"context"

	"backoffice-api/internal/entity"
)

type ConsultantRepo struct {
	*DB
}

func NewConsultantRepo(db *DB) *ConsultantRepo {
	return &ConsultantRepo{db}
}

func (r *ConsultantRepo) CreateConsultant(ctx context.Context, consultant *entity.Consultant) error {
	return r.write(ctx, func(s *state) error {
		return s.consultants.insert(consultant.Id, *consultant)
	})
}

func (r *ConsultantRepo) GetConsultantById(ctx context.Context, id string) (*entity.Consultant, error) {
	var consultant entity.Consultant
	err := r.read(ctx, func(s *state) error {
		var err error
		consultant, err = s.consultants.get(id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return &consultant, nil
}

func (r *ConsultantRepo) GetConsultants(ctx context.Context) ([]entity.Consultant, error) {
	var consultants []entity.Consultant
	err := r.read(ctx, func(s *state) error {
		consultants = s.consultants.list(nil)

		return nil
	})

	return consultants, err
}

func (r *ConsultantRepo) UpdateConsultant(ctx context.Context, consultant *entity.Consultant) error {
	return r.write(ctx, func(s *state) error {
		return s.consultants.replace(consultant.Id, *consultant)
	})
}

func (r *ConsultantRepo) DeleteConsultantById(ctx context.Context, id string) error {
	return r.write(ctx, func(s *state) error {
		return s.consultants.remove(id)
	})
}

package service

import (
	"context"
	"errors"
	"time"

	"backoffice-api/internal/entity"
	"backoffice-api/internal/repo"
	"backoffice-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

type AnnouncementService struct {
	tx               repo.Transactor
	announcementRepo repo.Announcement
	now              func() time.Time
}

func NewAnnouncementService(repos *repo.Repositories, now func() time.Time) *AnnouncementService {
	return &AnnouncementService{
		tx:               repos.Transactor,
		announcementRepo: repos.Announcement,
		now:              now,
	}
}

func validateAnnouncement(a *entity.Announcement) error {
	return firstError(
		requireText("title", a.Title),
		requireText("text", a.Text),
		validateAuthor(a.Author),
	)
}

func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, input *entity.CreateAnnouncementInput) (*entity.Announcement, error) {
	announcement := &entity.Announcement{
		Title:     input.Title,
		Text:      input.Text,
		Author:    input.Author,
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}
	if err := validateAnnouncement(announcement); err != nil {
		return nil, err
	}

	announcement.Id = uuid.NewString()
	if err := s.announcementRepo.CreateAnnouncement(ctx, announcement); err != nil {
		return nil, err
	}

	return announcement, nil
}

func (s *AnnouncementService) GetAnnouncementById(ctx context.Context, id string) (*entity.Announcement, error) {
	announcement, err := s.announcementRepo.GetAnnouncementById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrAnnouncementNotFound
		}

		return nil, err
	}

	return announcement, nil
}

func (s *AnnouncementService) GetAnnouncements(ctx context.Context, pg *entity.PaginationInput) ([]entity.Announcement, error) {
	announcements, err := s.announcementRepo.GetAnnouncements(ctx)
	if err != nil {
		return nil, err
	}

	return paginate(announcements, pg), nil
}

func (s *AnnouncementService) UpdateAnnouncementById(ctx context.Context, id string, input *entity.UpdateAnnouncementInput) (*entity.Announcement, error) {
	var announcement *entity.Announcement
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		announcement, err = s.GetAnnouncementById(ctx, id)
		if err != nil {
			return err
		}

		if (input.Title == nil || *input.Title == announcement.Title) &&
			(input.Text == nil || *input.Text == announcement.Text) {
			return ErrNoNewChanges
		}

		set(&announcement.Title, input.Title)
		set(&announcement.Text, input.Text)
		if err := validateAnnouncement(announcement); err != nil {
			return err
		}

		return s.announcementRepo.UpdateAnnouncement(ctx, announcement)
	})
	if err != nil {
		return nil, err
	}

	return announcement, nil
}

func (s *AnnouncementService) DeleteAnnouncementById(ctx context.Context, id string) error {
	err := s.announcementRepo.DeleteAnnouncementById(ctx, id)
	if errors.Is(err, repo_errors.ErrNotFound) {
		return ErrAnnouncementNotFound
	}

	return err
}

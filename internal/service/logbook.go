package service

import (
	"context"
	"errors"
	"slices"
	"time"

	"backoffice-api/internal/entity"
	"backoffice-api/internal/repo"
	"backoffice-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

type LogbookService struct {
	tx           repo.Transactor
	logEntryRepo repo.LogEntry
	now          func() time.Time
}

func NewLogbookService(repos *repo.Repositories, now func() time.Time) *LogbookService {
	return &LogbookService{
		tx:           repos.Transactor,
		logEntryRepo: repos.LogEntry,
		now:          now,
	}
}

func validateAuthor(a entity.Author) error {
	return firstError(
		requireText("author.id", a.Id),
		requireText("author.name", a.Name),
	)
}

func (s *LogbookService) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func (s *LogbookService) CreateLogEntry(ctx context.Context, input *entity.CreateLogEntryInput) (*entity.LogEntry, error) {
	if err := firstError(validateAuthor(input.Author), requireText("text", input.Text)); err != nil {
		return nil, err
	}

	entry := &entity.LogEntry{
		Id:        uuid.NewString(),
		Author:    input.Author,
		Text:      input.Text,
		CreatedAt: s.timestamp(),
		Comments:  make([]entity.LogComment, 0),
	}
	if err := s.logEntryRepo.CreateLogEntry(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *LogbookService) GetLogEntryById(ctx context.Context, id string) (*entity.LogEntry, error) {
	entry, err := s.logEntryRepo.GetLogEntryById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrLogEntryNotFound
		}

		return nil, err
	}

	return entry, nil
}

func (s *LogbookService) GetLogEntries(ctx context.Context, pg *entity.PaginationInput) ([]entity.LogEntry, error) {
	entries, err := s.logEntryRepo.GetLogEntries(ctx)
	if err != nil {
		return nil, err
	}

	return paginate(entries, pg), nil
}

func (s *LogbookService) UpdateLogEntryById(ctx context.Context, id string, input *entity.UpdateLogEntryInput) (*entity.LogEntry, error) {
	var entry *entity.LogEntry
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		entry, err = s.GetLogEntryById(ctx, id)
		if err != nil {
			return err
		}

		set(&entry.Text, input.Text)
		if err := requireText("text", entry.Text); err != nil {
			return err
		}

		return s.logEntryRepo.UpdateLogEntry(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *LogbookService) DeleteLogEntryById(ctx context.Context, id string) error {
	err := s.logEntryRepo.DeleteLogEntryById(ctx, id)
	if errors.Is(err, repo_errors.ErrNotFound) {
		return ErrLogEntryNotFound
	}

	return err
}

// AddComment appends a comment to the entry and returns the updated entry.
func (s *LogbookService) AddComment(ctx context.Context, entryId string, input *entity.CreateLogCommentInput) (*entity.LogEntry, error) {
	if err := firstError(validateAuthor(input.Author), requireText("text", input.Text)); err != nil {
		return nil, err
	}

	var entry *entity.LogEntry
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		entry, err = s.GetLogEntryById(ctx, entryId)
		if err != nil {
			return err
		}

		entry.Comments = append(entry.Comments, entity.LogComment{
			Id:        uuid.NewString(),
			Author:    input.Author,
			Text:      input.Text,
			CreatedAt: s.timestamp(),
		})

		return s.logEntryRepo.UpdateLogEntry(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *LogbookService) DeleteComment(ctx context.Context, entryId, commentId string) (*entity.LogEntry, error) {
	var entry *entity.LogEntry
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		entry, err = s.GetLogEntryById(ctx, entryId)
		if err != nil {
			return err
		}

		i := slices.IndexFunc(entry.Comments, func(c entity.LogComment) bool {
			return c.Id == commentId
		})
		if i < 0 {
			return ErrCommentNotFound
		}
		entry.Comments = slices.Delete(entry.Comments, i, i+1)

		return s.logEntryRepo.UpdateLogEntry(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

package memdb

import (
	"context"

	"backoffice-api/internal/entity"
)

type LogEntryRepo struct {
	*DB
}

func NewLogEntryRepo(db *DB) *LogEntryRepo {
	return &LogEntryRepo{db}
}

func (r *LogEntryRepo) CreateLogEntry(ctx context.Context, entry *entity.LogEntry) error {
	return r.write(ctx, func(s *state) error {
		return s.logEntries.insert(entry.Id, *entry)
	})
}

func (r *LogEntryRepo) GetLogEntryById(ctx context.Context, id string) (*entity.LogEntry, error) {
	var entry entity.LogEntry
	err := r.read(ctx, func(s *state) error {
		var err error
		entry, err = s.logEntries.get(id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

func (r *LogEntryRepo) GetLogEntries(ctx context.Context) ([]entity.LogEntry, error) {
	var entries []entity.LogEntry
	err := r.read(ctx, func(s *state) error {
		entries = s.logEntries.list(nil)

		return nil
	})

	return entries, err
}

func (r *LogEntryRepo) UpdateLogEntry(ctx context.Context, entry *entity.LogEntry) error {
	return r.write(ctx, func(s *state) error {
		return s.logEntries.replace(entry.Id, *entry)
	})
}

func (r *LogEntryRepo) DeleteLogEntryById(ctx context.Context, id string) error {
	return r.write(ctx, func(s *state) error {
		return s.logEntries.remove(id)
	})
}

type AnnouncementRepo struct {
	*DB
}

func NewAnnouncementRepo(db *DB) *AnnouncementRepo {
	return &AnnouncementRepo{db}
}

func (r *AnnouncementRepo) CreateAnnouncement(ctx context.Context, announcement *entity.Announcement) error {
	return r.write(ctx, func(s *state) error {
		return s.announcements.insert(announcement.Id, *announcement)
	})
}

func (r *AnnouncementRepo) GetAnnouncementById(ctx context.Context, id string) (*entity.Announcement, error) {
	var announcement entity.Announcement
	err := r.read(ctx, func(s *state) error {
		var err error
		announcement, err = s.announcements.get(id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return &announcement, nil
}

func (r *AnnouncementRepo) GetAnnouncements(ctx context.Context) ([]entity.Announcement, error) {
	var announcements []entity.Announcement
	err := r.read(ctx, func(s *state) error {
		announcements = s.announcements.list(nil)

		return nil
	})

	return announcements, err
}

func (r *AnnouncementRepo) UpdateAnnouncement(ctx context.Context, announcement *entity.Announcement) error {
	return r.write(ctx, func(s *state) error {
		return s.announcements.replace(announcement.Id, *announcement)
	})
}

func (r *AnnouncementRepo) DeleteAnnouncementById(ctx context.Context, id string) error {
	return r.write(ctx, func(s *state) error {
		return s.announcements.remove(id)
	})
}

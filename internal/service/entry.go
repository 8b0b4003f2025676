package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/millersjournal/journal/internal/model"
	"github.com/millersjournal/journal/internal/repository"
	"github.com/millersjournal/journal/internal/validation"
)

type EntryService struct {
	repo repository.EntryRepository
}

func NewEntryService(repo repository.EntryRepository) *EntryService {
	return &EntryService{
		repo: repo,
	}
}

// Sync upserts the editor's latest content for a date.
func (s *EntryService) Sync(entry *model.EntrySync) error {
	err := validation.ValidateEntrySync(entry)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	err = s.repo.Upsert(entry)
	if err != nil {
		slog.Error("last entry sync failed", "error", err, "date", entry.CreatedDate)
		return fmt.Errorf("%w: %w", ErrSyncFailed, err)
	}

	slog.Debug("entry synced", "date", entry.CreatedDate, "word_count", entry.WordCount)
	return nil
}

// Load returns the entry for dateKey, or nil when nothing was written.
func (s *EntryService) Load(dateKey string) (*model.Entry, error) {
	entry, err := s.repo.ByDate(dateKey)
	if errors.Is(err, repository.ErrEntryNotFound) {
		return nil, nil
	}
	if err != nil {
		slog.Error("entry fetch failed", "error", err, "date", dateKey)
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	return entry, nil
}

// Month lists the dates in month (YYYY-MM) that have an entry.
func (s *EntryService) Month(month string) ([]*model.MonthEntry, error) {
	_, err := model.ParseMonthKey(month)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	entries, err := s.repo.InMonth(month)
	if err != nil {
		slog.Error("entries fetch failed", "error", err, "month", month)
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	return entries, nil
}

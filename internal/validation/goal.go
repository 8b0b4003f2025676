package validation

import (
	"errors"
	"fmt"

	"github.com/millersjournal/journal/internal/model"
)

// MaxCountTarget caps a daily word target at something a person could write.
const MaxCountTarget = 100000

// ValidateCountTarget validates a goal's daily word target
func ValidateCountTarget(count int) error {
	if count <= 0 {
		return errors.New("word target must be positive")
	}
	if count > MaxCountTarget {
		return fmt.Errorf("word target is too large (max %d)", MaxCountTarget)
	}
	return nil
}

// ValidateDateRange checks both keys parse and start does not follow end.
func ValidateDateRange(start, end string) error {
	s, err := model.ParseDateKey(start)
	if err != nil {
		return errors.New("start date must be YYYY-MM-DD")
	}
	e, err := model.ParseDateKey(end)
	if err != nil {
		return errors.New("end date must be YYYY-MM-DD")
	}
	if s.After(e) {
		return errors.New("start date must not be after end date")
	}
	return nil
}

func ValidateNewGoal(goal *model.NewGoal) error {
	err := ValidateName(goal.Name)
	if err != nil {
		return err
	}
	err = ValidateCountTarget(goal.Count)
	if err != nil {
		return err
	}
	return ValidateDateRange(goal.Start, goal.End)
}

// ValidateEntrySync checks the parts of an autosave the store relies on.
func ValidateEntrySync(entry *model.EntrySync) error {
	_, err := model.ParseDateKey(entry.CreatedDate)
	if err != nil {
		return errors.New("created_date must be YYYY-MM-DD")
	}
	if entry.WordCount < 0 {
		return errors.New("word_count must not be negative")
	}
	return nil
}

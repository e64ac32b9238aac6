package practice

import "errors"

var (
	// ErrEmptyGroup is returned when a session is started on a group without questions.
	ErrEmptyGroup = errors.New("practice group has no questions")

	// ErrNoQuestions is returned when none of a group's templates resolves to a usable item.
	ErrNoQuestions = errors.New("no question in the group can be asked")

	// ErrUntranslated is returned when an item has no translation to ask about.
	ErrUntranslated = errors.New("item has no translation")

	// ErrGroupIndex is returned when a group or question position is out of range.
	ErrGroupIndex = errors.New("index out of range")

	// ErrEmptyName is returned when a group is created or renamed with an empty name.
	ErrEmptyName = errors.New("group name must be non-empty")

	// ErrPersistence wraps a failure to save the groups; the change is rolled back.
	ErrPersistence = errors.New("failed to persist practice groups")
)

package lexicon

import "errors"

var (
	// ErrNotFound is returned when a uid does not resolve to an item.
	ErrNotFound = errors.New("item not found")

	// ErrEmptyResultSet is returned when no item satisfies a query's category mask.
	ErrEmptyResultSet = errors.New("no item matches the category filter")

	// ErrPersistence wraps failures to write a snapshot. The mutation that caused it has been undone.
	ErrPersistence = errors.New("failed to persist lexicon")

	// ErrIndexOutOfRange is returned by ItemAt for a position past the end of the store.
	ErrIndexOutOfRange = errors.New("position out of range")

	// ErrInvalidItem is returned when an item has no category or no source-language form.
	ErrInvalidItem = errors.New("invalid item")
)

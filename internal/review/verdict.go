package review

import (
	"errors"
	"fmt"

	"HomeworkSentinel/internal/model"
)

// Reviewer statuses the API is known to emit.
const (
	StatusApproved  = "approved"
	StatusReviewing = "reviewing"
	StatusRejected  = "rejected"
)

// Verdicts maps each known status to its user-facing verdict text.
var Verdicts = map[string]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// NoUpdates is the message for a poll window that contains no records.
const NoUpdates = "домашних работ нет."

var (
	// ErrMissingField means a record lacks homework_name or status.
	ErrMissingField = errors.New("homework record misses required field")
	// ErrUnknownStatus means a record carries a status outside the catalog.
	ErrUnknownStatus = errors.New("unknown homework status")
)

// ParseStatus renders a homework record into the notification text.
// Both fields must be present and the status must be in the catalog;
// anything else is a bot fault, not a user notification.
func ParseStatus(hw model.Homework) (string, error) {
	if hw.Name == nil {
		return "", fmt.Errorf("%w: homework_name", ErrMissingField)
	}
	if hw.Status == nil {
		return "", fmt.Errorf("%w: status", ErrMissingField)
	}
	verdict, ok := Verdicts[*hw.Status]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, *hw.Status)
	}
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", *hw.Name, verdict), nil
}

package review

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"HomeworkSentinel/internal/model"
)

var (
	// ErrMalformed means the payload is not a JSON object at all.
	ErrMalformed = errors.New("response is not a JSON object")
	// ErrMissingKeys means homeworks or current_date is absent.
	ErrMissingKeys = errors.New("response misses required keys")
	// ErrWrongType means a required key holds the wrong JSON type.
	ErrWrongType = errors.New("response field has wrong type")
)

// CheckResponse validates a raw homework statuses payload and extracts the
// records plus the server timestamp. Every failure here is non-escalating:
// the caller logs it and keeps the from_date cursor where it was.
func CheckResponse(raw []byte) (*model.StatusPage, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	// A literal null body decodes into a nil map without an error.
	if envelope == nil {
		return nil, fmt.Errorf("%w: null", ErrMalformed)
	}

	homeworksRaw, ok := envelope["homeworks"]
	if !ok {
		return nil, fmt.Errorf("%w: homeworks", ErrMissingKeys)
	}
	dateRaw, ok := envelope["current_date"]
	if !ok {
		return nil, fmt.Errorf("%w: current_date", ErrMissingKeys)
	}

	// A literal null unmarshals into a nil slice without an error.
	if isNull(homeworksRaw) {
		return nil, fmt.Errorf("%w: homeworks is null", ErrWrongType)
	}
	var homeworks []model.Homework
	if err := json.Unmarshal(homeworksRaw, &homeworks); err != nil {
		return nil, fmt.Errorf("%w: homeworks is not a list", ErrWrongType)
	}

	if isNull(dateRaw) {
		return nil, fmt.Errorf("%w: current_date is null", ErrWrongType)
	}
	var currentDate int64
	if err := json.Unmarshal(dateRaw, &currentDate); err != nil {
		return nil, fmt.Errorf("%w: current_date is not an integer timestamp", ErrWrongType)
	}

	return &model.StatusPage{Homeworks: homeworks, CurrentDate: currentDate}, nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

package homework

import (
	"errors"
	"fmt"
)

// Status is a review verdict assigned to a homework by the Practicum API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Verdicts maps each known review status to its display sentence.
var Verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// NoStatusMessage is rendered when the API returned no homeworks for the
// requested period.
const NoStatusMessage = "Статус отсутствует"

// Recoverable errors produced while validating an API response. The poller
// matches them with errors.Is to decide that a tick failed on routine API
// noise rather than an internal fault.
var (
	ErrEmptyResponse      = errors.New("response is missing the homeworks or current_date key")
	ErrIncompleteHomework = errors.New("homework entry is missing the homework_name or status key")
	ErrUnknownStatus      = errors.New("homework status is not a known verdict")
)

// Homework is a single submission as reported by the API.
type Homework struct {
	Name   string
	Status Status
}

// StatusPage is one validated API response: homeworks updated since the
// requested watermark, newest first, plus the server's current timestamp.
type StatusPage struct {
	Homeworks   []Homework
	CurrentDate int64
}

// StatusMessage renders the notification sentence for a homework.
func StatusMessage(hw Homework) (string, error) {
	verdict, ok := Verdicts[hw.Status]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, hw.Status)
	}
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", hw.Name, verdict), nil
}

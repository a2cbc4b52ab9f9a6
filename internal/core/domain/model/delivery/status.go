package delivery

import (
	"fmt"
	"strings"

	"distributor/internal/pkg/errs"
)

// Status is the lifecycle state of a delivery. Zero is Unknown so that an uninitialised
// Status never passes validation.
type Status int

const (
	Unknown Status = iota
	Pending
	InTransit
	Delivered
	Cancelled
)

func getStatusCodes() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

func getStatusLabels() map[Status]string {
	//nolint:exhaustive // Unknown has no label
	return map[Status]string{
		Pending:   "Pendente",
		InTransit: "Em Trânsito",
		Delivered: "Entregue",
		Cancelled: "Cancelada",
	}
}

// legacyStatusCodes are the codes stored by the previous back office.
var legacyStatusCodes = map[string]Status{
	"PENDENTE":    Pending,
	"EM_TRANSITO": InTransit,
	"ENTREGUE":    Delivered,
	"CANCELADA":   Cancelled,
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, InTransit, Delivered, Cancelled}
}

// ParseStatus accepts a status code, case-insensitive, in English or in the legacy pt-BR form.
func ParseStatus(code string) (Status, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for s, c := range getStatusCodes() {
		if s != Unknown && c == code {
			return s, nil
		}
	}
	if s, ok := legacyStatusCodes[code]; ok {
		return s, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a delivery status", code))
}

func (s Status) Validate() error {
	if _, ok := getStatusLabels()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status code, e.g. "IN_TRANSIT".
func (s Status) String() string {
	if c, ok := getStatusCodes()[s]; ok {
		return c
	}
	return "UNKNOWN"
}

// Label returns the operator-facing name, e.g. "Em Trânsito".
func (s Status) Label() string {
	if l, ok := getStatusLabels()[s]; ok {
		return l
	}
	return "-"
}

// IsOpen reports whether the delivery is still expected to arrive.
func (s Status) IsOpen() bool {
	return s == Pending || s == InTransit
}

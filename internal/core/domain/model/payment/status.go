package payment

import (
	"fmt"
	"strings"

	"distributor/internal/pkg/errs"
)

// Status is the settlement state of a payment.
type Status int

const (
	UnknownStatus Status = iota
	Pending
	Paid
	Failed
)

func getStatusNames() map[Status][3]string {
	//nolint:exhaustive // UnknownStatus has no names
	return map[Status][3]string{
		Pending: {"PENDING", "PENDENTE", "Pendente"},
		Paid:    {"PAID", "PAGO", "Pago"},
		Failed:  {"FAILED", "FALHA", "Falha"},
	}
}

func Statuses() []Status {
	return []Status{Pending, Paid, Failed}
}

func ParseStatus(code string) (Status, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, s := range Statuses() {
		if names := getStatusNames()[s]; names[0] == code || names[1] == code {
			return s, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a payment status", code))
}

func (s Status) Validate() error {
	if _, ok := getStatusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

func (s Status) String() string {
	if names, ok := getStatusNames()[s]; ok {
		return names[0]
	}
	return "UNKNOWN"
}

func (s Status) Label() string {
	if names, ok := getStatusNames()[s]; ok {
		return names[2]
	}
	return "-"
}

package store

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"tally/internal/domain"
)

// ValidateName rejects names that are blank or that cannot be stored as one record.
func ValidateName(name domain.CounterName) error {
	s := string(name)
	if strings.TrimSpace(s) == "" {
		return errors.Wrap(domain.ErrInvalidArgument, "counter name must not be blank")
	}
	if strings.ContainsAny(s, fieldSep+"\r\n") {
		return errors.Wrapf(domain.ErrInvalidArgument, "counter name %q must not contain %q or line breaks", s, fieldSep)
	}
	return nil
}

// ParseValue parses a user supplied initial value.
func ParseValue(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(domain.ErrInvalidArgument, "initial value %q must be a whole number", s)
	}
	return v, nil
}

// ParseEntry splits prompt input of the form "Name|Value".
func ParseEntry(input string) (domain.CounterName, int64, error) {
	if strings.TrimSpace(input) == "" {
		return "", 0, errors.Wrap(domain.ErrInvalidArgument, "name and initial value must not be empty")
	}
	parts := strings.Split(input, fieldSep)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
		return "", 0, errors.Wrap(domain.ErrInvalidArgument, "expected the counter name and initial value as name|value")
	}
	name := domain.CounterName(parts[0])
	if err := ValidateName(name); err != nil {
		return "", 0, err
	}
	v, err := ParseValue(parts[1])
	if err != nil {
		return "", 0, err
	}
	return name, v, nil
}

package kitchen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/borgmon/kitchen-timer/pkg/models"
)

var (
	// ErrEmptyName is returned for a blank item name
	ErrEmptyName = errors.New("item name must not be empty")
	// ErrInvalidMinutes is returned when minutes are not a whole number
	// between 0 and models.MaxMinutes
	ErrInvalidMinutes = fmt.Errorf("minutes must be a whole number from 0 to %d", models.MaxMinutes)
)

// ValidateName trims name and rejects blanks
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}

// ParseMinutes parses a whole, non-negative number of minutes
func ParseMinutes(text string) (int, error) {
	minutes, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMinutes, text)
	}
	if !validMinutes(minutes) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMinutes, minutes)
	}
	return minutes, nil
}

func validMinutes(minutes int) bool {
	return minutes >= 0 && minutes <= models.MaxMinutes
}

// ParseItem validates raw form input for an add or edit request
func ParseItem(name, minutesText string) (string, int, error) {
	name, err := ValidateName(name)
	if err != nil {
		return "", 0, err
	}
	minutes, err := ParseMinutes(minutesText)
	if err != nil {
		return "", 0, err
	}
	return name, minutes, nil
}

// ParseItemSpec parses "name=minutes" as used on the command line
func ParseItemSpec(spec string) (string, int, error) {
	idx := strings.LastIndex(spec, "=")
	if idx < 0 {
		return "", 0, fmt.Errorf("item %q: expected name=minutes", spec)
	}
	name, minutes, err := ParseItem(spec[:idx], spec[idx+1:])
	if err != nil {
		return "", 0, fmt.Errorf("item %q: %w", spec, err)
	}
	return name, minutes, nil
}

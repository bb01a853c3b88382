package phone

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// Normalize parses a phone number and returns it in E.164 format.
// The default region is FR since the product targets French HORECA.
func Normalize(phone, countryCode string) (string, error) {
	if phone == "" {
		return "", fmt.Errorf("phone number cannot be empty")
	}

	if countryCode == "" {
		countryCode = "FR"
	}

	parsed, err := phonenumbers.Parse(phone, countryCode)
	if err != nil {
		return "", fmt.Errorf("failed to parse phone number: %w", err)
	}

	if !phonenumbers.IsValidNumber(parsed) {
		return "", fmt.Errorf("invalid phone number for region %s", countryCode)
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

// NormalizeOrKeep normalizes to E.164 when possible and returns the
// input untouched otherwise. Used on prospect writes so a badly
// formatted number never blocks a save.
func NormalizeOrKeep(phone, countryCode string) string {
	normalized, err := Normalize(phone, countryCode)
	if err != nil {
		return phone
	}
	return normalized
}

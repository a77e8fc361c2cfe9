package ortb

import (
	"fmt"

	"golang.org/x/text/currency"

	"github.com/prebid/ortb-builder/errortypes"
)

// exchangeSpecific is the first value of the range reserved for exchange specific extensions in
// OpenRTB and AdCOM enumerations.
const exchangeSpecific = 500

func invalid(format string, args ...interface{}) error {
	return &errortypes.InvalidRequest{Message: fmt.Sprintf(format, args...)}
}

func invalidValue(format string, args ...interface{}) error {
	return &errortypes.InvalidRequest{Message: fmt.Sprintf(format, args...), ErrorCode: errortypes.InvalidValueErrorCode}
}

func missingField(path, field string) error {
	return &errortypes.InvalidRequest{
		Message:   fmt.Sprintf("%s missing required field: %q", path, field),
		ErrorCode: errortypes.MissingRequiredFieldErrorCode,
	}
}

func warning(code int, format string, args ...interface{}) error {
	return &errortypes.Warning{Message: fmt.Sprintf(format, args...), WarningCode: code}
}

// validateCurrency requires a three letter upper case code and warns when the code is not a
// recognized ISO-4217 currency.
func validateCurrency(code, path string) []error {
	if !isCurrencyShaped(code) {
		return []error{&errortypes.InvalidRequest{
			Message:   fmt.Sprintf("%s must be a 3-letter ISO-4217 currency code, got %q", path, code),
			ErrorCode: errortypes.InvalidCurrencyErrorCode,
		}}
	}

	if _, err := currency.ParseISO(code); err != nil {
		return []error{warning(errortypes.UnrecognizedCurrencyWarningCode, "%s %q is not a recognized ISO-4217 currency code", path, code)}
	}
	return nil
}

func isCurrencyShaped(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

func validateFlag(flag *int8, path string) []error {
	if flag != nil && *flag != 0 && *flag != 1 {
		return []error{invalidValue("%s must be 0 or 1", path)}
	}
	return nil
}

func validateNonNegative(value *int64, path string) []error {
	if value != nil && *value < 0 {
		return []error{invalidValue("%s must be a non-negative number", path)}
	}
	return nil
}

func validateNonNegativeFloat(value *float64, path string) []error {
	if value != nil && *value < 0 {
		return []error{invalidValue("%s must be a non-negative number", path)}
	}
	return nil
}

// validateRange checks an optional enumerated value against its defined range. Values in the
// exchange specific range are accepted.
func validateRange(value *int64, minValue, maxValue int64, path string) []error {
	if value == nil || (*value >= minValue && *value <= maxValue) || *value >= exchangeSpecific {
		return nil
	}
	return []error{invalidValue("%s must be between %d and %d, got %d", path, minValue, maxValue, *value)}
}

// validateEnumList checks each entry of an enumerated list against its defined range. Values in
// the exchange specific range are accepted.
func validateEnumList[T ~int8 | ~int64](values []T, minValue, maxValue int64, path string) []error {
	var errL []error
	for i, v := range values {
		if (int64(v) < minValue || int64(v) > maxValue) && int64(v) < exchangeSpecific {
			errL = append(errL, invalidValue("%s[%d] must be between %d and %d, got %d", path, i, minValue, maxValue, v))
		}
	}
	return errL
}

// validateOrdering reports a single error when both bounds are set and lower exceeds upper.
func validateOrdering(lower, upper *int64, path, lowerName, upperName string) []error {
	if lower != nil && upper != nil && *lower > *upper {
		return []error{invalidValue("%s.%s (%d) must not exceed %s.%s (%d)", path, lowerName, *lower, path, upperName, *upper)}
	}
	return nil
}

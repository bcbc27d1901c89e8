package confread

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/confread/errs"
)

// Typed getters. Each one looks the parameter up with Find and converts the
// value with a deliberately restrictive grammar (no exponents, no locale
// forms, no surprises). On any failure the caller's default is returned
// together with the status error; the found value is never partially
// trusted.

// GetString returns the value of key, or defaultValue when the parameter is
// missing. The returned string is a view into the config's buffer, not a
// copy.
func (c *Config) GetString(sectionName, key, defaultValue string) (string, error) {
	value, err := c.Find(sectionName, key)
	if err != nil {
		return defaultValue, err
	}

	return value, nil
}

// GetChar returns the first byte of the value of key, or defaultValue when
// the parameter is missing. Empty values cannot occur in a loaded config
// (the parser rejects them), so a found parameter always has a first byte.
func (c *Config) GetChar(sectionName, key string, defaultValue byte) (byte, error) {
	value, err := c.Find(sectionName, key)
	if err != nil {
		return defaultValue, err
	}
	if len(value) == 0 {
		return defaultValue, errs.ErrInvalidValue
	}

	return value[0], nil
}

// GetInt returns the value of key as an int64. The value must be an
// optional leading '-' followed by one or more decimal digits and nothing
// else; anything else returns defaultValue with errs.ErrInvalidValue.
func (c *Config) GetInt(sectionName, key string, defaultValue int64) (int64, error) {
	value, err := c.Find(sectionName, key)
	if err != nil {
		return defaultValue, err
	}

	n, ok := parseIntValue(value)
	if !ok {
		return defaultValue, fmt.Errorf("%w: %q is not an integer", errs.ErrInvalidValue, value)
	}

	return n, nil
}

// GetFloat returns the value of key as a float64. The value must start with
// a digit or '-' and contain only digits and '.' thereafter; exponents and
// any other bytes return defaultValue with errs.ErrInvalidValue.
func (c *Config) GetFloat(sectionName, key string, defaultValue float64) (float64, error) {
	value, err := c.Find(sectionName, key)
	if err != nil {
		return defaultValue, err
	}

	f, ok := parseFloatValue(value)
	if !ok {
		return defaultValue, fmt.Errorf("%w: %q is not a number", errs.ErrInvalidValue, value)
	}

	return f, nil
}

// GetBool returns the value of key as a bool. "yes", "true" and "1" are
// true; "no", "false" and "0" are false; matching ignores case. Anything
// else returns defaultValue with errs.ErrInvalidValue.
func (c *Config) GetBool(sectionName, key string, defaultValue bool) (bool, error) {
	value, err := c.Find(sectionName, key)
	if err != nil {
		return defaultValue, err
	}

	switch {
	case strings.EqualFold(value, "yes"), strings.EqualFold(value, "true"), value == "1":
		return true, nil
	case strings.EqualFold(value, "no"), strings.EqualFold(value, "false"), value == "0":
		return false, nil
	default:
		return defaultValue, fmt.Errorf("%w: %q is not a boolean", errs.ErrInvalidValue, value)
	}
}

func parseIntValue(s string) (int64, bool) {
	i := 0
	if len(s) > 0 && s[0] == '-' {
		i = 1
	}
	if i == len(s) {
		return 0, false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}

	return n, true
}

func parseFloatValue(s string) (float64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	if (s[0] < '0' || s[0] > '9') && s[0] != '-' {
		return 0, false
	}
	for i := 1; i < len(s); i++ {
		if (s[i] < '0' || s[i] > '9') && s[i] != '.' {
			return 0, false
		}
	}

	// The byte scan admits shapes like "1.2.3" or a bare "-"; ParseFloat
	// rejects those.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return f, true
}

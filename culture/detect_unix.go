//go:build !windows

package culture

import (
	"errors"
	"os"

	"golang.org/x/text/language"
)

// systemCulture detects the user's culture on Unix-like systems from the
// locale environment variables, in order of precedence.
func systemCulture() (language.Tag, error) {
	for _, envVar := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		if tag, err := Parse(value); err == nil {
			return tag, nil
		}
	}

	return language.Und, errors.New("could not detect Unix locale")
}

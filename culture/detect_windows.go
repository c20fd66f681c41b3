//go:build windows

package culture

import (
	"errors"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/text/language"
)

// Windows locale names are at most LOCALE_NAME_MAX_LENGTH characters.
const localeNameMaxLength = 85

// systemCulture detects the user's culture on Windows. Environment
// variables are honored first so Unix-style overrides keep working under
// MSYS/Cygwin shells, then the Windows API is consulted.
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

	if tag, err := userDefaultLocale(); err == nil {
		return tag, nil
	}

	return language.Und, errors.New("could not detect Windows locale")
}

// userDefaultLocale calls GetUserDefaultLocaleName, which returns a BCP-47
// locale name on Vista and later.
func userDefaultLocale() (language.Tag, error) {
	kernel32 := windows.NewLazySystemDLL("kernel32.dll")
	proc := kernel32.NewProc("GetUserDefaultLocaleName")
	if err := proc.Find(); err != nil {
		return language.Und, err
	}

	buf := make([]uint16, localeNameMaxLength)
	ret, _, _ := proc.Call(
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if ret == 0 {
		return language.Und, errors.New("GetUserDefaultLocaleName failed")
	}

	return Parse(windows.UTF16ToString(buf))
}

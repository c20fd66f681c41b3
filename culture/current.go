package culture

import (
	"sync"

	"golang.org/x/text/language"
)

var (
	currentMu  sync.RWMutex
	currentTag language.Tag
	currentSet bool
)

// Current returns the process-wide display culture. The first call detects
// the system locale; if detection fails the display culture is English.
// Concurrent first calls observe the same result.
func Current() language.Tag {
	currentMu.RLock()
	if currentSet {
		tag := currentTag
		currentMu.RUnlock()
		return tag
	}
	currentMu.RUnlock()

	currentMu.Lock()
	defer currentMu.Unlock()

	if !currentSet {
		currentTag = detectCurrent()
		currentSet = true
	}
	return currentTag
}

// SetCurrent overrides the process-wide display culture. It accepts any
// culture, including the invariant root.
func SetCurrent(tag language.Tag) {
	currentMu.Lock()
	defer currentMu.Unlock()
	currentTag = tag
	currentSet = true
}

func detectCurrent() language.Tag {
	if tag, err := systemCulture(); err == nil && !IsInvariant(tag) {
		return tag
	}
	return language.English
}

package i18n

import (
	"runtime"
	"strings"
	"sync"
	"weak"

	"golang.org/x/text/language"

	"github.com/CUSTIS-public/CUSTIS.i18n/culture"
)

// The bridge associates a culture map with a plain *string by allocation
// identity, not by content. Entries live only while the keyed string is
// otherwise reachable: weak pointers key the map and a runtime cleanup
// drops the entry once the string is collected. The cache is opportunistic
// — a miss means "create fresh", never an error.
var bridgeCache sync.Map // weak.Pointer[string] -> MultiCulturalString

// AsMultiCulturalString views a plain string as a multicultural value.
// A nil pointer yields Empty. On first sight of an identity a value with
// a single entry (current display culture -> *s) is cached and returned;
// later calls on the same pointer return the associated value. Racing
// first calls all observe the same value.
func AsMultiCulturalString(s *string) MultiCulturalString {
	if s == nil {
		return Empty
	}

	key := weak.Make(s)
	if cached, ok := bridgeCache.Load(key); ok {
		return cached.(MultiCulturalString)
	}

	fresh := New(culture.Current(), *s)
	cached, loaded := bridgeCache.LoadOrStore(key, fresh)
	if !loaded {
		runtime.AddCleanup(s, evictBridgeEntry, key)
	}
	return cached.(MultiCulturalString)
}

// AsString collapses a multicultural value back to a plain string: the
// value resolved for the current display culture ("" when nothing
// resolves), returned as a freshly allocated pointer so it carries its
// own identity, with the full value cached under that identity for a
// later AsMultiCulturalString call.
func AsString(v MultiCulturalString) *string {
	rendered := strings.Clone(v.String())
	s := &rendered

	key := weak.Make(s)
	bridgeCache.Store(key, v)
	runtime.AddCleanup(s, evictBridgeEntry, key)
	return s
}

// SetLocalizedValue updates one culture entry of the value attached to s
// and round-trips through the bridge: the returned string carries the
// updated culture map for later AsMultiCulturalString calls on that exact
// pointer. A nil value removes the culture's entry.
func SetLocalizedValue(s *string, tag language.Tag, value *string) *string {
	mcs := AsMultiCulturalString(s)
	if value == nil {
		mcs = mcs.Remove(tag)
	} else {
		mcs = mcs.SetLocalized(tag, *value)
	}
	return AsString(mcs)
}

func evictBridgeEntry(key weak.Pointer[string]) {
	bridgeCache.Delete(key)
}

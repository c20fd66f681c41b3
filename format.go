package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CultureStringer is the capability interface checked by Format and Join:
// an argument implementing it renders itself for the culture whose
// template (or separator) variant is being produced. MultiCulturalString
// implements it; plain argument types get the culture's default
// formatting instead.
type CultureStringer interface {
	CultureString(tag language.Tag) string
}

// Format runs printf-style formatting once per culture present in
// template, against that culture's template string and with a printer
// bound to that culture, so numeric verbs group and separate per locale.
// The result has the same culture set as template.
func Format(template MultiCulturalString, args ...any) MultiCulturalString {
	if len(template.values) == 0 {
		return Empty
	}
	m := make(map[string]entry, len(template.values))
	for name, e := range template.values {
		printer := message.NewPrinter(e.tag)
		m[name] = entry{tag: e.tag, value: printer.Sprintf(e.value, localizeArgs(e.tag, args)...)}
	}
	return MultiCulturalString{values: m}
}

// Join joins the string renditions of args using the separator variant of
// every culture present in sep.
func Join(sep MultiCulturalString, args ...any) MultiCulturalString {
	if len(sep.values) == 0 {
		return Empty
	}
	m := make(map[string]entry, len(sep.values))
	for name, e := range sep.values {
		printer := message.NewPrinter(e.tag)
		parts := make([]string, len(args))
		for i, arg := range args {
			if cs, ok := arg.(CultureStringer); ok {
				parts[i] = cs.CultureString(e.tag)
			} else {
				parts[i] = printer.Sprint(arg)
			}
		}
		m[name] = entry{tag: e.tag, value: strings.Join(parts, e.value)}
	}
	return MultiCulturalString{values: m}
}

// localizeArgs pre-renders culture-aware arguments for one culture so the
// printer treats them as opaque strings.
func localizeArgs(tag language.Tag, args []any) []any {
	out := make([]any, len(args))
	for i, arg := range args {
		if cs, ok := arg.(CultureStringer); ok {
			out[i] = cs.CultureString(tag)
			continue
		}
		out[i] = arg
	}
	return out
}

// Package i18n holds the static UI string tables and their resolution rules.
package i18n

import (
	"fmt"
	"regexp"
)

// Params are named values substituted into {name} placeholders.
type Params map[string]any

var placeholder = regexp.MustCompile(`\{(\w+)\}`)

// Lookup returns the raw template for key. The bool is false when the
// language or the key is unknown.
func Lookup(lang Language, key Key) (string, bool) {
	table, ok := tables[lang]
	if !ok {
		return "", false
	}
	value, ok := table[key]
	return value, ok
}

// T resolves key for lang. An unresolved or empty value yields the key
// itself so missing strings stay visible. When params is non-nil every
// placeholder is replaced in a single pass; absent params become "".
func T(lang Language, key Key, params Params) string {
	value, ok := Lookup(lang, key)
	if !ok || value == "" {
		return string(key)
	}
	if params == nil {
		return value
	}
	return Interpolate(value, params)
}

// Interpolate replaces {name} placeholders. Substituted values are not
// scanned again.
func Interpolate(template string, params Params) string {
	return placeholder.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		v, ok := params[name]
		if !ok || v == nil {
			return ""
		}
		return fmt.Sprint(v)
	})
}

// Count is shorthand for templates that take a single {count}.
func Count(lang Language, key Key, n int) string {
	return T(lang, key, Params{"count": n})
}

// Translator binds a language so call sites don't repeat it.
type Translator struct {
	Lang Language
}

func (t Translator) T(key Key) string {
	return T(t.Lang, key, nil)
}

func (t Translator) Count(key Key, n int) string {
	return Count(t.Lang, key, n)
}

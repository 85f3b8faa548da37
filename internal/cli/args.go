package cli

import (
	"sort"
	"strings"
)

// PositionalKey holds the positional arguments in a raw argument set.
const PositionalKey = "_"

// Args is a normalized argument set keyed by camel-case flag name.
type Args map[string]any

// String returns the value of key as a string, or "".
func (a Args) String(key string) string {
	s, _ := a[key].(string)
	return s
}

// Bool returns the value of key as a bool, or false.
func (a Args) Bool(key string) bool {
	b, _ := a[key].(bool)
	return b
}

// Int returns the value of key as an int, or 0.
func (a Args) Int(key string) int {
	n, _ := a[key].(int)
	return n
}

// ArgsToCamelCase copies args into a new set whose keys are camel case:
// "dry-run" becomes "dryRun". PositionalKey is dropped. args is not
// modified.
//
// When several keys map to the same name, a key already written in camel
// case wins; otherwise the last key in sorted order wins.
func ArgsToCamelCase(args map[string]any) Args {
	keys := make([]string, 0, len(args))
	for key := range args {
		if key != PositionalKey {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	out := make(Args, len(keys))
	exact := make(map[string]bool, len(keys))
	for _, key := range keys {
		name := camelCase(key)
		if exact[name] {
			continue
		}
		out[name] = args[key]
		exact[name] = name == key
	}
	return out
}

// camelCase upper-cases the character after each hyphen and removes every
// hyphen. A doubled hyphen capitalizes nothing, so "foo--bar" is "foobar".
func camelCase(s string) string {
	if !strings.Contains(s, "-") {
		return s
	}

	r := []rune(s)
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(r); i++ {
		if r[i] != '-' {
			b.WriteRune(r[i])
			continue
		}
		if i+1 >= len(r) {
			continue
		}
		i++
		if r[i] != '-' {
			b.WriteString(strings.ToUpper(string(r[i])))
		}
	}

	return b.String()
}

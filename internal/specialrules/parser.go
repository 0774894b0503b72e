// Package specialrules splits rule strings such as
// "Ambush, Tough(3), Jetpacks(Flying, Ambush)" into their terms.
//
// Every function makes one left-to-right pass tracking parenthesis depth.
// Unbalanced input is tolerated: a stray ')' never takes the depth below 0
// and an unclosed group is flushed at the end of the string.
package specialrules

import (
	"regexp"
	"strings"
)

var quantityPrefix = regexp.MustCompile(`^\d+x `)

// StripQuantityPrefix removes a leading "Nx " count from a term
func StripQuantityPrefix(s string) string {
	return quantityPrefix.ReplaceAllString(s, "")
}

// AllIndividual returns every keyword at any nesting depth, in order of
// appearance. Numeric-only tokens and "Nx " prefixes are dropped.
//
//	AllIndividual("Ambush(Blast, AP(4))") == []string{"Ambush", "Blast", "AP"}
func AllIndividual(s string) []string {
	var (
		out   []string
		cur   strings.Builder
		depth int
	)
	flush := func() {
		tok := StripQuantityPrefix(strings.TrimSpace(cur.String()))
		cur.Reset()
		if tok == "" || isNumeric(tok) {
			return
		}
		out = append(out, tok)
	}

	for _, r := range s {
		switch r {
		case '(':
			flush()
			depth++
		case ')':
			flush()
			if depth > 0 {
				depth--
			}
		case ',':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()

	return out
}

// TopLevel returns the depth-0 comma separated terms, each kept whole with
// its own parenthetical. Commas inside parentheses never split. A term whose
// parenthetical is empty is returned bare.
//
//	TopLevel("Ambush, 2x Blast(AP(4))") == []string{"Ambush", "Blast(AP(4))"}
func TopLevel(s string) []string {
	var out []string
	for _, term := range splitTopLevel(s) {
		term = StripQuantityPrefix(term)
		if name, inner, ok := cutGroup(term); ok && strings.TrimSpace(inner) == "" {
			term = name
		}
		if term != "" {
			out = append(out, term)
		}
	}
	return out
}

// DefinitionsByName maps each top-level term's name to its parenthetical,
// parentheses included. Terms without one map to "".
//
//	DefinitionsByName("Pulse Carbine (18'', A2), Shield") ==
//	    map[string]string{"Pulse Carbine": "(18'', A2)", "Shield": ""}
func DefinitionsByName(s string) map[string]string {
	out := make(map[string]string)
	for _, term := range splitTopLevel(s) {
		term = StripQuantityPrefix(term)
		idx := strings.IndexRune(term, '(')
		if idx < 0 {
			out[term] = ""
			continue
		}
		name := strings.TrimSpace(term[:idx])
		if name == "" {
			continue
		}
		out[name] = strings.TrimSpace(term[idx:])
	}
	return out
}

// splitTopLevel does the depth-0 comma split and trims each term
func splitTopLevel(s string) []string {
	var (
		out   []string
		cur   strings.Builder
		depth int
	)
	flush := func() {
		if t := strings.TrimSpace(cur.String()); t != "" {
			out = append(out, t)
		}
		cur.Reset()
	}

	for _, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			if depth == 0 {
				continue
			}
			depth--
		case r == ',' && depth == 0:
			flush()
			continue
		}
		cur.WriteRune(r)
	}
	flush()

	return out
}

// cutGroup splits "Name(inner)" into its name and the text between the first
// '(' and the last ')'. An unclosed group runs to the end of the term.
func cutGroup(term string) (name, inner string, ok bool) {
	open := strings.IndexRune(term, '(')
	if open < 0 {
		return term, "", false
	}
	name = strings.TrimSpace(term[:open])
	rest := term[open+1:]
	if end := strings.LastIndex(rest, ")"); end >= 0 {
		rest = rest[:end]
	}
	return name, rest, true
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

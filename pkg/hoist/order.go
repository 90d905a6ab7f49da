package hoist

import (
	"cmp"
	"strings"
)

// compareEntries orders entries by priority ascending, then by sequence id
// in natural order. Sequence ids are unique within a registry, so the order
// is total over its live entries.
func compareEntries(a, b Entry) int {
	if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
		return c
	}
	return naturalCompare(a.SequenceID, b.SequenceID)
}

// naturalCompare compares strings chunk by chunk, treating runs of ASCII
// digits as numbers: "lift-2" sorts before "lift-10".
func naturalCompare(a, b string) int {
	for a != "" && b != "" {
		ca, restA := nextChunk(a)
		cb, restB := nextChunk(b)
		if isDigit(ca[0]) && isDigit(cb[0]) {
			if c := compareDigits(ca, cb); c != 0 {
				return c
			}
		} else if c := strings.Compare(ca, cb); c != 0 {
			return c
		}
		a, b = restA, restB
	}
	return cmp.Compare(len(a), len(b))
}

// nextChunk splits off the leading run of digits or non-digits.
func nextChunk(s string) (chunk, rest string) {
	digits := isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == digits {
		i++
	}
	return s[:i], s[i:]
}

// compareDigits compares two digit runs by numeric value without parsing,
// so arbitrarily long runs cannot overflow. Equal values with different
// zero padding order the shorter run first.
func compareDigits(a, b string) int {
	ta := strings.TrimLeft(a, "0")
	tb := strings.TrimLeft(b, "0")
	if c := cmp.Compare(len(ta), len(tb)); c != 0 {
		return c
	}
	if c := strings.Compare(ta, tb); c != 0 {
		return c
	}
	return cmp.Compare(len(a), len(b))
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

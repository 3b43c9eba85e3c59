package domain

import (
	"regexp"
	"strings"
)

// PairSeparator joins the phonological forms of a pair before constraints
// are matched against it. Constraints use it to anchor word boundaries.
const PairSeparator = "#"

// Preference is the direction a constraint pushes a pair in.
type Preference int

// Available preferences.
const (
	// PreferReverse means only the realised order violates the constraint.
	PreferReverse Preference = -1

	// NoPreference means both orders, or neither, violate the constraint.
	NoPreference Preference = 0

	// PreferRealised means only the reversed order violates the constraint.
	PreferRealised Preference = 1
)

// Constraint is a named phonological markedness constraint.
// A form violates the constraint when Pattern matches anywhere in it.
type Constraint struct {
	// Name is the column name of the constraint in the coded output.
	Name string

	// Pattern is the compiled regular expression.
	Pattern *regexp.Regexp
}

// Violates returns true if the joined form violates the constraint.
func (c Constraint) Violates(form string) bool {
	return c.Pattern != nil && c.Pattern.MatchString(form)
}

// Prefer compares the realised and reversed forms of a pair.
func (c Constraint) Prefer(realised, reversed string) Preference {
	a := c.Violates(realised)
	b := c.Violates(reversed)
	switch {
	case b && !a:
		return PreferRealised
	case a && !b:
		return PreferReverse
	default:
		return NoPreference
	}
}

// CleanPForm trims syllable separators and then spaces from a phonological form.
func CleanPForm(pform string) string {
	return strings.Trim(strings.Trim(pform, "."), " ")
}

// Syllables returns the number of syllables in a dot-separated phonological form.
func Syllables(pform string) int {
	return strings.Count(CleanPForm(pform), ".") + 1
}

// JoinPair returns the realised and reversed joined forms of a pair.
func JoinPair(pforms [2]string) (realised, reversed string) {
	first := CleanPForm(pforms[0])
	second := CleanPForm(pforms[1])
	return first + PairSeparator + second, second + PairSeparator + first
}

// CodedPair is a pair token with its constraint codes.
// Every code is signed so that positive values favour the prenominal order.
type CodedPair struct {
	// Pair is the coded pair token.
	Pair PairToken

	// Codes maps constraint name to its signed code.
	Codes map[string]int

	// Length is the signed code of the short-before-long preference.
	Length int

	// RelativeFrequency is the share of the pair type realised prenominally.
	RelativeFrequency float64

	// Outcome is 1 for prenominal and 0 for postnominal.
	Outcome int
}

// Fixed returns true if the pair type only ever occurs in one order.
func (c CodedPair) Fixed() bool {
	return c.RelativeFrequency == 0 || c.RelativeFrequency == 1
}

// Table is a rectangular text table written as CSV.
type Table struct {
	// Header holds the column names.
	Header []string

	// Rows holds one slice per row, aligned with Header.
	Rows [][]string
}

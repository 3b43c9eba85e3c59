package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanPForm(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ka.za", "ka.za"},
		{".ka.za.", "ka.za"},
		{" ka.za ", "ka.za"},
		{". ka.za .", "ka.za"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanPForm(tt.in), tt.in)
	}
}

func TestSyllables(t *testing.T) {
	assert.Equal(t, 1, Syllables("big"))
	assert.Equal(t, 2, Syllables("ka.za"))
	assert.Equal(t, 3, Syllables(".gran.di.o."))
}

func TestJoinPair(t *testing.T) {
	realised, reversed := JoinPair([2]string{"ka.za.", " gran.de"})
	assert.Equal(t, "ka.za#gran.de", realised)
	assert.Equal(t, "gran.de#ka.za", reversed)
}

// TestConstraint_Prefer tests the four violation combinations
func TestConstraint_Prefer(t *testing.T) {
	// vowel hiatus across the word boundary
	c := Constraint{Name: "hiatus", Pattern: regexp.MustCompile(`[aeiou]#[aeiou]`)}

	tests := []struct {
		name     string
		realised string
		reversed string
		want     Preference
	}{
		{"only reversed violates", "kaz#gran", "gra#aka", PreferRealised},
		{"only realised violates", "ka#aka", "aka#tak", PreferReverse},
		{"both violate", "ka#a", "a#a", NoPreference},
		{"neither violates", "kat#gran", "gran#kat", NoPreference},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Prefer(tt.realised, tt.reversed))
		})
	}
}

func TestConstraint_NilPattern(t *testing.T) {
	c := Constraint{Name: "empty"}
	assert.False(t, c.Violates("a#a"))
	assert.Equal(t, NoPreference, c.Prefer("a#a", "a#a"))
}

func TestCodedPair_Fixed(t *testing.T) {
	assert.True(t, CodedPair{RelativeFrequency: 0}.Fixed())
	assert.True(t, CodedPair{RelativeFrequency: 1}.Fixed())
	assert.False(t, CodedPair{RelativeFrequency: 0.5}.Fixed())
}

func TestOrderStats(t *testing.T) {
	s := OrderStats{Lemma: "grande", Prenominal: 3, Postnominal: 1}
	assert.Equal(t, 4, s.Total())
	assert.InDelta(t, 0.75, s.PrenominalRate(), 1e-12)
	assert.True(t, s.IsFlexible())

	fixed := OrderStats{Lemma: "rojo", Postnominal: 5}
	assert.Zero(t, fixed.PrenominalRate())
	assert.False(t, fixed.IsFlexible())

	assert.Zero(t, OrderStats{}.PrenominalRate())
}

func TestRunSummary_Clamped(t *testing.T) {
	assert.True(t, RunSummary{Dimensions: 3, RequestedDimensions: 128}.Clamped())
	assert.False(t, RunSummary{Dimensions: 3, RequestedDimensions: 3}.Clamped())
}

func TestStageResult_DroppedShare(t *testing.T) {
	assert.InDelta(t, 0.25, StageResult{Input: 8, Dropped: 2}.DroppedShare(), 1e-12)
	assert.Zero(t, StageResult{}.DroppedShare())
}

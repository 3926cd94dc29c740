package demo

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tenDigits = regexp.MustCompile(`^[0-9]{10}$`)

func fixedClock() time.Time {
	return time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
}

func TestGenerate_FieldShapes(t *testing.T) {
	g := NewGenerator(WithSource(rand.NewPCG(1, 2)), WithClock(fixedClock))

	books := g.Generate(DefaultSampleCount)

	require.Len(t, books, DefaultSampleCount)
	seen := make(map[string]bool)
	for _, b := range books {
		assert.Regexp(t, tenDigits, b.ISBN)
		assert.False(t, seen[b.ISBN], "duplicate isbn %s", b.ISBN)
		seen[b.ISBN] = true

		year, err := strconv.Atoi(b.PublicationYear)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, year, 2006)
		assert.LessOrEqual(t, year, 2026)

		assert.Contains(t, authors, b.Author)
		assert.Contains(t, genres, b.Genre)

		idx := strings.LastIndex(b.Title, " ")
		require.Positive(t, idx)
		assert.Contains(t, titles, b.Title[:idx])
		n, err := strconv.Atoi(b.Title[idx+1:])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 5)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := NewGenerator(WithSource(rand.NewPCG(7, 7)), WithClock(fixedClock)).Generate(10)
	b := NewGenerator(WithSource(rand.NewPCG(7, 7)), WithClock(fixedClock)).Generate(10)
	assert.Equal(t, a, b)
}

func TestGenerate_NonPositive(t *testing.T) {
	g := NewGenerator()
	assert.Empty(t, g.Generate(0))
	assert.Empty(t, g.Generate(-3))
}

func TestGenerate_CoversYearBounds(t *testing.T) {
	g := NewGenerator(WithSource(rand.NewPCG(3, 4)), WithClock(fixedClock))

	years := make(map[string]bool)
	for _, b := range g.Generate(2000) {
		years[b.PublicationYear] = true
	}
	assert.True(t, years["2006"], "lower bound never generated")
	assert.True(t, years["2026"], "upper bound never generated")
	assert.Len(t, years, YearSpan+1)
}

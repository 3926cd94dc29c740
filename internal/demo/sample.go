// Package demo generates sample catalog records.
package demo

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/mrlokans/shelf/internal/entities"
)

// DefaultSampleCount is the batch size used by "Add Sample Books".
const DefaultSampleCount = 50

// YearSpan is how many years back a sample publication year may go.
const YearSpan = 20

const isbnDigits = 10

var (
	titles = []string{
		"The Art of Programming", "Digital Fortress", "The Silent Patient",
		"The Midnight Library", "Atomic Habits", "Deep Learning Basics",
		"Python Mastery", "Data Science 101", "Web Development Guide",
		"Artificial Intelligence",
	}

	authors = []string{
		"John Smith", "Emma Wilson", "Michael Brown", "Sarah Davis",
		"James Johnson", "Robert Martin", "David Miller", "Lisa Anderson",
	}

	genres = []string{
		"Programming", "Technology", "Computer Science", "Software Development",
		"Data Science", "Web Development", "Artificial Intelligence",
	}
)

// Generator picks sample books uniformly from fixed lists.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithSource makes the generator deterministic.
func WithSource(src rand.Source) GeneratorOption {
	return func(g *Generator) { g.rng = rand.New(src) }
}

// WithClock overrides the clock used to compute the current year.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) { g.now = now }
}

func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns n books. ISBNs are unique within the batch.
func (g *Generator) Generate(n int) []entities.Book {
	if n <= 0 {
		return nil
	}

	currentYear := g.now().Year()
	seen := make(map[string]struct{}, n)
	books := make([]entities.Book, 0, n)

	for len(books) < n {
		isbn := g.isbn()
		if _, dup := seen[isbn]; dup {
			continue
		}
		seen[isbn] = struct{}{}

		books = append(books, entities.Book{
			Title:           titles[g.rng.IntN(len(titles))] + " " + strconv.Itoa(1+g.rng.IntN(5)),
			Author:          authors[g.rng.IntN(len(authors))],
			ISBN:            isbn,
			Genre:           genres[g.rng.IntN(len(genres))],
			PublicationYear: strconv.Itoa(currentYear - YearSpan + g.rng.IntN(YearSpan+1)),
		})
	}
	return books
}

func (g *Generator) isbn() string {
	var b strings.Builder
	b.Grow(isbnDigits)
	for i := 0; i < isbnDigits; i++ {
		b.WriteByte(byte('0' + g.rng.IntN(10)))
	}
	return b.String()
}

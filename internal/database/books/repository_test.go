package books_test

import (
	"context"
	"math/rand/v2"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mrlokans/shelf/internal/database"
	"github.com/mrlokans/shelf/internal/database/books"
	"github.com/mrlokans/shelf/internal/demo"
	"github.com/mrlokans/shelf/internal/entities"
)

var dune = entities.Book{
	Title:           "Dune",
	Author:          "Frank Herbert",
	ISBN:            "1234567890",
	Genre:           "Sci-Fi",
	PublicationYear: "1965",
}

func setupTestRepo(t *testing.T) *books.Repository {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "library.db"), database.WithLogLevel(gormlogger.Silent))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db.Books()
}

func TestRepository_InsertThenList(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	book := dune
	require.NoError(t, repo.Insert(ctx, &book))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff([]entities.Book{dune}, all); diff != "" {
		t.Errorf("ListAll mismatch (-want +got):\n%s", diff)
	}
}

func TestRepository_InsertDuplicateKeepsFirst(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	first := dune
	require.NoError(t, repo.Insert(ctx, &first))

	second := entities.Book{Title: "Other", Author: "Someone", ISBN: dune.ISBN, Genre: "Drama", PublicationYear: "2001"}
	err := repo.Insert(ctx, &second)

	require.Error(t, err)
	assert.ErrorIs(t, err, books.ErrDuplicateKey)
	assert.False(t, books.Succeeded(err))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff([]entities.Book{dune}, all); diff != "" {
		t.Errorf("first record changed (-want +got):\n%s", diff)
	}
}

func TestRepository_InsertRequiresTitleAndAuthor(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	tests := []struct {
		name string
		book entities.Book
	}{
		{"empty title", entities.Book{Author: "A", ISBN: "1"}},
		{"empty author", entities.Book{Title: "T", ISBN: "2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Insert(ctx, &tt.book)
			assert.ErrorIs(t, err, books.ErrInvalidRecord)
		})
	}

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRepository_OptionalFieldsMayBeEmpty(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	book := entities.Book{Title: "Untitled", Author: "Anon", ISBN: "42"}
	require.NoError(t, repo.Insert(ctx, &book))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, book, all[0])
}

func TestRepository_DeleteTwice(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	book := dune
	require.NoError(t, repo.Insert(ctx, &book))

	require.NoError(t, repo.Delete(ctx, dune.ISBN))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	err = repo.Delete(ctx, dune.ISBN)
	assert.ErrorIs(t, err, books.ErrNotFound)
	assert.Equal(t, books.OutcomeNotFound, books.Classify(err))
}

func TestRepository_DeleteLeavesOthers(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	other := entities.Book{Title: "Emma", Author: "Jane Austen", ISBN: "0000000001"}
	first := dune
	require.NoError(t, repo.Insert(ctx, &first))
	require.NoError(t, repo.Insert(ctx, &other))

	require.NoError(t, repo.Delete(ctx, dune.ISBN))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entities.Book{other}, all)
}

func TestRepository_InsertManySamples(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	now := time.Now()
	gen := demo.NewGenerator(demo.WithSource(rand.NewPCG(11, 13)), demo.WithClock(func() time.Time { return now }))
	require.NoError(t, repo.InsertMany(ctx, gen.Generate(50)))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 50)

	isbn := regexp.MustCompile(`^[0-9]{10}$`)
	for _, b := range all {
		assert.Regexp(t, isbn, b.ISBN)
		year, err := strconv.Atoi(b.PublicationYear)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, year, now.Year()-20)
		assert.LessOrEqual(t, year, now.Year())
	}
}

func TestRepository_InsertManyIsAllOrNothing(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	existing := dune
	require.NoError(t, repo.Insert(ctx, &existing))

	batch := []entities.Book{
		{Title: "A", Author: "B", ISBN: "1111111111"},
		{Title: "Clash", Author: "C", ISBN: dune.ISBN},
		{Title: "D", Author: "E", ISBN: "2222222222"},
	}
	err := repo.InsertMany(ctx, batch)
	assert.ErrorIs(t, err, books.ErrDuplicateKey)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entities.Book{dune}, all)
}

func TestRepository_InsertManyDuplicateWithinBatch(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	batch := []entities.Book{
		{Title: "A", Author: "B", ISBN: "3333333333"},
		{Title: "A again", Author: "B", ISBN: "3333333333"},
	}
	err := repo.InsertMany(ctx, batch)
	assert.ErrorIs(t, err, books.ErrDuplicateKey)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRepository_InsertManyRejectsInvalidRecord(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	batch := []entities.Book{
		{Title: "A", Author: "B", ISBN: "4444444444"},
		{Title: "", Author: "B", ISBN: "5555555555"},
	}
	err := repo.InsertMany(ctx, batch)
	assert.ErrorIs(t, err, books.ErrInvalidRecord)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRepository_InsertManyEmpty(t *testing.T) {
	repo := setupTestRepo(t)
	assert.NoError(t, repo.InsertMany(context.Background(), nil))
}

func TestRepository_StoresTextVerbatim(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	book := entities.Book{
		Title:           "  Leading and trailing  ",
		Author:          "Čapek, Karel",
		ISBN:            "978-0-14-118776-1",
		Genre:           "SCI-fi\tclassic",
		PublicationYear: "circa 1920",
	}
	want := book
	require.NoError(t, repo.Insert(ctx, &book))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	if diff := cmp.Diff(want, all[0]); diff != "" {
		t.Errorf("record not stored verbatim (-want +got):\n%s", diff)
	}
}

func TestRepository_ListPreservesInsertionOrder(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	var want []entities.Book
	for _, isbn := range []string{"9", "1", "5"} {
		b := entities.Book{Title: "T" + isbn, Author: "A", ISBN: isbn}
		require.NoError(t, repo.Insert(ctx, &b))
		want = append(want, b)
	}

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, all)
}

func TestRepository_ExampleScenario(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	book := dune
	assert.True(t, books.Succeeded(repo.Insert(ctx, &book)))

	all, err = repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entities.Book{dune}, all)

	assert.True(t, books.Succeeded(repo.Delete(ctx, "1234567890")))

	all, err = repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

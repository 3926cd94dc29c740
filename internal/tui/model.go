// Package tui is the terminal front end of the catalog: a form for new
// books, a search box, and a table of stored books.
//
// The model calls the store synchronously from Update and reloads the
// whole table after every successful mutation. Search only filters rows
// already loaded.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/mrlokans/shelf/internal/catalog"
	"github.com/mrlokans/shelf/internal/database/books"
	"github.com/mrlokans/shelf/internal/entities"
)

// Store is the subset of the books repository the shell uses.
type Store interface {
	Insert(ctx context.Context, book *entities.Book) error
	InsertMany(ctx context.Context, batch []entities.Book) error
	ListAll(ctx context.Context) ([]entities.Book, error)
	Delete(ctx context.Context, isbn string) error
}

// SampleSource produces sample books for the "add samples" action.
type SampleSource interface {
	Generate(n int) []entities.Book
}

// Form field indexes, in display order.
const (
	fieldTitle = iota
	fieldAuthor
	fieldISBN
	fieldGenre
	fieldYear
	fieldCount
)

// Focus positions after the form fields.
const (
	focusSearch = fieldCount + iota
	focusTable
	focusCount
)

var fieldLabels = [fieldCount]string{"Title:", "Author:", "ISBN:", "Genre:", "Pub. Year:"}

const banner = "BOOK CATALOG"

// Config carries the shell's collaborators.
type Config struct {
	Store       Store
	Samples     SampleSource
	SampleCount int
	Logger      *zap.Logger
}

// Model is the bubbletea model of the catalog shell.
type Model struct {
	ctx         context.Context
	store       Store
	samples     SampleSource
	sampleCount int
	logger      *zap.Logger

	inputs [fieldCount]textinput.Model
	search textinput.Model
	table  table.Model
	help   help.Model
	keys   keyMap
	styles Styles
	focus  int

	books   []entities.Book // everything returned by the last ListAll
	visible []entities.Book // books after the search filter, in table order

	status    string
	statusErr bool
}

// New builds the shell and loads the current catalog.
func New(ctx context.Context, cfg Config) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	m := Model{
		ctx:         ctx,
		store:       cfg.Store,
		samples:     cfg.Samples,
		sampleCount: cfg.SampleCount,
		logger:      logger,
		help:        help.New(),
		keys:        defaultKeyMap(),
		styles:      DefaultStyles(),
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 256
		ti.Width = 40
		m.inputs[i] = ti
	}
	m.inputs[fieldYear].CharLimit = 16

	m.search = textinput.New()
	m.search.Placeholder = "Search books..."
	m.search.Width = 40

	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "Title", Width: 28},
			{Title: "Author", Width: 18},
			{Title: "ISBN", Width: 14},
			{Title: "Genre", Width: 22},
			{Title: "Publication Year", Width: 16},
		}),
		table.WithHeight(12),
	)

	m.setFocus(fieldTitle)
	m.reload()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus((m.focus + 1) % focusCount)
		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
		case key.Matches(msg, m.keys.Clear):
			m.clearForm()
			return m, m.setFocus(fieldTitle)
		case key.Matches(msg, m.keys.Samples):
			m.addSamples()
			return m, nil
		case key.Matches(msg, m.keys.Delete):
			m.deleteSelected()
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			if m.focus < fieldCount {
				if m.addBook() {
					return m, m.setFocus(fieldTitle)
				}
				return m, nil
			}
			if m.focus == focusSearch {
				return m, m.setFocus(focusTable)
			}
		}
	}

	var cmd tea.Cmd
	switch {
	case m.focus < fieldCount:
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	case m.focus == focusSearch:
		m.search, cmd = m.search.Update(msg)
		m.applyFilter()
	default:
		m.table, cmd = m.table.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Banner.Render(banner))
	b.WriteString("\n")

	for i := range m.inputs {
		b.WriteString(m.label(fieldLabels[i], m.focus == i))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.label("Search:", m.focus == focusSearch))
	b.WriteString(m.search.View())
	b.WriteString("\n")

	b.WriteString(m.styles.Table.Render(m.table.View()))
	b.WriteString("\n")

	counts := fmt.Sprintf("%d of %d books", len(m.visible), len(m.books))
	if m.status != "" {
		style := m.styles.StatusOK
		if m.statusErr {
			style = m.styles.StatusError
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, counts, "  ", style.Render(m.status)))
	} else {
		b.WriteString(counts)
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) label(text string, focused bool) string {
	if focused {
		return m.styles.FocusedLabel.Render(text)
	}
	return m.styles.Label.Render(text)
}

// setFocus moves keyboard focus, blurring every other component.
func (m *Model) setFocus(target int) tea.Cmd {
	m.focus = target

	var cmd tea.Cmd
	for i := range m.inputs {
		if i == target {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	if target == focusSearch {
		cmd = m.search.Focus()
	} else {
		m.search.Blur()
	}
	if target == focusTable {
		m.table.Focus()
	} else {
		m.table.Blur()
	}
	return cmd
}

func (m *Model) formBook() entities.Book {
	return entities.Book{
		Title:           m.inputs[fieldTitle].Value(),
		Author:          m.inputs[fieldAuthor].Value(),
		ISBN:            m.inputs[fieldISBN].Value(),
		Genre:           m.inputs[fieldGenre].Value(),
		PublicationYear: m.inputs[fieldYear].Value(),
	}
}

func (m *Model) clearForm() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
}

// addBook inserts the form contents. The form is cleared only on success.
func (m *Model) addBook() bool {
	book := m.formBook()
	if err := m.store.Insert(m.ctx, &book); err != nil {
		m.fail("add "+book.ISBN, err)
		return false
	}
	m.logger.Info("Book added", zap.String("isbn", book.ISBN), zap.String("title", book.Title))
	m.clearForm()
	if m.reload() {
		m.succeed(fmt.Sprintf("Added %q", book.Title))
	}
	return true
}

func (m *Model) addSamples() {
	if m.samples == nil || m.sampleCount <= 0 {
		return
	}
	batch := m.samples.Generate(m.sampleCount)
	if err := m.store.InsertMany(m.ctx, batch); err != nil {
		m.fail("add samples", err)
		return
	}
	m.logger.Info("Sample books added", zap.Int("count", len(batch)))
	if m.reload() {
		m.succeed(fmt.Sprintf("Added %d sample books", len(batch)))
	}
}

func (m *Model) deleteSelected() {
	row := m.table.Cursor()
	if row < 0 || row >= len(m.visible) {
		return
	}
	isbn := m.visible[row].ISBN
	if err := m.store.Delete(m.ctx, isbn); err != nil {
		m.fail("delete "+isbn, err)
		return
	}
	m.logger.Info("Book deleted", zap.String("isbn", isbn))
	if m.reload() {
		m.succeed("Deleted " + isbn)
	}
}

// reload replaces the loaded rows with a fresh ListAll. On failure the
// previous rows stay on screen and the status line reports the error.
func (m *Model) reload() bool {
	all, err := m.store.ListAll(m.ctx)
	if err != nil {
		m.fail("load books", err)
		return false
	}
	m.books = all
	m.applyFilter()
	return true
}

func (m *Model) applyFilter() {
	m.visible = catalog.Filter(m.books, m.search.Value())

	rows := make([]table.Row, len(m.visible))
	for i, b := range m.visible {
		rows[i] = table.Row(b.Fields())
	}
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (m *Model) fail(op string, err error) {
	outcome := books.Classify(err)
	m.logger.Warn("Catalog operation failed",
		zap.String("op", op),
		zap.Stringer("outcome", outcome),
		zap.Error(err))
	m.status = fmt.Sprintf("Could not %s: %s", op, outcome)
	m.statusErr = true
}

func (m *Model) succeed(msg string) {
	m.status = msg
	m.statusErr = false
}

// Run starts the shell on the terminal and blocks until the user quits.
func Run(ctx context.Context, cfg Config) error {
	p := tea.NewProgram(New(ctx, cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

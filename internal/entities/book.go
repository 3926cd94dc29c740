package entities

// Book is one row of the catalog, keyed by ISBN.
//
// Every column is TEXT and stored verbatim. PublicationYear is free-form and
// never parsed as a number or date.
type Book struct {
	Title           string `gorm:"column:title;type:text;not null" json:"title"`
	Author          string `gorm:"column:author;type:text;not null" json:"author"`
	ISBN            string `gorm:"column:isbn;type:text;primaryKey;autoIncrement:false" json:"isbn"`
	Genre           string `gorm:"column:genre;type:text" json:"genre,omitempty"`
	PublicationYear string `gorm:"column:pub_year;type:text" json:"publication_year,omitempty"`
}

// TableName pins the table to "books" regardless of gorm naming strategy.
func (Book) TableName() string {
	return "books"
}

// Fields returns the record's columns in table order.
func (b Book) Fields() []string {
	return []string{b.Title, b.Author, b.ISBN, b.Genre, b.PublicationYear}
}

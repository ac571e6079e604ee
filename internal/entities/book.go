package entities

type Book struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Author       string    `json:"author"`
	Description  string    `json:"description"`
	CoverImage   string    `json:"coverImage"`
	PublishYear  int       `json:"publishYear"`
	PageCount    int       `json:"pageCount"`
	Genres       []string  `json:"genres"`
	Rating       float64   `json:"rating"` // one decimal, mean of all user ratings
	RatingsCount int       `json:"ratingsCount"`
	Comments     []Comment `json:"comments"`
	Content      string    `json:"content,omitempty"`
}

// Comment is owned by the remote API; books only cache the latest fetch.
type Comment struct {
	ID       int64  `json:"id"`
	BookID   int    `json:"bookId"`
	UserID   int    `json:"userId"`
	UserName string `json:"userName,omitempty"`
	Author   string `json:"author"`
	Text     string `json:"text"`
	Date     string `json:"date"`
}

// Clone returns a deep copy of the book.
func (b Book) Clone() Book {
	c := b
	c.Genres = cloneSlice(b.Genres)
	c.Comments = cloneSlice(b.Comments)
	return c
}

// HasGenre reports whether the book is tagged with genre.
func (b *Book) HasGenre(genre string) bool {
	for _, g := range b.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

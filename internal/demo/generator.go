package demo

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/mrlokans/bookshelf/internal/entities"
)

const (
	bookCount       = 30
	charsPerPage    = 2000
	descriptionSize = 300
	isoMillis       = "2006-01-02T15:04:05.000Z07:00"
)

// Generator produces the demo roster and catalog. Two generators with the same
// seed and clock produce identical output.
type Generator struct {
	rng            *rand.Rand
	now            func() time.Time
	includeContent bool
}

type Option func(*Generator)

// WithClock fixes the reference time for comment dates.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithContent controls whether books carry their full text. Full text runs to
// about a megabyte per book.
func WithContent(include bool) Option {
	return func(g *Generator) {
		g.includeContent = include
	}
}

func NewGenerator(seed int64, opts ...Option) *Generator {
	g := &Generator{
		rng:            rand.New(rand.NewSource(seed)),
		now:            time.Now,
		includeContent: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateUsers returns the admin and two regular users with their reading history.
func (g *Generator) GenerateUsers() []entities.User {
	return []entities.User{
		{
			ID:              1,
			Name:            "Администратор",
			Username:        "admin",
			Password:        "admin",
			Role:            entities.UserRoleAdmin,
			PreferredGenres: g.pickGenres(5),
			Favorites:       []int{1, 3, 5},
			ReadLater:       []int{2, 4, 6},
			ReadBooks:       []int{7, 8, 9},
			ReadingProgress: []entities.ReadingProgress{
				{BookID: 7, CurrentPage: 340, Progress: 100, StartDate: "2024-06-01T10:00:00Z"},
				{BookID: 8, CurrentPage: 250, Progress: 100, StartDate: "2024-06-10T15:30:00Z"},
				{BookID: 9, CurrentPage: 180, Progress: 100, StartDate: "2024-06-15T09:45:00Z"},
				{BookID: 1, CurrentPage: 120, Progress: 40, StartDate: "2024-06-20T14:20:00Z"},
			},
			Ratings: []entities.BookRating{
				{BookID: 7, Rating: 5, Date: "2024-06-05T18:30:00Z"},
				{BookID: 8, Rating: 4, Date: "2024-06-12T11:20:00Z"},
				{BookID: 9, Rating: 5, Date: "2024-06-16T20:15:00Z"},
			},
			Stats: entities.UserStats{
				TotalBooksRead: 3,
				TotalPagesRead: 770,
				PagesReadByGenre: map[string]int{
					"Фантастика": 340,
					"Детектив":   250,
					"Роман":      180,
				},
			},
		},
		{
			ID:              2,
			Name:            "Анна Смирнова",
			Username:        "user1",
			Password:        "password",
			Role:            entities.UserRoleUser,
			PreferredGenres: g.pickGenres(3),
			Favorites:       []int{2, 6, 10},
			ReadLater:       []int{3, 7, 11},
			ReadBooks:       []int{12, 14},
			ReadingProgress: []entities.ReadingProgress{
				{BookID: 12, CurrentPage: 320, Progress: 100, StartDate: "2024-05-20T08:15:00Z"},
				{BookID: 14, CurrentPage: 270, Progress: 100, StartDate: "2024-06-02T13:40:00Z"},
				{BookID: 2, CurrentPage: 90, Progress: 30, StartDate: "2024-06-18T19:10:00Z"},
			},
			Ratings: []entities.BookRating{
				{BookID: 12, Rating: 4, Date: "2024-05-25T10:30:00Z"},
				{BookID: 14, Rating: 5, Date: "2024-06-05T16:45:00Z"},
			},
			Stats: entities.UserStats{
				TotalBooksRead: 2,
				TotalPagesRead: 590,
				PagesReadByGenre: map[string]int{
					"Фэнтези":            320,
					"Научная фантастика": 270,
				},
			},
		},
		{
			ID:              3,
			Name:            "Иван Петров",
			Username:        "user2",
			Password:        "password",
			Role:            entities.UserRoleUser,
			PreferredGenres: g.pickGenres(4),
			Favorites:       []int{4, 8, 12},
			ReadLater:       []int{5, 9, 13},
			ReadBooks:       []int{16, 18, 20},
			ReadingProgress: []entities.ReadingProgress{
				{BookID: 16, CurrentPage: 190, Progress: 100, StartDate: "2024-05-15T11:20:00Z"},
				{BookID: 18, CurrentPage: 410, Progress: 100, StartDate: "2024-05-28T14:50:00Z"},
				{BookID: 20, CurrentPage: 280, Progress: 100, StartDate: "2024-06-10T09:30:00Z"},
				{BookID: 4, CurrentPage: 150, Progress: 50, StartDate: "2024-06-15T17:15:00Z"},
			},
			Ratings: []entities.BookRating{
				{BookID: 16, Rating: 3, Date: "2024-05-18T22:10:00Z"},
				{BookID: 18, Rating: 5, Date: "2024-06-01T12:30:00Z"},
				{BookID: 20, Rating: 4, Date: "2024-06-12T19:45:00Z"},
			},
			Stats: entities.UserStats{
				TotalBooksRead: 3,
				TotalPagesRead: 880,
				PagesReadByGenre: map[string]int{
					"История":                190,
					"Триллер":                410,
					"Современная литература": 280,
				},
			},
		},
	}
}

// GenerateBooks returns a 30-book catalog with IDs 1..30.
func (g *Generator) GenerateBooks() []entities.Book {
	books := make([]entities.Book, 0, bookCount)

	for i := 1; i <= bookCount; i++ {
		pageCount := g.rng.Intn(500) + 100
		genreCount := g.rng.Intn(3) + 1
		publishYear := g.rng.Intn(30) + 1990

		book := entities.Book{
			ID:           i,
			Title:        bookTitles[i-1],
			Author:       authors[g.rng.Intn(len(authors))],
			Description:  Lorem(descriptionSize),
			CoverImage:   bookCovers[g.rng.Intn(len(bookCovers))],
			PublishYear:  publishYear,
			PageCount:    pageCount,
			Genres:       g.pickGenres(genreCount),
			Rating:       math.Round((g.rng.Float64()*4+1)*10) / 10,
			RatingsCount: g.rng.Intn(100) + 5,
		}
		book.Comments = g.generateComments(i, g.rng.Intn(5)+1)
		if g.includeContent {
			book.Content = Lorem(pageCount * charsPerPage)
		}

		books = append(books, book)
	}

	return books
}

func (g *Generator) generateComments(bookID, count int) []entities.Comment {
	comments := make([]entities.Comment, 0, count)
	now := g.now()

	for i := 1; i <= count; i++ {
		user := commenters[g.rng.Intn(len(commenters))]
		textLen := 50 + g.rng.Intn(150)
		daysAgo := g.rng.Intn(30)

		comments = append(comments, entities.Comment{
			ID:       int64(bookID*100 + i),
			BookID:   bookID,
			UserID:   user.id,
			UserName: user.name,
			Author:   user.name,
			Text:     Lorem(textLen),
			Date:     now.Add(-time.Duration(daysAgo) * 24 * time.Hour).UTC().Format(isoMillis),
		})
	}

	return comments
}

// pickGenres returns n distinct genres in random order.
func (g *Generator) pickGenres(n int) []string {
	shuffled := make([]string, len(Genres))
	copy(shuffled, Genres)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

// Lorem returns n characters of repeated lorem ipsum text. n counts bytes,
// which equals characters for the ASCII passage.
func Lorem(n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(n + len(loremText) + 1)
	for b.Len() < n {
		b.WriteString(loremText)
		b.WriteByte(' ')
	}
	return b.String()[:n]
}

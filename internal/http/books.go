package http

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/entities"
)

const charsPerPage = 2000

type BooksController struct {
	catalog CatalogStore
	session SessionStore
	covers  CoverCache
}

func NewBooksController(catalog CatalogStore, session SessionStore, covers CoverCache) *BooksController {
	return &BooksController{catalog: catalog, session: session, covers: covers}
}

// GetAllBooks lists the catalog, optionally filtered by ?genre= and a
// case-insensitive ?q= match on title or author.
func (bc *BooksController) GetAllBooks(c *gin.Context) {
	genre := c.Query("genre")
	query := strings.ToLower(strings.TrimSpace(c.Query("q")))

	books := []entities.Book{}
	for _, b := range bc.catalog.Books() {
		if genre != "" && !b.HasGenre(genre) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(b.Title), query) &&
			!strings.Contains(strings.ToLower(b.Author), query) {
			continue
		}
		books = append(books, b)
	}

	c.IndentedJSON(http.StatusOK, gin.H{"books": withoutContent(books), "count": len(books)})
}

func (bc *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	book, found := bc.catalog.Book(id)
	if !found {
		respondNotFound(c, "book")
		return
	}
	book.Content = ""
	c.IndentedJSON(http.StatusOK, book)
}

// GetPage returns one reader page of the book's text.
func (bc *BooksController) GetPage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	page, ok := parseIDParam(c, "page")
	if !ok {
		return
	}

	book, found := bc.catalog.Book(id)
	if !found {
		respondNotFound(c, "book")
		return
	}
	if book.Content == "" {
		respondNotFound(c, "book content")
		return
	}

	// Pages count characters, not bytes
	content := []rune(book.Content)
	totalPages := (len(content) + charsPerPage - 1) / charsPerPage
	if page > totalPages {
		respondNotFound(c, "page "+strconv.Itoa(page))
		return
	}

	start := (page - 1) * charsPerPage
	end := min(start+charsPerPage, len(content))
	c.JSON(http.StatusOK, gin.H{
		"bookId":     book.ID,
		"page":       page,
		"totalPages": totalPages,
		"text":       string(content[start:end]),
	})
}

// GetCover serves the cached cover image, falling back to a redirect to the
// original URL when there is no cache or the download fails.
func (bc *BooksController) GetCover(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	book, found := bc.catalog.Book(id)
	if !found {
		respondNotFound(c, "book")
		return
	}
	if book.CoverImage == "" {
		respondNotFound(c, "cover")
		return
	}

	if bc.covers != nil {
		path, err := bc.covers.GetCover(c.Request.Context(), id, book.CoverImage)
		if err == nil {
			c.Header("Cache-Control", "public, max-age=86400")
			c.File(path)
			return
		}
		log.Printf("Failed to cache cover for book %d: %v", id, err)
	}
	c.Redirect(http.StatusFound, book.CoverImage)
}

func (bc *BooksController) GetComments(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, found := bc.catalog.Book(id); !found {
		respondNotFound(c, "book")
		return
	}

	bc.catalog.GetComments(c.Request.Context(), id)
	bc.respondComments(c, http.StatusOK, id)
}

type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

func (bc *BooksController) AddComment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		respondBadRequest(c, "text is required")
		return
	}
	if _, found := bc.catalog.Book(id); !found {
		respondNotFound(c, "book")
		return
	}

	bc.catalog.AddComment(c.Request.Context(), id, strings.TrimSpace(req.Text))
	bc.respondComments(c, http.StatusCreated, id)
}

// DeleteComment lets admins remove any comment and users remove their own.
func (bc *BooksController) DeleteComment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	commentID, ok := parseInt64Param(c, "commentId")
	if !ok {
		return
	}

	book, found := bc.catalog.Book(id)
	if !found {
		respondNotFound(c, "book")
		return
	}

	user, _ := bc.session.CurrentUser()
	for _, comment := range book.Comments {
		if comment.ID != commentID {
			continue
		}
		if comment.UserID != user.ID && !user.IsAdmin() {
			respondError(c, http.StatusForbidden, "cannot delete another user's comment")
			return
		}
		bc.catalog.DeleteComment(c.Request.Context(), id, commentID)
		bc.respondComments(c, http.StatusOK, id)
		return
	}
	respondNotFound(c, "comment")
}

func (bc *BooksController) respondComments(c *gin.Context, status int, bookID int) {
	book, _ := bc.catalog.Book(bookID)
	comments := book.Comments
	if comments == nil {
		comments = []entities.Comment{}
	}
	c.JSON(status, gin.H{"comments": comments, "count": len(comments)})
}

type CreateBookRequest struct {
	Title       string   `json:"title" binding:"required"`
	Author      string   `json:"author" binding:"required"`
	Description string   `json:"description"`
	CoverImage  string   `json:"coverImage"`
	PublishYear int      `json:"publishYear"`
	PageCount   int      `json:"pageCount"`
	Genres      []string `json:"genres"`
	Content     string   `json:"content"`
}

func (bc *BooksController) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "title and author are required")
		return
	}

	added, ok := bc.catalog.AddBook(entities.Book{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		PublishYear: req.PublishYear,
		PageCount:   req.PageCount,
		Genres:      req.Genres,
		Content:     req.Content,
	})
	if !ok {
		respondError(c, http.StatusForbidden, "insufficient permissions")
		return
	}
	added.Content = ""
	c.JSON(http.StatusCreated, added)
}

func (bc *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !bc.catalog.DeleteBook(id) {
		respondNotFound(c, "book")
		return
	}
	if bc.covers != nil {
		if err := bc.covers.InvalidateCover(id); err != nil {
			log.Printf("Failed to invalidate cover for book %d: %v", id, err)
		}
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "book deleted"})
}

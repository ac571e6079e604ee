package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"` // machine-readable error code
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// UserResponse is a user without the password.
type UserResponse struct {
	ID              int                        `json:"id"`
	Name            string                     `json:"name"`
	Username        string                     `json:"username"`
	Role            entities.UserRole          `json:"role"`
	PreferredGenres []string                   `json:"preferredGenres"`
	Favorites       []int                      `json:"favorites"`
	ReadLater       []int                      `json:"readLater"`
	ReadBooks       []int                      `json:"readBooks"`
	ReadingProgress []entities.ReadingProgress `json:"readingProgress"`
	Ratings         []entities.BookRating      `json:"ratings"`
	Stats           entities.UserStats         `json:"stats"`
}

func newUserResponse(u entities.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Name:            u.Name,
		Username:        u.Username,
		Role:            u.Role,
		PreferredGenres: u.PreferredGenres,
		Favorites:       u.Favorites,
		ReadLater:       u.ReadLater,
		ReadBooks:       u.ReadBooks,
		ReadingProgress: u.ReadingProgress,
		Ratings:         u.Ratings,
		Stats:           u.Stats,
	}
}

// withoutContent drops book text from list and detail responses; the reader
// fetches it page by page.
func withoutContent(books []entities.Book) []entities.Book {
	for i := range books {
		books[i].Content = ""
	}
	return books
}

// --- Error Response Helpers ---

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

// --- Parameter Parsing ---

// parseIDParam extracts a positive integer ID from URL parameters.
// Responds with a 400 error and returns 0, false when it is invalid.
func parseIDParam(c *gin.Context, paramName string) (int, bool) {
	id, err := strconv.Atoi(c.Param(paramName))
	if err != nil || id <= 0 {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return id, true
}

// parseInt64Param is parseIDParam for 64-bit IDs such as comment timestamps.
func parseInt64Param(c *gin.Context, paramName string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(paramName), 10, 64)
	if err != nil || id <= 0 {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return id, true
}

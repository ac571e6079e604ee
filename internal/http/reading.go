package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ReadingController serves the current user's lists, progress, ratings and profile.
type ReadingController struct {
	reading ReadingStore
	catalog CatalogStore
	session SessionStore
}

func NewReadingController(reading ReadingStore, catalog CatalogStore, session SessionStore) *ReadingController {
	return &ReadingController{reading: reading, catalog: catalog, session: session}
}

func (rc *ReadingController) Favorites(c *gin.Context) {
	books := withoutContent(rc.reading.FavoriteBooks())
	c.JSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

func (rc *ReadingController) ReadLater(c *gin.Context) {
	books := withoutContent(rc.reading.ReadLaterBooks())
	c.JSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

func (rc *ReadingController) Read(c *gin.Context) {
	books := withoutContent(rc.reading.ReadBooks())
	c.JSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

func (rc *ReadingController) ToggleFavorite(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	rc.reading.ToggleFavorite(id)

	user, _ := rc.session.CurrentUser()
	c.JSON(http.StatusOK, gin.H{
		"bookId":    id,
		"favorite":  containsInt(user.Favorites, id),
		"favorites": user.Favorites,
	})
}

func (rc *ReadingController) ToggleReadLater(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	rc.reading.ToggleReadLater(id)

	user, _ := rc.session.CurrentUser()
	c.JSON(http.StatusOK, gin.H{
		"bookId":    id,
		"readLater": containsInt(user.ReadLater, id),
		"list":      user.ReadLater,
	})
}

type ProgressRequest struct {
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"` // defaults to the book's page count
}

func (rc *ReadingController) UpdateProgress(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid progress payload")
		return
	}
	if req.TotalPages == 0 {
		if book, found := rc.catalog.Book(id); found {
			req.TotalPages = book.PageCount
		}
	}
	if req.Page < 0 || req.TotalPages <= 0 {
		respondBadRequest(c, "page must be non-negative and totalPages positive")
		return
	}

	rc.reading.UpdateReadingProgress(id, req.Page, req.TotalPages)

	user, _ := rc.session.CurrentUser()
	progress, _ := user.ProgressFor(id)
	c.JSON(http.StatusOK, gin.H{
		"progress": progress,
		"read":     containsInt(user.ReadBooks, id),
		"stats":    user.Stats,
	})
}

type RatingRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

func (rc *ReadingController) RateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "rating must be between 1 and 5")
		return
	}

	rc.reading.RateBook(id, req.Rating)

	response := gin.H{"bookId": id, "rating": req.Rating}
	if book, found := rc.catalog.Book(id); found {
		response["average"] = book.Rating
		response["ratingsCount"] = book.RatingsCount
	}
	c.JSON(http.StatusOK, response)
}

type UpdateNameRequest struct {
	Name string `json:"name" binding:"required"`
}

func (rc *ReadingController) UpdateName(c *gin.Context) {
	var req UpdateNameRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		respondBadRequest(c, "name is required")
		return
	}
	rc.reading.UpdateUserName(strings.TrimSpace(req.Name))
	rc.respondUser(c)
}

type UpdateGenresRequest struct {
	Genres []string `json:"genres"`
}

func (rc *ReadingController) UpdateGenres(c *gin.Context) {
	var req UpdateGenresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid genres payload")
		return
	}
	if req.Genres == nil {
		req.Genres = []string{}
	}
	rc.reading.UpdatePreferredGenres(req.Genres)
	rc.respondUser(c)
}

func (rc *ReadingController) respondUser(c *gin.Context) {
	user, ok := rc.session.CurrentUser()
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

func containsInt(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

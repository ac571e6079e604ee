package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type PreferencesController struct {
	prefs PreferencesStore
}

func NewPreferencesController(prefs PreferencesStore) *PreferencesController {
	return &PreferencesController{prefs: prefs}
}

func (pc *PreferencesController) Get(c *gin.Context) {
	c.JSON(http.StatusOK, pc.prefs.Theme())
}

// UpdatePreferencesRequest applies only the fields present. ToggleDarkMode is
// applied after IsDarkMode.
type UpdatePreferencesRequest struct {
	IsDarkMode       *bool    `json:"isDarkMode"`
	ToggleDarkMode   bool     `json:"toggleDarkMode"`
	ReaderFontSize   *int     `json:"readerFontSize"`
	ReaderLineHeight *float64 `json:"readerLineHeight"`
	ReaderFontFamily *string  `json:"readerFontFamily"`
}

func (pc *PreferencesController) Update(c *gin.Context) {
	var req UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid preferences payload")
		return
	}

	if req.IsDarkMode != nil {
		pc.prefs.SetDarkMode(*req.IsDarkMode)
	}
	if req.ToggleDarkMode {
		pc.prefs.ToggleDarkMode()
	}
	if req.ReaderFontSize != nil {
		pc.prefs.ChangeReaderFontSize(*req.ReaderFontSize)
	}
	if req.ReaderLineHeight != nil {
		pc.prefs.ChangeReaderLineHeight(*req.ReaderLineHeight)
	}
	if req.ReaderFontFamily != nil {
		pc.prefs.ChangeReaderFontFamily(*req.ReaderFontFamily)
	}

	c.JSON(http.StatusOK, pc.prefs.Theme())
}

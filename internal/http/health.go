package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status     string            `json:"status"`
	Time       string            `json:"time"`
	Version    string            `json:"version,omitempty"`
	Checks     map[string]string `json:"checks"`
	Library    *LibraryHealth    `json:"library,omitempty"`
	Navigation *NavigationHealth `json:"navigation,omitempty"`
}

type LibraryHealth struct {
	Initialized bool `json:"initialized"`
	Users       int  `json:"users"`
	Books       int  `json:"books"`
}

type NavigationHealth struct {
	Loading  bool  `json:"loading"`
	InFlight int64 `json:"inFlight"`
	Total    int64 `json:"total"`
}

type HealthController struct {
	db         Pinger
	library    LibrarySummary
	navigation NavigationStatus
	version    string
}

func NewHealthController(db Pinger, library LibrarySummary, navigation NavigationStatus, version string) *HealthController {
	return &HealthController{
		db:         db,
		library:    library,
		navigation: navigation,
		version:    version,
	}
}

// Status reports storage connectivity and what the store currently holds.
// An empty catalog is reported but does not make the process unhealthy.
func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			checks["database"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["database"] = "ok"
		}
	} else {
		checks["database"] = "not configured"
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	if h.library != nil {
		health.Library = &LibraryHealth{
			Initialized: h.library.IsInitialized(),
			Users:       len(h.library.Users()),
			Books:       len(h.library.Books()),
		}
		switch {
		case health.Library.Books == 0:
			checks["library"] = "empty catalog"
		case !health.Library.Initialized:
			checks["library"] = "restored without seed data"
		default:
			checks["library"] = "ok"
		}
	}

	if h.navigation != nil {
		health.Navigation = &NavigationHealth{
			Loading:  h.navigation.IsLoading(),
			InFlight: h.navigation.InFlight(),
			Total:    h.navigation.Total(),
		}
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/guard"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SessionResponse struct {
	LoggedIn bool          `json:"loggedIn"`
	IsAdmin  bool          `json:"isAdmin"`
	User     *UserResponse `json:"user,omitempty"`
}

type SessionController struct {
	store   SessionStore
	limiter *guard.LoginLimiter
}

func NewSessionController(store SessionStore, limiter *guard.LoginLimiter) *SessionController {
	return &SessionController{store: store, limiter: limiter}
}

func (sc *SessionController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "username and password are required")
		return
	}

	ip := c.ClientIP()
	if sc.limiter != nil {
		if allowed, retryAfter := sc.limiter.Allow(ip, req.Username); !allowed {
			c.Header("Retry-After", retryAfter.String())
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "too many login attempts",
				"retry_after": retryAfter.String(),
			})
			return
		}
	}

	if !sc.store.Login(c.Request.Context(), req.Username, req.Password) {
		if sc.limiter != nil {
			sc.limiter.RecordFailure(ip, req.Username)
		}
		respondError(c, http.StatusUnauthorized, "invalid username or password")
		return
	}

	if sc.limiter != nil {
		sc.limiter.RecordSuccess(ip, req.Username)
	}
	c.JSON(http.StatusOK, sc.session())
}

func (sc *SessionController) Logout(c *gin.Context) {
	sc.store.Logout()
	c.JSON(http.StatusOK, sc.session())
}

func (sc *SessionController) Session(c *gin.Context) {
	c.JSON(http.StatusOK, sc.session())
}

func (sc *SessionController) session() SessionResponse {
	user, ok := sc.store.CurrentUser()
	if !ok {
		return SessionResponse{}
	}
	view := newUserResponse(user)
	return SessionResponse{
		LoggedIn: true,
		IsAdmin:  user.IsAdmin(),
		User:     &view,
	}
}

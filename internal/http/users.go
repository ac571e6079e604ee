package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/settingsstore"
)

// UsersController exposes the admin user list.
type UsersController struct {
	users    UserAdminStore
	session  SessionStore
	sync     UsersSyncRunner
	settings UsersSyncSettings
}

func NewUsersController(users UserAdminStore, session SessionStore, sync UsersSyncRunner, settings UsersSyncSettings) *UsersController {
	return &UsersController{users: users, session: session, sync: sync, settings: settings}
}

func (uc *UsersController) List(c *gin.Context) {
	users := uc.users.Users()
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}
	c.JSON(http.StatusOK, gin.H{"users": out, "count": len(out)})
}

// Refresh pulls the user list from the remote API. Runs through the sync
// scheduler when one is configured so the outcome is recorded.
func (uc *UsersController) Refresh(c *gin.Context) {
	var ok bool
	if uc.sync != nil {
		ok = uc.sync.RunNow(c.Request.Context())
	} else {
		ok = uc.users.FetchUsers(c.Request.Context())
	}
	if !ok {
		respondError(c, http.StatusBadGateway, "failed to fetch users")
		return
	}
	uc.List(c)
}

func (uc *UsersController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if current, _ := uc.session.CurrentUser(); current.ID == id {
		respondBadRequest(c, "cannot delete the signed-in user")
		return
	}
	uc.users.DeleteUser(c.Request.Context(), id)
	uc.List(c)
}

type SyncStatusResponse struct {
	Running   bool                               `json:"running"`
	NextRunAt *time.Time                         `json:"next_run_at,omitempty"`
	Config    *settingsstore.UsersSyncConfigInfo `json:"config,omitempty"`
	LastRun   *settingsstore.UsersSyncStatus     `json:"last_run,omitempty"`
}

func (uc *UsersController) SyncStatus(c *gin.Context) {
	resp := SyncStatusResponse{}
	if uc.sync != nil {
		resp.Running = uc.sync.IsRunning()
		resp.NextRunAt = uc.sync.GetNextRunTime()
	}
	if uc.settings != nil {
		info := uc.settings.GetUsersSyncConfigInfo()
		status := uc.settings.GetUsersSyncStatus()
		resp.Config = &info
		resp.LastRun = &status
	}
	c.JSON(http.StatusOK, resp)
}

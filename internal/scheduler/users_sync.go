package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/settingsstore"
)

// UserFetcher refreshes the local user list from the remote API.
type UserFetcher interface {
	FetchUsers(ctx context.Context) bool
	Users() []entities.User
}

// UsersSyncScheduler periodically refreshes the user list
type UsersSyncScheduler struct {
	fetcher       UserFetcher
	settingsStore *settingsstore.SettingsStore

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

func NewUsersSyncScheduler(fetcher UserFetcher, settingsStore *settingsstore.SettingsStore) *UsersSyncScheduler {
	return &UsersSyncScheduler{
		fetcher:       fetcher,
		settingsStore: settingsStore,
		cron:          newCron(),
	}
}

func newCron() *cron.Cron {
	return cron.New(cron.WithParser(cron.NewParser(
		cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)))
}

// Start begins the scheduler if sync is enabled
func (s *UsersSyncScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	config := s.settingsStore.GetUsersSyncConfig()
	if !config.Enabled {
		log.Printf("Users sync scheduler: disabled")
		return nil
	}

	if err := settingsstore.ValidateCronSchedule(config.Schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", config.Schedule, err)
	}

	var runCtx context.Context
	runCtx, s.cancelFunc = context.WithCancel(ctx)

	entryID, err := s.cron.AddFunc(config.Schedule, func() {
		s.runSync(runCtx)
	})
	if err != nil {
		s.cancelFunc()
		return fmt.Errorf("failed to schedule users sync job: %w", err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true

	nextRun, _ := settingsstore.GetNextRunTime(config.Schedule, time.Now())
	log.Printf("Users sync scheduler: started with schedule '%s' (%s). Next run: %v",
		config.Schedule,
		settingsstore.GetCronDescription(config.Schedule),
		nextRun)

	go func() {
		<-runCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running sync to finish
func (s *UsersSyncScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.cron = newCron()
	s.isRunning = false
	s.cancelFunc()
	s.cancelFunc = nil

	log.Printf("Users sync scheduler: stopped")
}

// Reschedule applies changed settings
func (s *UsersSyncScheduler) Reschedule(ctx context.Context) error {
	s.Stop()
	return s.Start(ctx)
}

// RunNow performs a sync on the caller's goroutine and reports whether it succeeded.
func (s *UsersSyncScheduler) RunNow(ctx context.Context) bool {
	return s.runSync(ctx)
}

func (s *UsersSyncScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next sync will occur
func (s *UsersSyncScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *UsersSyncScheduler) runSync(ctx context.Context) bool {
	startTime := time.Now()

	if !s.fetcher.FetchUsers(ctx) {
		log.Printf("Users sync: fetch failed")
		s.setStatus("failed", "Failed to fetch users from the remote API")
		return false
	}

	msg := fmt.Sprintf("Fetched %d users in %v", len(s.fetcher.Users()), time.Since(startTime).Round(time.Millisecond))
	log.Printf("Users sync: %s", msg)
	s.setStatus("success", msg)
	return true
}

func (s *UsersSyncScheduler) setStatus(status, message string) {
	if err := s.settingsStore.SetUsersSyncStatus(status, message); err != nil {
		log.Printf("Users sync: failed to record status: %v", err)
	}
}

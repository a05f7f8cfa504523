package services

import (
	"log"

	"main/utils"

	"github.com/robfig/cron/v3"
)

// SessionPurger is implemented by the session repository.
type SessionPurger interface {
	DeleteExpiredSessions() (int64, error)
}

// Scheduler runs the periodic maintenance jobs: expired session purging and
// system metric sampling.
type Scheduler struct {
	cron   *cron.Cron
	purger SessionPurger
}

func NewScheduler(purger SessionPurger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		purger: purger,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("@every 1h", s.purgeExpiredSessions); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("@every 30s", utils.UpdateSystemMetrics); err != nil {
		return err
	}

	s.cron.Start()
	log.Println("Maintenance scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) purgeExpiredSessions() {
	deleted, err := s.purger.DeleteExpiredSessions()
	if err != nil {
		utils.TrackError("scheduler", "session_purge_failed")
		log.Printf("Error purging expired sessions: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("Purged %d expired sessions", deleted)
	}
}

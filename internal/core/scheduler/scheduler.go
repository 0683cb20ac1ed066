// Package scheduler runs named cron jobs.
package scheduler

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler handles named cron jobs. Expressions carry a leading seconds field.
type Scheduler struct {
	cron    *cron.Cron
	jobs    map[string]cron.EntryID // job name -> entry id
	jobsMux sync.RWMutex
}

// NewScheduler creates a scheduler evaluating expressions in loc
func NewScheduler(loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		cron: cron.New(cron.WithSeconds(), cron.WithLocation(loc)),
		jobs: make(map[string]cron.EntryID),
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Info().Int("jobs", len(s.Jobs())).Msg("⏰ Scheduler started")
}

// Stop stops the scheduler and waits for running jobs to finish
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Info().Msg("✅ Scheduler stopped")
}

// AddJob registers job under name, replacing any job already using that name.
// schedule is a six-field cron expression (e.g. "0 0 21 * * *" for 9 PM daily).
func (s *Scheduler) AddJob(name, schedule string, job func()) error {
	s.jobsMux.Lock()
	defer s.jobsMux.Unlock()

	if entryID, exists := s.jobs[name]; exists {
		s.cron.Remove(entryID)
		delete(s.jobs, name)
	}

	entryID, err := s.cron.AddFunc(schedule, func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("job", name).Msg("❌ Scheduled job panicked")
			}
		}()
		job()
	})
	if err != nil {
		return fmt.Errorf("failed to add cron job %s: %w", name, err)
	}

	s.jobs[name] = entryID
	log.Info().Str("job", name).Str("schedule", schedule).Msg("✅ Job scheduled")

	return nil
}

// RemoveJob removes a job from the scheduler
func (s *Scheduler) RemoveJob(name string) {
	s.jobsMux.Lock()
	defer s.jobsMux.Unlock()

	if entryID, exists := s.jobs[name]; exists {
		s.cron.Remove(entryID)
		delete(s.jobs, name)
		log.Info().Str("job", name).Msg("✅ Job removed")
	}
}

// Jobs returns the registered job names, sorted
func (s *Scheduler) Jobs() []string {
	s.jobsMux.RLock()
	defer s.jobsMux.RUnlock()

	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Next returns the next run time of a job, or false when it is not registered
func (s *Scheduler) Next(name string) (time.Time, bool) {
	s.jobsMux.RLock()
	entryID, exists := s.jobs[name]
	s.jobsMux.RUnlock()
	if !exists {
		return time.Time{}, false
	}

	entry := s.cron.Entry(entryID)
	if entry.ID == 0 {
		return time.Time{}, false
	}
	if entry.Next.IsZero() {
		return entry.Schedule.Next(time.Now()), true
	}
	return entry.Next, true
}

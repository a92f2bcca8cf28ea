package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/weather-tickler/internal/dashboard"
)

// Searcher runs a dashboard query. *dashboard.Controller satisfies it.
type Searcher interface {
	Search(ctx context.Context, query string) (dashboard.Result, error)
	CurrentQuery() string
}

// Scheduler periodically re-runs the query the dashboard is showing. The
// fallback location is searched until a first query exists.
type Scheduler struct {
	scheduler *gocron.Scheduler
	searcher  Searcher
	location  string
	interval  time.Duration
	timeout   time.Duration
}

// New creates a new Scheduler.
func New(location string, interval time.Duration, searcher Searcher) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		searcher:  searcher,
		location:  location,
		interval:  interval,
		timeout:   30 * time.Second,
	}
}

// Start schedules the refresh job and starts the underlying scheduler.
// An interval of zero disables refreshing.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		log.Println("INFO: scheduler: refresh disabled; nothing to schedule")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).SingletonMode().Do(s.refresh)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) refresh() {
	query := s.searcher.CurrentQuery()
	if query == "" {
		query = s.location
	}
	log.Printf("INFO: scheduler: refreshing %s", query)

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	res, err := s.searcher.Search(ctx, query)
	if err != nil {
		log.Printf("ERROR: scheduler: refresh failed for %s: %v", query, err)
		return
	}
	if !res.Applied {
		log.Printf("INFO: scheduler: refresh for %s superseded by a newer search", query)
	}
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

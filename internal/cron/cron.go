package cron

import (
	"fmt"
	"time"

	crf "github.com/robfig/cron/v3"
)

// Interval represents a cron schedule interval.
type Interval string

const (
	Every5Seconds Interval = "@every 5s"
	EveryMinute   Interval = "*/1 * * * *" // Run every minute
	EveryHour     Interval = "@hourly"     // Run every hour
)

// Scheduler runs jobs on cron schedules.
type Scheduler interface {
	Add(schedule string, task func()) (crf.EntryID, error)
	Remove(entryID crf.EntryID)
	Start()
	Stop()
}

type cron struct {
	cron *crf.Cron
}

// New creates a scheduler in the given timezone.
//
// A job is skipped while its previous run is still going, so a job that owns a
// resource never runs twice at once.
//
// Parameters:
//   - timezone: the timezone for scheduling tasks (default is UTC if nil)
//
// Returns:
//   - Scheduler: the scheduler facade instance
func New(timezone *time.Location) Scheduler {
	if timezone == nil {
		timezone = time.UTC
	}

	return &cron{
		cron: crf.New(
			crf.WithLocation(timezone),
			crf.WithChain(crf.SkipIfStillRunning(crf.DiscardLogger)),
		),
	}
}

// Validate checks a schedule string without scheduling anything.
func Validate(schedule string) error {
	if _, err := crf.ParseStandard(schedule); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}
	return nil
}

// Add schedules a task to run at the specified interval.
//
// Parameters:
//   - schedule: the cron schedule string (e.g., "*/5 * * * *" or "@every 10s")
//   - task: the function to execute
//
// Returns:
//   - cron.EntryID: the ID of the scheduled task
//   - error: if the schedule string is invalid
func (c *cron) Add(schedule string, task func()) (crf.EntryID, error) {
	id, err := c.cron.AddFunc(schedule, task)
	if err != nil {
		return 0, fmt.Errorf("failed to schedule task: %w", err)
	}
	return id, nil
}

// Remove cancels a scheduled task by its EntryID.
func (c *cron) Remove(entryID crf.EntryID) {
	c.cron.Remove(entryID)
}

// Start begins the execution of scheduled tasks.
func (c *cron) Start() {
	c.cron.Start()
}

// Stop halts scheduling and waits for running jobs to finish.
func (c *cron) Stop() {
	<-c.cron.Stop().Done()
}

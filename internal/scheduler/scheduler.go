// Package scheduler runs the periodic due-words reminder.
package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/kimranazman/mymandarin/internal/engine"
)

// Default window for sending reminders
const (
	DefaultNotificationStartHour = 8
	DefaultNotificationEndHour   = 22
)

// Notifier delivers a reminder that words are waiting for review
type Notifier interface {
	SendReminder(dueCount int) error
}

// LogNotifier writes reminders to the process log. It is the default
// delivery channel for the in-process engine.
type LogNotifier struct{}

// SendReminder logs the reminder
func (LogNotifier) SendReminder(dueCount int) error {
	log.Printf("Reminder: %d words are due for review", dueCount)
	return nil
}

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	engine    *engine.Engine
	notifier  Notifier
}

// New creates a new scheduler instance
func New(e *engine.Engine, notifier Notifier) *Scheduler {
	s := gocron.NewScheduler(time.Local)
	return &Scheduler{
		scheduler: s,
		engine:    e,
		notifier:  notifier,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	// Hourly check; the notification window decides whether to send
	s.scheduler.Every(1).Hour().Do(s.checkAndSendReminder)

	// Start the scheduler in a non-blocking manner
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkAndSendReminder sends a reminder when the current hour falls in
// the notification window and there are due words.
func (s *Scheduler) checkAndSendReminder() {
	currentHour := time.Now().Hour()

	startHour := envHour("NOTIFICATION_START_HOUR", DefaultNotificationStartHour)
	endHour := envHour("NOTIFICATION_END_HOUR", DefaultNotificationEndHour)

	if currentHour < startHour || currentHour > endHour {
		return
	}

	if err := s.RunManualCheck(); err != nil {
		log.Printf("Error sending reminder: %v", err)
	}
}

// RunManualCheck forces a due-words check, sending a reminder when any
// words are waiting.
func (s *Scheduler) RunManualCheck() error {
	due := s.engine.DueForReview()
	if len(due) == 0 {
		return nil
	}
	return s.notifier.SendReminder(len(due))
}

// envHour reads an hour-of-day override from the environment
func envHour(name string, fallback int) int {
	if v := os.Getenv(name); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
			return h
		}
	}
	return fallback
}

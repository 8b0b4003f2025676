// Package notify raises system notifications for writing reminders.
package notify

import (
	"fmt"
	"log/slog"

	"github.com/gen2brain/beeep"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	ModeDesktop = "desktop"
	ModeLog     = "log"
)

type Notification struct {
	Title string
	Body  string
	// OnClick runs when the user activates the notification, on backends
	// that report activation.
	OnClick func()
}

type Notifier interface {
	Notify(n Notification) error
}

// New returns the notifier for mode; unknown modes fall back to logging.
func New(mode string) Notifier {
	switch mode {
	case ModeDesktop:
		return &DesktopNotifier{}
	case ModeLog:
		return &LogNotifier{}
	default:
		slog.Warn("unknown notifier mode, logging notifications instead", "mode", mode)
		return &LogNotifier{}
	}
}

// DesktopNotifier shows notifications through the platform's notification
// service. beeep does not surface activation, so OnClick is not called.
type DesktopNotifier struct{}

func (d *DesktopNotifier) Notify(n Notification) error {
	err := beeep.Notify(n.Title, n.Body, "")
	if err != nil {
		return fmt.Errorf("failed to show notification: %w", err)
	}
	return nil
}

// LogNotifier writes notifications to the log, for development and headless
// machines.
type LogNotifier struct{}

func (l *LogNotifier) Notify(n Notification) error {
	slog.Info("notification shown (log mode)", "title", n.Title, "body", n.Body)
	return nil
}

// Reminder builds the hourly writing-goal notification.
type Reminder struct {
	Percentage  int
	WordCount   int
	CountTarget int
}

func (r Reminder) Notification(tag language.Tag, onClick func()) Notification {
	p := message.NewPrinter(tag)
	body := p.Sprintf("You are %d%% of the way there", r.Percentage)
	if r.CountTarget > 0 {
		body += p.Sprintf(" (%d of %d words)", r.WordCount, r.CountTarget)
	}
	return Notification{
		Title:   "Complete Today's Writing Goal",
		Body:    body,
		OnClick: onClick,
	}
}

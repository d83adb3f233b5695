// Package notify posts desktop notifications for timer transitions over
// the session D-Bus. The timer never depends on notification outcomes:
// delivery failures are logged and swallowed.
package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/danielhaas/stempel/internal/timer"
	"github.com/godbus/dbus/v5"
)

// DBusNotifier implements timer.EventObserver by calling
// org.freedesktop.Notifications.Notify on the user's session bus.
type DBusNotifier struct {
	cfg    Config
	conn   *dbus.Conn
	logger *slog.Logger
}

// NewDBusNotifier connects to the session bus. Returns an error when no
// bus is reachable; callers typically fall back to timer.NoopObserver.
func NewDBusNotifier(cfg Config, logWriter io.Writer) (*DBusNotifier, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connecting to session bus: %w", err)
	}

	var logger *slog.Logger
	if logWriter != nil {
		logger = slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}

	return &DBusNotifier{cfg: cfg, conn: conn, logger: logger}, nil
}

// Close releases the bus connection.
func (n *DBusNotifier) Close() error {
	return n.conn.Close()
}

func (n *DBusNotifier) ObserveTransition(ctx context.Context, ev timer.Event) {
	summary, body := render(ev)

	obj := n.conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.CallWithContext(ctx, "org.freedesktop.Notifications.Notify", 0,
		n.cfg.AppName,
		uint32(0), // replaces_id
		n.cfg.Icon,
		summary,
		body,
		[]string{}, // actions
		map[string]dbus.Variant{
			"urgency": dbus.MakeVariant(byte(1)),
		},
		n.cfg.TimeoutMs,
	)
	if call.Err != nil && n.logger != nil {
		n.logger.WarnContext(ctx, "notification_failed",
			"event", string(ev.Kind),
			"error", call.Err.Error(),
		)
	}
}

func render(ev timer.Event) (summary, body string) {
	elapsed := formatElapsed(ev.Session.TotalSecondsAt(ev.At))
	switch ev.Kind {
	case timer.EventStarted:
		return "Timer started", "Tracking a new work session"
	case timer.EventPaused:
		return "Timer paused", fmt.Sprintf("%s tracked so far", elapsed)
	case timer.EventResumed:
		return "Timer resumed", fmt.Sprintf("%s tracked so far", elapsed)
	case timer.EventEnded:
		return "Session ended", fmt.Sprintf("%s tracked", elapsed)
	default:
		return "Timer", elapsed
	}
}

func formatElapsed(seconds int64) string {
	d := time.Duration(seconds) * time.Second
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %02dm", h, m)
}

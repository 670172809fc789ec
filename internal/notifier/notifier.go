// Package notifier delivers task notifications to employees through the
// Telegram bot. Sends are best-effort: failures are logged and counted,
// never retried, and never surfaced to the HTTP caller.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/Houeta/restobot/internal/lib/logger/sl"
	"github.com/Houeta/restobot/internal/metrics"
	"github.com/Houeta/restobot/internal/models"
	"github.com/Houeta/restobot/internal/roles"
	"gopkg.in/telebot.v4"
)

// ReportTaskUnique is the callback unique of the inline report button
// attached to every notification. The bot listener handles it.
const ReportTaskUnique = "report_task"

// MessageSender is the messaging-platform send contract shared with the bot.
type MessageSender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

// UserGetter resolves employees by their external identifier.
type UserGetter interface {
	GetUserByTelegramID(ctx context.Context, telegramID string) (models.Employee, error)
}

// Notifier formats and sends task notifications.
type Notifier struct {
	log     *slog.Logger
	repo    UserGetter
	sender  MessageSender
	metrics *metrics.Metrics
}

// NewNotifier creates a new Notifier instance.
func NewNotifier(log *slog.Logger, repo UserGetter, sender MessageSender, mtr *metrics.Metrics) *Notifier {
	return &Notifier{log: log, repo: repo, sender: sender, metrics: mtr}
}

// SendTaskNotification resolves the sender and recipient of a job and sends
// a formatted message to the recipient's chat. It reports whether a message
// was actually sent. Recipients with non-numeric identifiers are web-session
// users and are skipped; unknown recipients are skipped as well.
func (n *Notifier) SendTaskNotification(ctx context.Context, job Job) bool {
	sender, err := n.repo.GetUserByTelegramID(ctx, job.SenderID)
	if err != nil {
		n.log.WarnContext(ctx, "Skipping notification: unknown sender", "sender", job.SenderID, sl.Err(err))
		n.metrics.Notifications.WithLabelValues("skipped").Inc()
		return false
	}

	if _, err = n.repo.GetUserByTelegramID(ctx, job.RecipientID); err != nil {
		n.log.WarnContext(ctx, "Skipping notification: unknown recipient", "recipient", job.RecipientID, sl.Err(err))
		n.metrics.Notifications.WithLabelValues("skipped").Inc()
		return false
	}

	// Web-session users have no Telegram chat to deliver to.
	if models.IsWebSession(job.RecipientID) {
		n.log.InfoContext(ctx, "Skipping notification: recipient is a web session",
			"recipient", job.RecipientID)
		n.metrics.Notifications.WithLabelValues("skipped").Inc()
		return false
	}

	chatID, err := strconv.ParseInt(job.RecipientID, 10, 64)
	if err != nil {
		n.log.WarnContext(ctx, "Skipping notification: recipient identifier is not numeric",
			"recipient", job.RecipientID)
		n.metrics.Notifications.WithLabelValues("skipped").Inc()
		return false
	}

	markup := &telebot.ReplyMarkup{}
	btnReport := markup.Data("📸 Send report", ReportTaskUnique, job.SenderID)
	markup.Inline(markup.Row(btnReport))

	message := FormatTaskMessage(sender, job)

	_, err = n.sender.Send(telebot.ChatID(chatID), message, &telebot.SendOptions{
		ParseMode:   telebot.ModeHTML,
		ReplyMarkup: markup,
	})
	if err != nil {
		n.log.ErrorContext(ctx, "Failed to send task notification",
			"recipient", job.RecipientID, sl.Err(err))
		n.metrics.Notifications.WithLabelValues("failed").Inc()
		return false
	}

	n.metrics.Notifications.WithLabelValues("sent").Inc()
	return true
}

// FormatTaskMessage builds the HTML notification text for a task assigned
// by the given sender.
func FormatTaskMessage(sender models.Employee, job Job) string {
	emoji, label := roles.PriorityBadge(job.Priority)

	return fmt.Sprintf(
		"🔔 <b>New task</b> from %s (%s)\n\n"+
			"📌 <b>%s</b>\n"+
			"📍 Zone: %s\n"+
			"⏰ Due: %s\n"+
			"📊 Priority: %s %s\n\n"+
			"✅ Complete the task and send a photo report",
		sender.Name, roles.Name(sender.Role),
		job.Title, job.Zone, job.Deadline, emoji, label,
	)
}

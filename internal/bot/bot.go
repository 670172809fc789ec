// Package bot implements the Telegram side of the system: employee
// self-registration, task listing, report export, and the photo-report
// flow triggered by task notifications.
package bot

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Houeta/restobot/internal/metrics"
	"github.com/Houeta/restobot/internal/notifier"
	"github.com/Houeta/restobot/internal/repository"
	"gopkg.in/telebot.v4"
)

// Bot contains the bot API instance and other information.
type Bot struct {
	bot     *telebot.Bot
	log     *slog.Logger
	repo    repository.Interface
	metrics *metrics.Metrics
	state   *StateManager
}

var (
	// btnReportTask matches the inline button attached to task notifications.
	btnReportTask = telebot.InlineButton{Unique: notifier.ReportTaskUnique}
)

// NewBot creates a new bot with the given token.
func NewBot(
	log *slog.Logger,
	repo repository.Interface,
	mtr *metrics.Metrics,
	token string,
	poller time.Duration,
) (*Bot, error) {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:  token,
		Poller: &telebot.LongPoller{Timeout: poller},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Telegram bot: %w", err)
	}
	log.Info("Authorized on account", "account", bot.Me.Username)

	botInstance := &Bot{
		bot:     bot,
		log:     log,
		repo:    repo,
		metrics: mtr,
		state:   NewStateManager(),
	}

	botInstance.registerRoutes()

	return botInstance, nil
}

// Start launches the bot to listen for updates.
func (b *Bot) Start() {
	b.log.Info("Telegram bot is starting...")
	b.bot.Start()
}

// Stop gracefully stops the Telegram bot and logs the action.
func (b *Bot) Stop() {
	b.log.Info("Telegram bot is stopped...")
	b.bot.Stop()
}

// Sender exposes the messaging client shared with the notification dispatcher.
func (b *Bot) Sender() notifier.MessageSender {
	return b.bot
}

// registerRoutes configures all routes (commands).
func (b *Bot) registerRoutes() {
	b.bot.Handle("/start", b.startHandler)
	b.bot.Handle("/tasks", b.tasksHandler)
	b.bot.Handle("/report", b.reportHandler)
	b.bot.Handle(telebot.OnPhoto, b.photoHandler)

	// Inline button callbacks
	b.bot.Handle("\fpick_role", b.rolePickHandler)
	b.bot.Handle(&btnReportTask, b.reportTaskHandler)
}

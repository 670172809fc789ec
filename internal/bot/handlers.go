package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Houeta/restobot/internal/lib/logger/sl"
	"github.com/Houeta/restobot/internal/models"
	"github.com/Houeta/restobot/internal/report"
	"github.com/Houeta/restobot/internal/repository"
	"github.com/Houeta/restobot/internal/roles"
	"gopkg.in/telebot.v4"
)

const (
	// stateAwaitingPhoto indicates that the bot is waiting for a photo report.
	stateAwaitingPhoto = "awaiting_photo"

	handlerTimeout = 3 * time.Second
)

// startHandler processes the command /start. Registered employees get a
// greeting; everyone else picks a role and is registered as active.
func (b *Bot) startHandler(tCtx telebot.Context) error {
	userID := tCtx.Sender().ID
	b.log.Info("User started the bot", "id", userID, "username", tCtx.Sender().Username)

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	user, err := b.repo.GetUserByTelegramID(ctx, strconv.FormatInt(userID, 10))
	if err == nil {
		return tCtx.Send(fmt.Sprintf(
			"👋 Welcome back, %s!\nYou are registered as %s. Use /tasks to see your tasks.",
			user.Name, roles.Name(user.Role),
		))
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		b.log.Error("Failed to look up user", "id", userID, sl.Err(err))
		return tCtx.Send("🚫 Internal server error, please try again later")
	}

	return tCtx.Send("👋 Welcome to the restaurant task manager!\nPick your role to register:", roleMenu())
}

// roleMenu builds the inline role-selection keyboard, one button per role.
func roleMenu() *telebot.ReplyMarkup {
	menu := &telebot.ReplyMarkup{}

	rows := make([]telebot.Row, 0, len(roles.All()))
	for _, role := range roles.All() {
		rows = append(rows, menu.Row(menu.Data(roles.Name(role), "pick_role", role)))
	}
	menu.Inline(rows...)

	return menu
}

// rolePickHandler finishes registration after a role button press.
func (b *Bot) rolePickHandler(tCtx telebot.Context) error {
	userID := tCtx.Sender().ID
	role := tCtx.Data()

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	name := strings.TrimSpace(tCtx.Sender().FirstName + " " + tCtx.Sender().LastName)
	if name == "" {
		name = tCtx.Sender().Username
	}

	err := b.repo.RegisterUser(ctx, strconv.FormatInt(userID, 10), name, role, models.DefaultLocation)
	if err != nil {
		b.log.Error("Failed to register user", "id", userID, "role", role, sl.Err(err))
		return tCtx.Send("🚫 Failed to register, please try again later")
	}

	b.metrics.NewUsers.Inc()
	b.log.Info("User registered", "id", userID, "name", name, "role", role)

	_ = tCtx.Respond()
	return tCtx.Edit(fmt.Sprintf("✅ You are registered as %s. Use /tasks to see your tasks.", roles.Name(role)))
}

// tasksHandler lists the caller's tasks with priority badges.
func (b *Bot) tasksHandler(tCtx telebot.Context) error {
	userID := strconv.FormatInt(tCtx.Sender().ID, 10)

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	tasks, err := b.repo.GetTasksByRecipient(ctx, userID)
	if err != nil {
		b.log.Error("Failed to list tasks", "id", userID, sl.Err(err))
		return tCtx.Send("🚫 Internal server error, please try again later")
	}
	if len(tasks) == 0 {
		return tCtx.Send("🎉 No tasks for you yet.")
	}

	var builder strings.Builder
	builder.WriteString("🗒 <b>Your tasks</b>\n\n")
	for _, task := range tasks {
		emoji, _ := roles.PriorityBadge(task.Priority)
		fmt.Fprintf(&builder, "%s <b>%s</b>\n📍 %s | ⏰ %s\n\n", emoji, task.Title, task.Zone, task.Deadline)
	}

	return tCtx.Send(builder.String(), telebot.ModeHTML)
}

// reportHandler exports the caller's tasks as an xlsx document.
func (b *Bot) reportHandler(tCtx telebot.Context) error {
	userID := strconv.FormatInt(tCtx.Sender().ID, 10)

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	tasks, err := b.repo.GetTasksByRecipient(ctx, userID)
	if err != nil {
		b.log.Error("Failed to fetch tasks for report", "id", userID, sl.Err(err))
		return tCtx.Send("🚫 Internal server error, please try again later")
	}

	buffer, err := report.GenerateExcelReport(tasks)
	if err != nil {
		if errors.Is(err, report.ErrNoTasks) {
			return tCtx.Send("🎉 No tasks to report yet.")
		}
		b.log.Error("Failed to generate report", "id", userID, sl.Err(err))
		return tCtx.Send("🚫 Failed to generate report, please try again later")
	}

	document := &telebot.Document{
		File:     telebot.FromReader(buffer),
		FileName: "my_tasks.xlsx",
		MIME:     "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	}
	return tCtx.Send(document)
}

// reportTaskHandler reacts to the report button attached to a task
// notification and waits for a photo from the user.
func (b *Bot) reportTaskHandler(tCtx telebot.Context) error {
	b.state.Set(tCtx.Sender().ID, UserState{
		WaitingFor: stateAwaitingPhoto,
		TaskSender: tCtx.Data(),
	})

	_ = tCtx.Respond()
	return tCtx.Send("📸 Send a photo of the completed task.")
}

// photoHandler accepts a photo report if one was requested.
func (b *Bot) photoHandler(tCtx telebot.Context) error {
	userID := tCtx.Sender().ID

	state, ok := b.state.Get(userID)
	if !ok || state.WaitingFor != stateAwaitingPhoto {
		return tCtx.Reply("ℹ️ Press the report button under a task notification first.")
	}

	b.log.Info("Photo report received", "id", userID, "task_sender", state.TaskSender)
	return tCtx.Send("✅ Report accepted, thank you!")
}

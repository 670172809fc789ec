package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Houeta/restobot/internal/lib/logger/sl"
	"github.com/Houeta/restobot/internal/models"
	"github.com/Houeta/restobot/internal/notifier"
	"github.com/Houeta/restobot/internal/repository"
	"github.com/Houeta/restobot/internal/roles"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Login      string `json:"login"`
	Password   string `json:"password"`
	TelegramID string `json:"tg_id"`
}

type checkTelegramRequest struct {
	TelegramID string `json:"tg_id"`
}

type taskRequest struct {
	SenderID     string   `json:"sender_tg_id"`
	RecipientIDs []string `json:"recipient_ids"`
	Title        string   `json:"title"`
	Zone         string   `json:"zone"`
	Priority     string   `json:"priority"`
	Description  string   `json:"description"`
	Deadline     string   `json:"deadline"`
}

type userPayload struct {
	TelegramID string `json:"tg_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Location   string `json:"location"`
}

type employeePayload struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	RoleName string `json:"role_name"`
}

func errorJSON(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// loginHandler checks web credentials against the accounts collection and
// registers the employee on success. Web logins without a Telegram ID get a
// synthesized web-session identifier.
func (s *Server) loginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid request body")
		return
	}

	login := strings.TrimSpace(req.Login)
	password := strings.TrimSpace(req.Password)
	if login == "" || password == "" {
		errorJSON(c, http.StatusBadRequest, "login and password are required")
		return
	}

	start := time.Now()
	account, err := s.repo.CheckAccount(c.Request.Context(), login, password)
	s.metrics.DBQueryDuration.WithLabelValues("check_account").Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			errorJSON(c, http.StatusUnauthorized, "invalid login or password")
			return
		}
		s.log.Error("Failed to check account", "login", login, sl.Err(err))
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}

	telegramID := req.TelegramID
	if telegramID == "" {
		telegramID = fmt.Sprintf("%s%d", models.WebIDPrefix, time.Now().Unix())
	}

	if err = s.repo.RegisterUser(
		c.Request.Context(), telegramID, account.Name, account.Role, account.Location,
	); err != nil {
		s.log.Error("Failed to register user", "tg_id", telegramID, sl.Err(err))
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": userPayload{
		TelegramID: telegramID,
		Name:       account.Name,
		Role:       account.Role,
		Location:   account.Location,
	}})
}

// checkTelegramHandler resolves an employee by the identifier supplied by
// the web client, typically taken from the page URL.
func (s *Server) checkTelegramHandler(c *gin.Context) {
	var req checkTelegramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.TelegramID == "" {
		errorJSON(c, http.StatusBadRequest, "tg_id is required")
		return
	}

	user, err := s.repo.GetUserByTelegramID(c.Request.Context(), req.TelegramID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			errorJSON(c, http.StatusNotFound, "user not found, open the bot and send /start first")
			return
		}
		s.log.Error("Failed to get user", "tg_id", req.TelegramID, sl.Err(err))
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": userPayload{
		TelegramID: user.TelegramID,
		Name:       user.Name,
		Role:       user.Role,
		Location:   user.Location,
	}})
}

// employeesHandler lists active employees with translated role names.
func (s *Server) employeesHandler(c *gin.Context) {
	users, err := s.repo.GetAllUsers(c.Request.Context())
	if err != nil {
		s.log.Error("Failed to list employees", sl.Err(err))
		errorJSON(c, http.StatusInternalServerError, "internal server error")
		return
	}

	employees := make([]employeePayload, 0, len(users))
	for _, user := range users {
		if user.Status != models.StatusActive {
			continue
		}
		employees = append(employees, employeePayload{
			ID:       user.TelegramID,
			Name:     user.Name,
			Role:     user.Role,
			RoleName: roles.Name(user.Role),
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "employees": employees})
}

// createTasksHandler creates one task record per recipient and queues one
// notification per recipient. The response never waits for deliveries.
func (s *Server) createTasksHandler(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if missing, ok := firstMissingField(req); !ok {
		errorJSON(c, http.StatusBadRequest, fmt.Sprintf("field %s is required", missing))
		return
	}

	description := req.Description
	if description == "" {
		description = req.Title
	}
	deadline := req.Deadline
	if deadline == "" {
		deadline = models.DefaultDeadline
	}

	taskIDs := make([]int, 0, len(req.RecipientIDs))
	for _, recipientID := range req.RecipientIDs {
		start := time.Now()
		taskID, err := s.repo.CreateTask(c.Request.Context(), models.Task{
			SenderID:    req.SenderID,
			RecipientID: recipientID,
			Title:       req.Title,
			Description: description,
			Deadline:    deadline,
			Priority:    req.Priority,
			Zone:        req.Zone,
		})
		s.metrics.DBQueryDuration.WithLabelValues("create_task").Observe(time.Since(start).Seconds())
		if err != nil {
			s.log.Error("Failed to create task", "recipient", recipientID, sl.Err(err))
			errorJSON(c, http.StatusInternalServerError, "internal server error")
			return
		}
		taskIDs = append(taskIDs, taskID)
		s.metrics.TasksCreated.Inc()

		if !s.dispatcher.Enqueue(notifier.Job{
			SenderID:    req.SenderID,
			RecipientID: recipientID,
			Title:       req.Title,
			Zone:        req.Zone,
			Deadline:    deadline,
			Priority:    req.Priority,
		}) {
			s.log.Warn("Notification not queued", "recipient", recipientID, "task_id", taskID)
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "task_ids": taskIDs})
}

// firstMissingField reports the first missing required task field, in the
// order the API documents them.
func firstMissingField(req taskRequest) (string, bool) {
	switch {
	case req.SenderID == "":
		return "sender_tg_id", false
	case len(req.RecipientIDs) == 0:
		return "recipient_ids", false
	case req.Title == "":
		return "title", false
	case req.Zone == "":
		return "zone", false
	case req.Priority == "":
		return "priority", false
	}
	return "", true
}

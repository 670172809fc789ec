package repository

import (
	"context"
	"fmt"

	"github.com/Houeta/restobot/internal/models"
)

// CreateTask inserts a single task record and returns its identifier.
// A multi-recipient task request is stored as independent records, one
// per recipient, each created by its own call.
func (r *Repository) CreateTask(ctx context.Context, task models.Task) (int, error) {
	var taskID int
	query := `
		INSERT INTO tasks (sender_tg_id, recipient_tg_id, title, description, deadline, priority, zone)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING task_id;
	`

	err := r.db.QueryRow(ctx, query,
		task.SenderID, task.RecipientID, task.Title, task.Description,
		task.Deadline, task.Priority, task.Zone,
	).Scan(&taskID)
	if err != nil {
		return 0, fmt.Errorf("failed to create task: %w", err)
	}

	return taskID, nil
}

// GetTasksByRecipient retrieves the tasks assigned to the given employee,
// ordered by creation date in descending order.
func (r *Repository) GetTasksByRecipient(ctx context.Context, telegramID string) ([]models.Task, error) {
	query := `
		SELECT task_id, sender_tg_id, recipient_tg_id, title, description, deadline, priority, zone, created_at
		FROM tasks
		WHERE recipient_tg_id = $1
		ORDER BY created_at DESC;
	`

	rows, err := r.db.Query(ctx, query, telegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var task models.Task
		if errScan := rows.Scan(
			&task.ID, &task.SenderID, &task.RecipientID, &task.Title, &task.Description,
			&task.Deadline, &task.Priority, &task.Zone, &task.CreatedAt,
		); errScan != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", errScan)
		}
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read task rows: %w", err)
	}

	return tasks, nil
}

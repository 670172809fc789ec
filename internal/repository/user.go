package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Houeta/restobot/internal/models"
	"github.com/jackc/pgx/v5"
)

var (
	// ErrAccountNotFound is returned when no account matches the given login and password.
	ErrAccountNotFound = errors.New("account with this login and password not found")
	// ErrUserNotFound is returned when an employee with the specified identifier is not registered.
	ErrUserNotFound = errors.New("employee with this identifier not found")
)

// CheckAccount looks up an account by login and password.
// Accounts store passwords in plaintext, so the comparison happens
// directly in the query.
func (r *Repository) CheckAccount(ctx context.Context, login, password string) (models.Account, error) {
	var account models.Account
	query := `
		SELECT login, password, name, role, location FROM accounts
		WHERE login = $1 AND password = $2;
	`

	err := r.db.QueryRow(ctx, query, login, password).Scan(
		&account.Login, &account.Password, &account.Name, &account.Role, &account.Location,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		return models.Account{}, fmt.Errorf("failed to check account: %w", err)
	}

	if account.Location == "" {
		account.Location = models.DefaultLocation
	}

	return account, nil
}

// RegisterUser registers an employee or refreshes an existing registration.
// Registration is an upsert keyed by the external identifier: a repeated
// login or /start updates the name, role, and location in place and
// reactivates the employee. Employees are never deleted.
func (r *Repository) RegisterUser(ctx context.Context, telegramID, name, role, location string) error {
	query := `
		INSERT INTO employees (tg_id, name, role, location, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (tg_id) DO UPDATE SET
			name = EXCLUDED.name,
			role = EXCLUDED.role,
			location = EXCLUDED.location,
			status = EXCLUDED.status;
	`

	_, err := r.db.Exec(ctx, query, telegramID, name, role, location, models.StatusActive)
	if err != nil {
		return fmt.Errorf("failed to register user %s: %w", telegramID, err)
	}

	return nil
}

// GetUserByTelegramID retrieves an employee record by its external identifier,
// which is either a numeric Telegram ID or a synthesized web-session ID.
func (r *Repository) GetUserByTelegramID(ctx context.Context, telegramID string) (models.Employee, error) {
	var employee models.Employee
	query := `
		SELECT tg_id, name, role, location, status, created_at FROM employees
		WHERE tg_id = $1;
	`

	err := r.db.QueryRow(ctx, query, telegramID).Scan(
		&employee.TelegramID, &employee.Name, &employee.Role,
		&employee.Location, &employee.Status, &employee.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, ErrUserNotFound
		}
		return models.Employee{}, fmt.Errorf("failed to get employee data: %w", err)
	}

	return employee, nil
}

// GetAllUsers retrieves every registered employee, most recent first.
func (r *Repository) GetAllUsers(ctx context.Context) ([]models.Employee, error) {
	query := `
		SELECT tg_id, name, role, location, status, created_at FROM employees
		ORDER BY created_at DESC;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		var employee models.Employee
		if errScan := rows.Scan(
			&employee.TelegramID, &employee.Name, &employee.Role,
			&employee.Location, &employee.Status, &employee.CreatedAt,
		); errScan != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", errScan)
		}
		employees = append(employees, employee)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employee rows: %w", err)
	}

	return employees, nil
}

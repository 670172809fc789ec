package repository_test

import (
	"testing"
	"time"

	"github.com/Houeta/restobot/internal/models"
	"github.com/Houeta/restobot/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const selectAccount = `
	SELECT login, password, name, role, location FROM accounts
	WHERE login = \$1 AND password = \$2;
`

const upsertEmployee = `
	INSERT INTO employees \(tg_id, name, role, location, status\)
	VALUES \(\$1, \$2, \$3, \$4, \$5\)
`

const selectEmployee = `
	SELECT tg_id, name, role, location, status, created_at FROM employees
	WHERE tg_id = \$1;
`

const selectAllEmployees = `
	SELECT tg_id, name, role, location, status, created_at FROM employees
	ORDER BY created_at DESC;
`

func TestCheckAccount(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock)

		mock.ExpectQuery(selectAccount).
			WithArgs("ivan", "1234").
			WillReturnRows(pgxmock.NewRows([]string{"login", "password", "name", "role", "location"}).
				AddRow("ivan", "1234", "Ivan Petrov", "waiter", "Surgut"))

		account, err := repo.CheckAccount(ctx, "ivan", "1234")

		require.NoError(t, err)
		assert.Equal(t, "Ivan Petrov", account.Name)
		assert.Equal(t, "waiter", account.Role)
		assert.Equal(t, "Surgut", account.Location)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - empty location falls back to default", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock)

		mock.ExpectQuery(selectAccount).
			WithArgs("ivan", "1234").
			WillReturnRows(pgxmock.NewRows([]string{"login", "password", "name", "role", "location"}).
				AddRow("ivan", "1234", "Ivan Petrov", "waiter", ""))

		account, err := repo.CheckAccount(ctx, "ivan", "1234")

		require.NoError(t, err)
		assert.Equal(t, models.DefaultLocation, account.Location)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - account not found", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock)

		mock.ExpectQuery(selectAccount).
			WithArgs("ivan", "wrong").
			WillReturnError(pgx.ErrNoRows)

		_, err = repo.CheckAccount(ctx, "ivan", "wrong")

		require.ErrorIs(t, err, repository.ErrAccountNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - query failed", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock)

		mock.ExpectQuery(selectAccount).
			WithArgs("ivan", "1234").
			WillReturnError(assert.AnError)

		_, err = repo.CheckAccount(ctx, "ivan", "1234")

		require.Error(t, err)
		require.ErrorIs(t, err, assert.AnError)
		require.ErrorContains(t, err, "failed to check account")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRegisterUser(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock)

		mock.ExpectExec(upsertEmployee).
			WithArgs("12345", "Ivan Petrov", "waiter", "Surgut", models.StatusActive).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err = repo.RegisterUser(ctx, "12345", "Ivan Petrov", "waiter", "Surgut")

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - exec failed", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock)

		mock.ExpectExec(upsertEmployee).
			WithArgs("12345", "Ivan Petrov", "waiter", "Surgut", models.StatusActive).
			WillReturnError(assert.AnError)

		err = repo.RegisterUser(ctx, "12345", "Ivan Petrov", "waiter", "Surgut")

		require.Error(t, err)
		require.ErrorIs(t, err, assert.AnError)
		require.ErrorContains(t, err, "failed to register user")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetUserByTelegramID(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock)

		mock.ExpectQuery(selectEmployee).
			WithArgs("12345").
			WillReturnRows(pgxmock.NewRows([]string{"tg_id", "name", "role", "location", "status", "created_at"}).
				AddRow("12345", "Ivan Petrov", "waiter", "Surgut", "active", createdAt))

		employee, err := repo.GetUserByTelegramID(ctx, "12345")

		require.NoError(t, err)
		assert.Equal(t, "12345", employee.TelegramID)
		assert.Equal(t, "Ivan Petrov", employee.Name)
		assert.Equal(t, "waiter", employee.Role)
		assert.Equal(t, "active", employee.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - user not found", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock)

		mock.ExpectQuery(selectEmployee).
			WithArgs("web_1700000000").
			WillReturnError(pgx.ErrNoRows)

		_, err = repo.GetUserByTelegramID(ctx, "web_1700000000")

		require.ErrorIs(t, err, repository.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - query failed", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock)

		mock.ExpectQuery(selectEmployee).
			WithArgs("12345").
			WillReturnError(assert.AnError)

		_, err = repo.GetUserByTelegramID(ctx, "12345")

		require.Error(t, err)
		require.ErrorContains(t, err, "failed to get employee data")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetAllUsers(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock)

		mock.ExpectQuery(selectAllEmployees).
			WillReturnRows(pgxmock.NewRows([]string{"tg_id", "name", "role", "location", "status", "created_at"}).
				AddRow("111", "Ivan Petrov", "waiter", "Surgut", "active", createdAt).
				AddRow("web_1700000000", "Anna Orlova", "cook", "Surgut", "inactive", createdAt))

		employees, err := repo.GetAllUsers(ctx)

		require.NoError(t, err)
		require.Len(t, employees, 2)
		assert.Equal(t, "111", employees[0].TelegramID)
		assert.Equal(t, "inactive", employees[1].Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - query failed", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock)

		mock.ExpectQuery(selectAllEmployees).WillReturnError(assert.AnError)

		_, err = repo.GetAllUsers(ctx)

		require.Error(t, err)
		require.ErrorContains(t, err, "failed to query employees")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - scan failed", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock)

		mock.ExpectQuery(selectAllEmployees).
			WillReturnRows(pgxmock.NewRows([]string{"tg_id", "name"}).
				AddRow("111", "Ivan Petrov"))

		_, err = repo.GetAllUsers(ctx)

		require.Error(t, err)
		require.ErrorContains(t, err, "failed to scan employee row")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

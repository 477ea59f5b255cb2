package repositories

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"staff-registry/internal/entities"
	apperrors "staff-registry/pkg/errors"
)

var (
	testPool   *pgxpool.Pool
	testSchema SchemaRepositoryInterface
)

// TestMain поднимает схему в тестовой БД из TEST_DATABASE_URL.
// Без переменной интеграционные тесты пропускаются, юнит-тесты пакета идут как обычно.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		os.Exit(m.Run())
	}

	ctx := context.Background()
	var err error
	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("Не удалось подключиться к тестовой БД: %v", err)
	}

	testSchema, err = NewSchemaRepository(dsn, zap.NewNop())
	if err != nil {
		log.Fatalf("Не удалось подготовить миграции: %v", err)
	}
	if err := testSchema.Reset(ctx); err != nil {
		log.Fatalf("Не удалось применить схему БД: %v", err)
	}

	code := m.Run()
	testPool.Close()
	_ = testSchema.Close()
	os.Exit(code)
}

// cleanupTables очищает таблицы для обеспечения изоляции тестов.
func cleanupTables(t *testing.T) {
	t.Helper()
	if testPool == nil {
		t.Skip("TEST_DATABASE_URL не задан")
	}
	_, err := testPool.Exec(context.Background(), `TRUNCATE TABLE employees, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err, "Не удалось очистить таблицы")
}

func newUser(telegramID int64, firstName string) entities.User {
	return entities.User{TelegramID: telegramID, FirstName: firstName}
}

func newEmployee(telegramID int64, zupID, login string) entities.Employee {
	return entities.Employee{
		TelegramID:       telegramID,
		ZupID:            zupID,
		Login:            login,
		FirstName:        "Ann",
		LastName:         "Lee",
		FullName:         "Lee Ann",
		Age:              30,
		DateOfBirth:      time.Date(1994, time.May, 1, 0, 0, 0, 0, time.UTC),
		Gender:           entities.GenderFemale,
		Position:         "Engineer",
		Department:       "IT",
		Organisation:     "ACME",
		FullOrgStructure: "ACME / IT",
		DateOfStart:      time.Date(2020, time.January, 10, 0, 0, 0, 0, time.UTC),
		Phone:            "+79990001122",
		Email:            "ann.lee@example.com",
		IsWorking:        true,
	}
}

func assertHTTPCode(t *testing.T, err error, code int, message string) {
	t.Helper()
	var httpErr *apperrors.HttpError
	require.True(t, errors.As(err, &httpErr), "ожидался HttpError, получено %v", err)
	assert.Equal(t, code, httpErr.Code)
	assert.Equal(t, message, httpErr.Message)
}

func TestUserRepository_Integration_RoundTrip(t *testing.T) {
	cleanupTables(t)
	ctx := context.Background()
	repo := NewUserRepository(testPool, zap.NewNop())

	user := newUser(100, "Ann")
	user.Username = null.StringFrom("ann_lee")
	id, err := repo.CreateUser(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)

	found, err := repo.FindUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(100), found.TelegramID)
	assert.Equal(t, "Ann", found.FirstName)
	assert.Equal(t, "ann_lee", found.Username.String)
	assert.False(t, found.LastName.Valid)
	assert.False(t, found.EmployeeID.Valid)
	assert.False(t, found.CreatedAt.IsZero())

	byTelegram, err := repo.FindUserByTelegramID(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, found.ID, byTelegram.ID)

	list, err := repo.GetUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestUserRepository_Integration_PartialUpdate(t *testing.T) {
	cleanupTables(t)
	ctx := context.Background()
	repo := NewUserRepository(testPool, zap.NewNop())

	user := newUser(100, "Ann")
	user.PhoneNumber = null.StringFrom("+7999000")
	id, err := repo.CreateUser(ctx, user)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateUser(ctx, id, map[string]interface{}{"last_name": "Lee"}))
	updated, err := repo.FindUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Lee", updated.LastName.String)
	assert.Equal(t, "Ann", updated.FirstName)
	assert.Equal(t, "+7999000", updated.PhoneNumber.String)

	require.NoError(t, repo.UpdateUser(ctx, id, map[string]interface{}{"phone_number": nil}))
	cleared, err := repo.FindUser(ctx, id)
	require.NoError(t, err)
	assert.False(t, cleared.PhoneNumber.Valid)
	assert.Equal(t, "Lee", cleared.LastName.String)

	assert.ErrorIs(t, repo.UpdateUser(ctx, 999, map[string]interface{}{"first_name": "X"}), apperrors.ErrNotFound)
}

func TestUserRepository_Integration_Uniqueness(t *testing.T) {
	cleanupTables(t)
	ctx := context.Background()
	repo := NewUserRepository(testPool, zap.NewNop())

	first := newUser(100, "Ann")
	first.Username = null.StringFrom("ann")
	_, err := repo.CreateUser(ctx, first)
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, newUser(100, "Other"))
	assertHTTPCode(t, err, http.StatusConflict, "User with this id_telegram already exists")

	second := newUser(200, "Bob")
	second.Username = null.StringFrom("ann")
	_, err = repo.CreateUser(ctx, second)
	assertHTTPCode(t, err, http.StatusConflict, "Username is already taken")
}

func TestUserRepository_Integration_DeleteCascadesToEmployee(t *testing.T) {
	cleanupTables(t)
	ctx := context.Background()
	users := NewUserRepository(testPool, zap.NewNop())
	employees := NewEmployeeRepository(testPool, zap.NewNop())

	userID, err := users.CreateUser(ctx, newUser(100, "Ann"))
	require.NoError(t, err)
	employeeID, err := employees.CreateEmployee(ctx, newEmployee(100, "ZUP-1", "a.lee"))
	require.NoError(t, err)

	withEmployee, err := users.FindUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, employeeID, withEmployee.EmployeeID.Uint64)

	require.NoError(t, users.DeleteUser(ctx, userID))

	_, err = users.FindUser(ctx, userID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = employees.FindEmployee(ctx, employeeID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.ErrorIs(t, users.DeleteUser(ctx, userID), apperrors.ErrNotFound)
}

func TestEmployeeRepository_Integration_RoundTripAndUpdate(t *testing.T) {
	cleanupTables(t)
	ctx := context.Background()
	_, err := NewUserRepository(testPool, zap.NewNop()).CreateUser(ctx, newUser(100, "Ann"))
	require.NoError(t, err)
	repo := NewEmployeeRepository(testPool, zap.NewNop())

	id, err := repo.CreateEmployee(ctx, newEmployee(100, "ZUP-1", "a.lee"))
	require.NoError(t, err)

	found, err := repo.FindEmployeeByTelegramID(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, id, found.ID)
	assert.Equal(t, "1994-05-01", found.DateOfBirth.Format("2006-01-02"))
	assert.False(t, found.DateOfEnd.Valid)
	assert.True(t, found.IsWorking)

	end := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateEmployee(ctx, id, map[string]interface{}{
		"date_of_end": end,
		"is_working":  false,
		"age":         int64(31),
	}))

	updated, err := repo.FindEmployee(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-30", updated.DateOfEnd.Time.Format("2006-01-02"))
	assert.False(t, updated.IsWorking)
	assert.Equal(t, 31, updated.Age)
	assert.Equal(t, "a.lee", updated.Login)
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))

	_, err = repo.FindEmployee(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestEmployeeRepository_Integration_Constraints(t *testing.T) {
	cleanupTables(t)
	ctx := context.Background()
	users := NewUserRepository(testPool, zap.NewNop())
	repo := NewEmployeeRepository(testPool, zap.NewNop())

	_, err := repo.CreateEmployee(ctx, newEmployee(100, "ZUP-1", "a.lee"))
	assertHTTPCode(t, err, http.StatusConflict, "User with this id_telegram does not exist")

	_, err = users.CreateUser(ctx, newUser(100, "Ann"))
	require.NoError(t, err)
	_, err = users.CreateUser(ctx, newUser(200, "Bob"))
	require.NoError(t, err)

	_, err = repo.CreateEmployee(ctx, newEmployee(100, "ZUP-1", "a.lee"))
	require.NoError(t, err)

	_, err = repo.CreateEmployee(ctx, newEmployee(100, "ZUP-2", "b.lee"))
	assertHTTPCode(t, err, http.StatusConflict, "Employee with this id_telegram already exists")
	_, err = repo.CreateEmployee(ctx, newEmployee(200, "ZUP-1", "b.lee"))
	assertHTTPCode(t, err, http.StatusConflict, "Employee with this zup_id already exists")
	_, err = repo.CreateEmployee(ctx, newEmployee(200, "ZUP-2", "a.lee"))
	assertHTTPCode(t, err, http.StatusConflict, "Employee with this login already exists")

	young := newEmployee(200, "ZUP-3", "c.lee")
	young.Age = 17
	_, err = repo.CreateEmployee(ctx, young)
	assertHTTPCode(t, err, http.StatusBadRequest, "Age must be between 18 and 100")
}

func TestWithTx_Integration_RollbackOnError(t *testing.T) {
	cleanupTables(t)
	ctx := context.Background()
	failure := errors.New("сбой после вставки")

	err := WithTx(ctx, testPool, func(tx pgx.Tx) error {
		if _, err := NewUserRepository(tx, zap.NewNop()).CreateUser(ctx, newUser(100, "Ann")); err != nil {
			return err
		}
		return failure
	})
	assert.ErrorIs(t, err, failure)

	_, err = NewUserRepository(testPool, zap.NewNop()).FindUserByTelegramID(ctx, 100)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSchemaRepository_Integration_ResetIsIdempotent(t *testing.T) {
	cleanupTables(t)
	ctx := context.Background()
	_, err := NewUserRepository(testPool, zap.NewNop()).CreateUser(ctx, newUser(100, "Ann"))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		require.NoError(t, testSchema.Reset(ctx))

		var users, employees int
		require.NoError(t, testPool.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&users))
		require.NoError(t, testPool.QueryRow(ctx, "SELECT COUNT(*) FROM employees").Scan(&employees))
		assert.Zero(t, users)
		assert.Zero(t, employees)

		version, err := testSchema.Version(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), version)
	}
}

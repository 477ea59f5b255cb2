package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"staff-registry/internal/entities"
	apperrors "staff-registry/pkg/errors"
)

const employeeTable = "employees"

var employeeColumns = []string{
	"id_telegram", "zup_id", "login", "first_name", "last_name", "middle_name", "full_name",
	"age", "date_of_birth", "gender", "position", "department", "organisation",
	"full_org_structure", "date_of_start", "date_of_end", "phone", "email", "is_working",
}

var employeeSelectColumns = append([]string{"id"}, append(employeeColumns, "created_at", "updated_at")...)

var employeeConstraintMessages = map[string]string{
	"employees_id_telegram_key":  "Employee with this id_telegram already exists",
	"employees_zup_id_key":       "Employee with this zup_id already exists",
	"employees_login_key":        "Employee with this login already exists",
	"employees_id_telegram_fkey": "User with this id_telegram does not exist",
	"employees_age_check":        "Age must be between 18 and 100",
	"employees_gender_check":     "Gender must be male or female",
}

type EmployeeRepositoryInterface interface {
	CreateEmployee(ctx context.Context, employee entities.Employee) (uint64, error)
	GetEmployees(ctx context.Context) ([]entities.Employee, error)
	FindEmployee(ctx context.Context, id uint64) (*entities.Employee, error)
	FindEmployeeByTelegramID(ctx context.Context, telegramID int64) (*entities.Employee, error)
	UpdateEmployee(ctx context.Context, id uint64, changes map[string]interface{}) error
	DeleteEmployee(ctx context.Context, id uint64) error
}

type EmployeeRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewEmployeeRepository(storage Querier, logger *zap.Logger) EmployeeRepositoryInterface {
	return &EmployeeRepository{storage: storage, logger: logger}
}

func scanEmployee(row pgx.Row) (*entities.Employee, error) {
	var e entities.Employee
	err := row.Scan(
		&e.ID, &e.TelegramID, &e.ZupID, &e.Login, &e.FirstName, &e.LastName, &e.MiddleName, &e.FullName,
		&e.Age, &e.DateOfBirth, &e.Gender, &e.Position, &e.Department, &e.Organisation,
		&e.FullOrgStructure, &e.DateOfStart, &e.DateOfEnd, &e.Phone, &e.Email, &e.IsWorking,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования employee: %w", err)
	}
	return &e, nil
}

func (r *EmployeeRepository) CreateEmployee(ctx context.Context, e entities.Employee) (uint64, error) {
	query, args, err := psql.Insert(employeeTable).
		Columns(employeeColumns...).
		Values(
			e.TelegramID, e.ZupID, e.Login, e.FirstName, e.LastName, e.MiddleName, e.FullName,
			e.Age, e.DateOfBirth, e.Gender, e.Position, e.Department, e.Organisation,
			e.FullOrgStructure, e.DateOfStart, e.DateOfEnd, e.Phone, e.Email, e.IsWorking,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, classifyPgError(err, employeeConstraintMessages)
	}
	return id, nil
}

func (r *EmployeeRepository) GetEmployees(ctx context.Context) ([]entities.Employee, error) {
	query, args, err := psql.Select(employeeSelectColumns...).From(employeeTable).OrderBy("id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения сотрудников: %w", err)
	}
	defer rows.Close()

	employees := make([]entities.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}
	return employees, rows.Err()
}

func (r *EmployeeRepository) FindEmployee(ctx context.Context, id uint64) (*entities.Employee, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *EmployeeRepository) FindEmployeeByTelegramID(ctx context.Context, telegramID int64) (*entities.Employee, error) {
	return r.findOne(ctx, sq.Eq{"id_telegram": telegramID})
}

func (r *EmployeeRepository) findOne(ctx context.Context, where sq.Eq) (*entities.Employee, error) {
	query, args, err := psql.Select(employeeSelectColumns...).From(employeeTable).Where(where).ToSql()
	if err != nil {
		return nil, err
	}
	return scanEmployee(r.storage.QueryRow(ctx, query, args...))
}

func (r *EmployeeRepository) UpdateEmployee(ctx context.Context, id uint64, changes map[string]interface{}) error {
	if len(changes) == 0 {
		return nil
	}
	query, args, err := psql.Update(employeeTable).
		SetMap(changes).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	r.logger.Debug("Обновление сотрудника", zap.Uint64("id", id), zap.String("query", query))

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return classifyPgError(err, employeeConstraintMessages)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EmployeeRepository) DeleteEmployee(ctx context.Context, id uint64) error {
	query, args, err := psql.Delete(employeeTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

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

const userTable = "users"

var userSelectColumns = []string{
	"u.id", "u.id_telegram", "u.username", "u.first_name", "u.last_name", "u.phone_number",
	"e.id", "u.created_at", "u.updated_at",
}

var userConstraintMessages = map[string]string{
	"users_id_telegram_key":  "User with this id_telegram already exists",
	"users_username_key":     "Username is already taken",
	"users_phone_number_key": "Phone number is already in use",
}

type UserRepositoryInterface interface {
	CreateUser(ctx context.Context, user entities.User) (uint64, error)
	GetUsers(ctx context.Context) ([]entities.User, error)
	FindUser(ctx context.Context, id uint64) (*entities.User, error)
	FindUserByTelegramID(ctx context.Context, telegramID int64) (*entities.User, error)
	UpdateUser(ctx context.Context, id uint64, changes map[string]interface{}) error
	DeleteUser(ctx context.Context, id uint64) error
}

type UserRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewUserRepository(storage Querier, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID, &user.TelegramID, &user.Username, &user.FirstName, &user.LastName, &user.PhoneNumber,
		&user.EmployeeID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) selectUsers() sq.SelectBuilder {
	return psql.Select(userSelectColumns...).
		From(userTable + " u").
		LeftJoin("employees e ON e.id_telegram = u.id_telegram")
}

func (r *UserRepository) CreateUser(ctx context.Context, user entities.User) (uint64, error) {
	query, args, err := psql.Insert(userTable).
		Columns("id_telegram", "username", "first_name", "last_name", "phone_number").
		Values(user.TelegramID, user.Username, user.FirstName, user.LastName, user.PhoneNumber).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, classifyPgError(err, userConstraintMessages)
	}
	return id, nil
}

func (r *UserRepository) GetUsers(ctx context.Context) ([]entities.User, error) {
	query, args, err := r.selectUsers().OrderBy("u.id").ToSql()
	if err != nil {
		return nil, err
	}
	r.logger.Debug("Выполнение SQL-запроса списка пользователей", zap.String("query", query))

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения пользователей: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (r *UserRepository) FindUser(ctx context.Context, id uint64) (*entities.User, error) {
	return r.findOne(ctx, sq.Eq{"u.id": id})
}

func (r *UserRepository) FindUserByTelegramID(ctx context.Context, telegramID int64) (*entities.User, error) {
	return r.findOne(ctx, sq.Eq{"u.id_telegram": telegramID})
}

func (r *UserRepository) findOne(ctx context.Context, where sq.Eq) (*entities.User, error) {
	query, args, err := r.selectUsers().Where(where).ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.storage.QueryRow(ctx, query, args...))
}

func (r *UserRepository) UpdateUser(ctx context.Context, id uint64, changes map[string]interface{}) error {
	if len(changes) == 0 {
		return nil
	}
	query, args, err := psql.Update(userTable).
		SetMap(changes).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	r.logger.Debug("Обновление пользователя", zap.Uint64("id", id), zap.String("query", query))

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return classifyPgError(err, userConstraintMessages)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteUser удаляет строку; сотрудник с тем же id_telegram удаляется базой (ON DELETE CASCADE).
func (r *UserRepository) DeleteUser(ctx context.Context, id uint64) error {
	query, args, err := psql.Delete(userTable).Where(sq.Eq{"id": id}).ToSql()
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

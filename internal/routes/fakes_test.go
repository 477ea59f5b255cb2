package routes

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aarondl/null/v8"

	"staff-registry/internal/entities"
	apperrors "staff-registry/pkg/errors"
)

// memoryStore повторяет в памяти ограничения схемы: уникальность id_telegram,
// внешний ключ employees -> users и каскадное удаление.
type memoryStore struct {
	mu             sync.Mutex
	nextUserID     uint64
	nextEmployeeID uint64
	users          map[uint64]*entities.User
	employees      map[uint64]*entities.Employee
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:     make(map[uint64]*entities.User),
		employees: make(map[uint64]*entities.Employee),
	}
}

func (s *memoryStore) employeeIDFor(telegramID int64) null.Uint64 {
	for id, e := range s.employees {
		if e.TelegramID == telegramID {
			return null.Uint64From(id)
		}
	}
	return null.Uint64{}
}

type fakeUserRepository struct{ store *memoryStore }

func (r *fakeUserRepository) CreateUser(_ context.Context, user entities.User) (uint64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.TelegramID == user.TelegramID {
			return 0, apperrors.NewConflictError("User with this id_telegram already exists", nil)
		}
	}
	r.store.nextUserID++
	user.ID = r.store.nextUserID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.store.users[user.ID] = &user
	return user.ID, nil
}

func (r *fakeUserRepository) GetUsers(_ context.Context) ([]entities.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	list := make([]entities.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		cp := *u
		cp.EmployeeID = r.store.employeeIDFor(u.TelegramID)
		list = append(list, cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *fakeUserRepository) FindUser(_ context.Context, id uint64) (*entities.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *u
	cp.EmployeeID = r.store.employeeIDFor(u.TelegramID)
	return &cp, nil
}

func (r *fakeUserRepository) FindUserByTelegramID(ctx context.Context, telegramID int64) (*entities.User, error) {
	r.store.mu.Lock()
	var found uint64
	for id, u := range r.store.users {
		if u.TelegramID == telegramID {
			found = id
		}
	}
	r.store.mu.Unlock()
	if found == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.FindUser(ctx, found)
}

func (r *fakeUserRepository) UpdateUser(_ context.Context, id uint64, changes map[string]interface{}) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	if err := applyColumns(u, changes); err != nil {
		return err
	}
	u.UpdatedAt = time.Now()
	return nil
}

func (r *fakeUserRepository) DeleteUser(_ context.Context, id uint64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	for eid, e := range r.store.employees {
		if e.TelegramID == u.TelegramID {
			delete(r.store.employees, eid)
		}
	}
	delete(r.store.users, id)
	return nil
}

type fakeEmployeeRepository struct{ store *memoryStore }

func (r *fakeEmployeeRepository) CreateEmployee(_ context.Context, e entities.Employee) (uint64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	hasUser := false
	for _, u := range r.store.users {
		if u.TelegramID == e.TelegramID {
			hasUser = true
		}
	}
	if !hasUser {
		return 0, apperrors.NewConflictError("User with this id_telegram does not exist", nil)
	}
	for _, other := range r.store.employees {
		switch {
		case other.TelegramID == e.TelegramID:
			return 0, apperrors.NewConflictError("Employee with this id_telegram already exists", nil)
		case other.ZupID == e.ZupID:
			return 0, apperrors.NewConflictError("Employee with this zup_id already exists", nil)
		case other.Login == e.Login:
			return 0, apperrors.NewConflictError("Employee with this login already exists", nil)
		}
	}
	r.store.nextEmployeeID++
	e.ID = r.store.nextEmployeeID
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	r.store.employees[e.ID] = &e
	return e.ID, nil
}

func (r *fakeEmployeeRepository) GetEmployees(_ context.Context) ([]entities.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	list := make([]entities.Employee, 0, len(r.store.employees))
	for _, e := range r.store.employees {
		list = append(list, *e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *fakeEmployeeRepository) FindEmployee(_ context.Context, id uint64) (*entities.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	e, ok := r.store.employees[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEmployeeRepository) FindEmployeeByTelegramID(_ context.Context, telegramID int64) (*entities.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, e := range r.store.employees {
		if e.TelegramID == telegramID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeEmployeeRepository) UpdateEmployee(_ context.Context, id uint64, changes map[string]interface{}) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	e, ok := r.store.employees[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	if err := applyColumns(e, changes); err != nil {
		return err
	}
	e.UpdatedAt = time.Now()
	return nil
}

func (r *fakeEmployeeRepository) DeleteEmployee(_ context.Context, id uint64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.employees[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.store.employees, id)
	return nil
}

// applyColumns раскладывает значения патча по полям сущности с тем же тегом db.
func applyColumns(dst interface{}, changes map[string]interface{}) error {
	v := reflect.ValueOf(dst).Elem()
	t := v.Type()
	for column, value := range changes {
		applied := false
		for i := 0; i < t.NumField(); i++ {
			if strings.Split(t.Field(i).Tag.Get("db"), ",")[0] != column {
				continue
			}
			if err := setColumn(v.Field(i), value); err != nil {
				return fmt.Errorf("%s: %w", column, err)
			}
			applied = true
		}
		if !applied {
			return fmt.Errorf("неизвестная колонка %s", column)
		}
	}
	return nil
}

func setColumn(field reflect.Value, value interface{}) error {
	switch f := field.Addr().Interface().(type) {
	case *string:
		*f = value.(string)
	case *int:
		*f = int(value.(int64))
	case *bool:
		*f = value.(bool)
	case *time.Time:
		*f = value.(time.Time)
	case *null.String:
		if value == nil {
			*f = null.String{}
		} else {
			*f = null.StringFrom(value.(string))
		}
	case *null.Time:
		if value == nil {
			*f = null.Time{}
		} else {
			*f = null.TimeFrom(value.(time.Time))
		}
	default:
		return errors.New("неподдерживаемый тип поля")
	}
	return nil
}

type fakeSchemaRepository struct {
	resets  int
	version int64
	err     error
}

func (r *fakeSchemaRepository) Reset(context.Context) error {
	if r.err != nil {
		return r.err
	}
	r.resets++
	r.version = 2
	return nil
}

func (r *fakeSchemaRepository) Migrate(context.Context) error { return r.err }

func (r *fakeSchemaRepository) Version(context.Context) (int64, error) { return r.version, r.err }

func (r *fakeSchemaRepository) Close() error { return nil }

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

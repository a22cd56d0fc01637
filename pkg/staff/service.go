package staff

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vetcare-app/vetcare-backend/pkg/communication"
	"github.com/vetcare-app/vetcare-backend/pkg/database"
	"github.com/vetcare-app/vetcare-backend/pkg/locking"
	"github.com/vetcare-app/vetcare-backend/pkg/logger"
	"github.com/vetcare-app/vetcare-backend/pkg/users"
)

// lockTTL bounds how long a crashed holder can block an employee's record
const lockTTL = 10 * time.Second

// Service implements the staff self-service operations on top of the staff record of the calling employee
type Service struct {
	Repository RepositoryInterface
	Users      users.UserRepositoryInterface
	UserCache  users.UserCacheInterface
	Locker     locking.LockerInterface
	Transactor database.TransactorInterface
	Retrier    database.Retrier
	Logger     logger.Interface
	// Location decides where a calendar day starts
	Location *time.Location
	Now      func() time.Time
}

// NewService builds a Service with an in-process locker, no transactions and the default retry policy
func NewService(repository RepositoryInterface, userRepository users.UserRepositoryInterface, log logger.Interface) *Service {
	return &Service{
		Repository: repository,
		Users:      userRepository,
		Locker:     locking.NewLockerMemory(),
		Transactor: database.NoTransactor{},
		Retrier:    database.DefaultRetrier,
		Logger:     log,
		Location:   time.Local,
		Now:        time.Now,
	}
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Service) location() *time.Location {
	if s.Location == nil {
		return time.Local
	}
	return s.Location
}

func (s *Service) userFinder() *users.CachedFinder {
	return &users.CachedFinder{Repository: s.Users, Cache: s.UserCache}
}

// withLock runs fn while holding the lock of the employee's staff record
func (s *Service) withLock(ctx context.Context, userID string, fn func() error) error {
	lock, err := s.Locker.Acquire(ctx, locking.StaffKey(userID), lockTTL)
	if err != nil {
		return errors.Wrap(err, "acquire staff lock")
	}
	defer func() {
		if err := lock.Release(ctx); err != nil {
			s.Logger.Error("Problem releasing staff lock "+lock.Key(), err)
		}
	}()

	return fn()
}

// find loads the staff record with only fields, retrying transient failures
func (s *Service) find(ctx context.Context, userID string, fields ...string) (*StaffRecord, error) {
	var record *StaffRecord
	err := s.Retrier.Do(ctx, func() error {
		var err error
		record, err = s.Repository.FindByUserID(ctx, userID, fields...)
		return err
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// ListTasks returns the tasks of an employee in assignment order
func (s *Service) ListTasks(ctx context.Context, userID string) ([]Task, error) {
	record, err := s.find(ctx, userID, "tasks")
	if err != nil {
		return nil, err
	}

	if record.Tasks == nil {
		return []Task{}, nil
	}
	return record.Tasks, nil
}

// CompleteTask moves a task to completed, setting completion date and completer together.
// Completing an already completed task applies the transition again.
func (s *Service) CompleteTask(ctx context.Context, userID string, taskID string) (*Task, error) {
	var task *Task
	err := s.withLock(ctx, userID, func() error {
		completedAt := s.now()
		return s.Retrier.Do(ctx, func() error {
			var err error
			task, err = s.Repository.CompleteTask(ctx, userID, taskID, completedAt)
			return err
		})
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

// AssignTask validates and appends a task to an employee's record
func (s *Service) AssignTask(ctx context.Context, userID string, task *Task) error {
	task.prepare()
	err := validateStruct(task)
	if err != nil {
		return err
	}

	if task.DueDate.Before(task.StartDate) {
		return validationError("dueDate must not be before startDate")
	}

	return s.withLock(ctx, userID, func() error {
		return s.Repository.AddTask(ctx, userID, task)
	})
}

// Onboard creates the staff record of a new employee
func (s *Service) Onboard(ctx context.Context, userID string) (*StaffRecord, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	record := NewStaffRecord(user.ID)
	err = validateStruct(record)
	if err != nil {
		return nil, err
	}

	err = s.Repository.Add(ctx, record)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// asNotFound replaces any NotFound error with target
func asNotFound(err error, target error) error {
	if errors.Is(err, communication.ErrNotFound) {
		return target
	}
	return err
}

package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// Store hands out units of work over a gorm connection
type Store struct {
	db *gorm.DB
}

// NewStore creates a new store
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Reader returns repositories for reads outside a transaction
func (s *Store) Reader(ctx context.Context) UnitOfWork {
	return newUnitOfWork(s.db.WithContext(ctx))
}

// Transaction runs fn inside one database transaction. Any error returned by fn
// rolls back every write made through the unit of work.
func (s *Store) Transaction(ctx context.Context, fn func(uow UnitOfWork) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newUnitOfWork(tx))
	})
}

type unitOfWork struct {
	iterations         *IterationRepository
	members            *MemberRepository
	weeklyAvailability *WeeklyAvailabilityRepository
	dailyAttendance    *DailyAttendanceRepository
	projectAccess      *ProjectAccessRepository
}

func newUnitOfWork(db *gorm.DB) *unitOfWork {
	return &unitOfWork{
		iterations:         NewIterationRepository(db),
		members:            NewMemberRepository(db),
		weeklyAvailability: NewWeeklyAvailabilityRepository(db),
		dailyAttendance:    NewDailyAttendanceRepository(db),
		projectAccess:      NewProjectAccessRepository(db),
	}
}

func (u *unitOfWork) Iterations() IterationRepositoryInterface { return u.iterations }

func (u *unitOfWork) Members() MemberRepositoryInterface { return u.members }

func (u *unitOfWork) WeeklyAvailability() WeeklyAvailabilityRepositoryInterface {
	return u.weeklyAvailability
}

func (u *unitOfWork) DailyAttendance() DailyAttendanceRepositoryInterface { return u.dailyAttendance }

func (u *unitOfWork) ProjectAccess() ProjectAccessRepositoryInterface { return u.projectAccess }

// IsUniqueViolation reports whether err is a Postgres unique-constraint violation
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

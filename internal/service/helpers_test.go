package service_test

import (
	"context"
	"testing"
	"time"

	"capacity-planner-backend/internal/database/models"
	"capacity-planner-backend/internal/mocks"
	"capacity-planner-backend/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
)

const testUser = "dana.planner"

// storeMocks wires a mocked store whose reader and transactions both hand out
// the same mocked unit of work
type storeMocks struct {
	store      *mocks.MockStoreInterface
	uow        *mocks.MockUnitOfWork
	iterations *mocks.MockIterationRepositoryInterface
	members    *mocks.MockMemberRepositoryInterface
	weekly     *mocks.MockWeeklyAvailabilityRepositoryInterface
	daily      *mocks.MockDailyAttendanceRepositoryInterface
	access     *mocks.MockAccessChecker
	txCount    int
}

func newStoreMocks(ctrl *gomock.Controller) *storeMocks {
	m := &storeMocks{
		store:      mocks.NewMockStoreInterface(ctrl),
		uow:        mocks.NewMockUnitOfWork(ctrl),
		iterations: mocks.NewMockIterationRepositoryInterface(ctrl),
		members:    mocks.NewMockMemberRepositoryInterface(ctrl),
		weekly:     mocks.NewMockWeeklyAvailabilityRepositoryInterface(ctrl),
		daily:      mocks.NewMockDailyAttendanceRepositoryInterface(ctrl),
		access:     mocks.NewMockAccessChecker(ctrl),
	}

	m.store.EXPECT().Reader(gomock.Any()).Return(m.uow).AnyTimes()
	m.store.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			m.txCount++
			return fn(m.uow)
		}).AnyTimes()

	m.uow.EXPECT().Iterations().Return(m.iterations).AnyTimes()
	m.uow.EXPECT().Members().Return(m.members).AnyTimes()
	m.uow.EXPECT().WeeklyAvailability().Return(m.weekly).AnyTimes()
	m.uow.EXPECT().DailyAttendance().Return(m.daily).AnyTimes()

	return m
}

// allow grants testUser access to projectID
func (m *storeMocks) allow(projectID uuid.UUID) {
	m.access.EXPECT().HasProjectAccess(gomock.Any(), testUser, projectID).Return(true, nil).AnyTimes()
}

// deny refuses testUser access to projectID
func (m *storeMocks) deny(projectID uuid.UUID) {
	m.access.EXPECT().HasProjectAccess(gomock.Any(), testUser, projectID).Return(false, nil).AnyTimes()
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func newIteration(t *testing.T, projectID uuid.UUID, start, end string, workingDays int) *models.Iteration {
	t.Helper()
	return &models.Iteration{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		ProjectID:   projectID,
		Name:        "Sprint 1",
		StartDate:   datatypes.Date(mustDate(t, start)),
		EndDate:     datatypes.Date(mustDate(t, end)),
		WorkingDays: workingDays,
	}
}

func newMember(iterationID uuid.UUID, leaves int, percent, capacityDays float64) *models.Member {
	return &models.Member{
		BaseModel:             models.BaseModel{ID: uuid.New()},
		IterationID:           iterationID,
		Name:                  "Alex",
		Role:                  "developer",
		WorkMode:              models.WorkModeHybrid,
		Leaves:                leaves,
		AvailabilityPercent:   percent,
		EffectiveCapacityDays: capacityDays,
	}
}

// copyOf returns a fresh copy so a service cannot mutate the test's fixture
func copyOf[T any](v *T) *T {
	c := *v
	return &c
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

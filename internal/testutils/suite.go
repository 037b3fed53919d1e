package testutils

import (
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"capacity-planner-backend/internal/config"
	"capacity-planner-backend/internal/database"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/gorm"
)

const (
	pgUser     = "planner"
	pgPassword = "planner"
	pgDatabase = "capacity_planner_test"
)

// cleanTables lists every planner table, children before parents
var cleanTables = []string{
	"daily_attendance",
	"weekly_availability",
	"members",
	"iterations",
	"project_collaborators",
}

// one Postgres container serves every suite of a test binary
var shared struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	config   *config.Config
}

// BaseTestSuite gives integration suites a migrated database and a matching config
type BaseTestSuite struct {
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared Postgres container on first use
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	shared.once.Do(func() { shared.err = startPostgres() })
	if shared.err != nil {
		t.Fatalf("start postgres container: %v", shared.err)
	}
	return &BaseTestSuite{DB: shared.db, Config: shared.config}
}

// CleanupSharedContainer closes the pool and purges the container. TestMain calls it once.
func CleanupSharedContainer() {
	if shared.db != nil {
		if sqlDB, err := shared.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		shared.db = nil
	}
	if shared.pool != nil && shared.resource != nil {
		if err := shared.pool.Purge(shared.resource); err != nil {
			log.Printf("purge postgres container: %v", err)
		}
		shared.pool, shared.resource = nil, nil
	}
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite empties the tables; the container outlives the suite
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates every planner table
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	m := s.DB.Migrator()
	for _, table := range cleanTables {
		if m.HasTable(table) {
			s.DB.Exec(`TRUNCATE TABLE "` + table + `" RESTART IDENTITY CASCADE`)
		}
	}
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("run postgres: %w", err)
	}
	shared.pool, shared.resource = pool, resource

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	// Initialize migrates, so a successful retry leaves the schema in place
	err = pool.Retry(func() error {
		db, err := database.Initialize(dsn, &database.Options{MaxOpenConns: 5, MaxIdleConns: 2})
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.Ping(); err != nil {
			_ = sqlDB.Close()
			return err
		}
		shared.db = db
		return nil
	})
	if err != nil {
		return fmt.Errorf("wait for postgres: %w", err)
	}

	shared.config = &config.Config{
		DatabaseURL:        dsn,
		Port:               "8080",
		LogLevel:           "debug",
		Environment:        "test",
		DefaultDaysPerWeek: 5,
	}
	log.Printf("postgres ready at %s", resource.GetPort("5432/tcp"))
	return nil
}

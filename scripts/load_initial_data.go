package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"capacity-planner-backend/internal/config"
	"capacity-planner-backend/internal/database"
	"capacity-planner-backend/internal/database/models"
	"capacity-planner-backend/internal/repository"
	"capacity-planner-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that mirror the API requests
type CollaboratorData struct {
	UserID string `yaml:"user_id"`
	Role   string `yaml:"role"`
}

type MemberData struct {
	Name                string                 `yaml:"name"`
	Role                string                 `yaml:"role"`
	WorkMode            string                 `yaml:"work_mode,omitempty"`
	Leaves              *float64               `yaml:"leaves,omitempty"`
	AvailabilityPercent *float64               `yaml:"availability_percent,omitempty"`
	Metadata            map[string]interface{} `yaml:"metadata,omitempty"`
}

type IterationData struct {
	Name                 string       `yaml:"name"`
	StartDate            string       `yaml:"start_date"`
	EndDate              string       `yaml:"end_date"`
	CommittedStoryPoints int          `yaml:"committed_story_points"`
	Members              []MemberData `yaml:"members"`
}

type ProjectData struct {
	ID            string             `yaml:"id"`
	Name          string             `yaml:"name"`
	Collaborators []CollaboratorData `yaml:"collaborators"`
	Iterations    []IterationData    `yaml:"iterations"`
}

// File structures
type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

type seeder struct {
	access     *service.ProjectAccessService
	iterations *service.IterationService
	members    *service.MemberService
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	store := repository.NewStore(db)
	recompute := service.NewRecomputeCoordinator()
	access := service.NewProjectAccessService(store)
	v := validator.New()
	s := &seeder{
		access:     access,
		iterations: service.NewIterationService(store, access, recompute, v),
		members:    service.NewMemberService(store, access, recompute, v),
	}

	projects, err := loadProjects("scripts/data")
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	if err := s.seed(context.Background(), projects); err != nil {
		log.Fatalf("Failed to seed data: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadProjects(dataDir string) ([]ProjectData, error) {
	var allProjects []ProjectData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") {
			var file ProjectsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			allProjects = append(allProjects, file.Projects...)
		}
		return nil
	})

	return allProjects, err
}

func (s *seeder) seed(ctx context.Context, projects []ProjectData) error {
	iterationsCreated, membersCreated := 0, 0

	for _, project := range projects {
		projectID, err := uuid.Parse(project.ID)
		if err != nil {
			return fmt.Errorf("project %s: invalid id: %w", project.Name, err)
		}
		if len(project.Collaborators) == 0 {
			return fmt.Errorf("project %s: at least one collaborator is required", project.Name)
		}

		for _, collaborator := range project.Collaborators {
			role := models.CollaboratorRole(collaborator.Role)
			if role == "" {
				role = models.CollaboratorRoleEditor
			}
			if err := s.access.GrantAccess(ctx, projectID, collaborator.UserID, role); err != nil {
				return fmt.Errorf("project %s: grant %s: %w", project.Name, collaborator.UserID, err)
			}
		}

		// Iterations are created as the first collaborator so access checks pass
		actor := project.Collaborators[0].UserID
		existing, err := s.existingIterations(ctx, actor, projectID)
		if err != nil {
			return fmt.Errorf("project %s: %w", project.Name, err)
		}

		for _, iterationData := range project.Iterations {
			if _, ok := existing[iterationData.Name]; ok {
				continue
			}

			iteration, err := s.iterations.CreateIteration(ctx, actor, projectID, &service.CreateIterationRequest{
				Name:                 iterationData.Name,
				StartDate:            iterationData.StartDate,
				EndDate:              iterationData.EndDate,
				CommittedStoryPoints: iterationData.CommittedStoryPoints,
			})
			if err != nil {
				return fmt.Errorf("iteration %s: %w", iterationData.Name, err)
			}
			iterationsCreated++

			for _, memberData := range iterationData.Members {
				if _, err := s.members.AddMember(ctx, actor, iteration.ID, toAddMemberRequest(memberData)); err != nil {
					return fmt.Errorf("iteration %s: member %s: %w", iterationData.Name, memberData.Name, err)
				}
				membersCreated++
			}
		}
	}

	log.Printf("Projects: %d, iterations created: %d, members created: %d", len(projects), iterationsCreated, membersCreated)
	return nil
}

func (s *seeder) existingIterations(ctx context.Context, userID string, projectID uuid.UUID) (map[string]struct{}, error) {
	const pageSize = 100
	names := make(map[string]struct{})

	for offset := 0; ; offset += pageSize {
		page, err := s.iterations.ListIterations(ctx, userID, projectID, pageSize, offset)
		if err != nil {
			return nil, err
		}
		for _, iteration := range page.Iterations {
			names[iteration.Name] = struct{}{}
		}
		if int64(offset+pageSize) >= page.Total {
			return names, nil
		}
	}
}

func toAddMemberRequest(data MemberData) *service.AddMemberRequest {
	req := &service.AddMemberRequest{
		Name:                data.Name,
		Role:                data.Role,
		WorkMode:            data.WorkMode,
		Leaves:              data.Leaves,
		AvailabilityPercent: data.AvailabilityPercent,
	}
	if len(data.Metadata) > 0 {
		if raw, err := json.Marshal(data.Metadata); err == nil {
			req.Metadata = raw
		}
	}
	return req
}

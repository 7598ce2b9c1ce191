package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"group-registry-backend/internal/config"
	"group-registry-backend/internal/database"
	"group-registry-backend/internal/database/models"
	"group-registry-backend/internal/permissions"
	"group-registry-backend/internal/repository"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	apperrors "group-registry-backend/internal/errors"
)

// Simple structures that directly match the seed YAML schema
type MemberData struct {
	Identity string `yaml:"identity"`
	Role     string `yaml:"role"`
}

type GroupData struct {
	GroupID            string       `yaml:"group_id"`
	Owner              string       `yaml:"owner"`
	Name               string       `yaml:"name"`
	Description        string       `yaml:"description,omitempty"`
	PublicCode         string       `yaml:"public_code,omitempty"`
	IsPublic           bool         `yaml:"is_public"`
	IsSearchable       bool         `yaml:"is_searchable"`
	InviteOnly         bool         `yaml:"invite_only"`
	MaxMembers         uint16       `yaml:"max_members"`
	AllowMemberInvites bool         `yaml:"allow_member_invites"`
	Members            []MemberData `yaml:"members,omitempty"`
}

type UsernameData struct {
	Username string `yaml:"username"`
	Owner    string `yaml:"owner"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
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

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	groups, err := loadGroups(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load groups: %w", err)
	}

	usernames, err := loadUsernames(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load usernames: %w", err)
	}

	groupRepo := repository.NewGroupRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	usernameRepo := repository.NewUsernameRepository(db)

	// Create groups with their owner memberships
	groupCreated := 0
	memberCreated := 0
	for _, groupData := range groups {
		created, err := createGroup(groupRepo, groupData)
		if err != nil {
			return fmt.Errorf("failed to create group %s: %w", groupData.Name, err)
		}
		if created {
			groupCreated++
		}

		// Additional members join after the owner
		for _, memberData := range groupData.Members {
			created, err := createMembership(membershipRepo, groupData.GroupID, memberData)
			if err != nil {
				log.Printf("⚠️  Warning: failed to add member %s to %s: %v", memberData.Identity, groupData.Name, err)
				continue
			}
			if created {
				memberCreated++
			}
		}
	}
	log.Printf("📋 Groups: %d created, %d total", groupCreated, len(groups))
	log.Printf("📋 Memberships: %d created", memberCreated)

	// Claim usernames
	usernameCreated := 0
	for _, usernameData := range usernames {
		created, err := createUsername(usernameRepo, usernameData)
		if err != nil {
			log.Printf("⚠️  Warning: failed to register username %s: %v", usernameData.Username, err)
			continue
		}
		if created {
			usernameCreated++
		}
	}
	log.Printf("📋 Usernames: %d created, %d total", usernameCreated, len(usernames))

	return nil
}

func createGroup(repo *repository.GroupRepository, data GroupData) (bool, error) {
	owner := strings.ToLower(data.Owner)
	group := &models.Group{
		GroupID:            strings.ToLower(data.GroupID),
		Owner:              owner,
		Name:               data.Name,
		Description:        data.Description,
		IsPublic:           data.IsPublic,
		IsSearchable:       data.IsSearchable,
		InviteOnly:         data.InviteOnly,
		MaxMembers:         data.MaxMembers,
		AllowMemberInvites: data.AllowMemberInvites,
		GroupEncryptionKey: make([]byte, 32),
		MemberCount:        1,
	}
	membership := &models.Membership{
		GroupID:           group.GroupID,
		Member:            owner,
		Role:              permissions.RoleOwner,
		Permissions:       permissions.AllPermissions,
		EncryptedGroupKey: make([]byte, 64),
		JoinedAt:          time.Now(),
		IsActive:          true,
		InvitedBy:         owner,
	}

	if err := repo.CreateWithOwner(group, membership); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return false, nil
		}
		return false, err
	}

	if data.PublicCode != "" {
		code := strings.ToLower(data.PublicCode)
		if err := repo.SetCode(group.GroupID, code); err != nil && !apperrors.IsAlreadyExists(err) {
			return true, err
		}
	}

	return true, nil
}

func createMembership(repo *repository.MembershipRepository, groupID string, data MemberData) (bool, error) {
	role := permissions.Role(data.Role)
	if data.Role == "" {
		role = permissions.RoleMember
	}
	if !role.IsValid() || role == permissions.RoleOwner {
		return false, fmt.Errorf("invalid seed role %q", data.Role)
	}

	membership := &models.Membership{
		GroupID:           strings.ToLower(groupID),
		Member:            strings.ToLower(data.Identity),
		Role:              role,
		Permissions:       permissions.RoleMask(role),
		EncryptedGroupKey: make([]byte, 64),
		JoinedAt:          time.Now(),
		IsActive:          true,
	}

	if err := repo.CreateAndIncrement(membership, "", nil); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func createUsername(repo *repository.UsernameRepository, data UsernameData) (bool, error) {
	username := &models.Username{
		Username:      strings.ToLower(data.Username),
		Owner:         strings.ToLower(data.Owner),
		EncryptionKey: make([]byte, 32),
	}

	if err := repo.Create(username); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func loadGroups(dataDir string) ([]GroupData, error) {
	return loadYAMLFiles[GroupData](dataDir, "groups")
}

func loadUsernames(dataDir string) ([]UsernameData, error) {
	return loadYAMLFiles[UsernameData](dataDir, "usernames")
}

// loadYAMLFiles collects entries from every "<prefix>*.yaml" file under dataDir
func loadYAMLFiles[T any](dataDir, prefix string) ([]T, error) {
	var all []T

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		name := d.Name()
		if !strings.HasPrefix(name, prefix) {
			return nil
		}
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		var entries []T
		if err := yaml.Unmarshal(content, &entries); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}

		all = append(all, entries...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return all, nil
}

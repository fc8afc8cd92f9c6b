package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"dashmart.backend/internal/config"
	"dashmart.backend/internal/domain/entities"
	domainrepo "dashmart.backend/internal/domain/repositories"
	"dashmart.backend/internal/infrastructure/repositories"
	"dashmart.backend/internal/usecases"
)

var openAdminAPIKeyDB = func(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), &gorm.Config{PrepareStmt: false})
}

var openAdminSQLDB = func(db *gorm.DB) (io.Closer, error) {
	return db.DB()
}

type adminAPIKeyRuntime interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (*entities.User, error)
	IssueApiKey(ctx context.Context, ownerID uuid.UUID, input *entities.CreateApiKeyInput) (*entities.CreateApiKeyResponse, error)
}

type adminAPIKeyDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (adminAPIKeyRuntime, io.Closer, error)
	now     func() time.Time
	out     io.Writer
}

type adminAPIKeyRuntimeImpl struct {
	userRepo   domainrepo.UserRepository
	apiKeyCase *usecases.ApiKeyUsecase
}

func (r adminAPIKeyRuntimeImpl) GetUserByID(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return r.userRepo.GetByID(ctx, userID)
}

func (r adminAPIKeyRuntimeImpl) IssueApiKey(ctx context.Context, ownerID uuid.UUID, input *entities.CreateApiKeyInput) (*entities.CreateApiKeyResponse, error) {
	return r.apiKeyCase.Issue(ctx, ownerID, input)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func defaultAdminAPIKeyDeps() adminAPIKeyDeps {
	return adminAPIKeyDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: func(cfg *config.Config) (adminAPIKeyRuntime, io.Closer, error) {
			dsn := cfg.Database.URL()
			db, err := openAdminAPIKeyDB(dsn)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to connect db: %w", err)
			}

			sqlDB, err := openAdminSQLDB(db)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to init sql db: %w", err)
			}

			userRepo := repositories.NewUserRepository(db)
			apiKeyRepo := repositories.NewApiKeyRepository(db)
			apiKeyUsecase := usecases.NewApiKeyUsecase(apiKeyRepo)
			return adminAPIKeyRuntimeImpl{
				userRepo:   userRepo,
				apiKeyCase: apiKeyUsecase,
			}, sqlDB, nil
		},
		now: time.Now,
		out: os.Stdout,
	}
}

func parseOwnerID(ownerID string) (uuid.UUID, error) {
	if ownerID == "" {
		return uuid.Nil, fmt.Errorf("--owner-id is required")
	}
	return uuid.Parse(ownerID)
}

func resolveDescription(input string, now time.Time) string {
	if input != "" {
		return input
	}
	return fmt.Sprintf("admin-issued-%s", now.Format("20060102-150405"))
}

func parsePermissionFlags(input string) []string {
	if input == "" {
		return []string{"read", "write", "delete"}
	}
	parts := strings.Split(input, ",")
	perms := make([]string, 0, len(parts))
	for _, p := range parts {
		perms = append(perms, strings.TrimSpace(p))
	}
	return perms
}

func runAdminAPIKey(args []string, deps adminAPIKeyDeps) error {
	if deps.loadEnv == nil {
		deps.loadEnv = func() error { return godotenv.Load() }
	}
	if deps.loadCfg == nil {
		deps.loadCfg = config.Load
	}
	if deps.now == nil {
		deps.now = time.Now
	}
	if deps.prepare == nil {
		def := defaultAdminAPIKeyDeps()
		deps.prepare = def.prepare
	}
	if deps.out == nil {
		deps.out = os.Stdout
	}

	fs := flag.NewFlagSet("admin-apikey", flag.ContinueOnError)
	ownerIDFlag := fs.String("owner-id", "", "owning user UUID (required)")
	descFlag := fs.String("description", "", "api key description (optional)")
	permsFlag := fs.String("permissions", "", "comma-separated permissions (default read,write,delete)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ownerID, err := parseOwnerID(*ownerIDFlag)
	if err != nil {
		return err
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := deps.loadCfg()
	runtime, closer, err := deps.prepare(cfg)
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()

	ctx := context.Background()
	user, err := runtime.GetUserByID(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("failed to load user %s: %w", ownerID, err)
	}
	if user.Role != entities.RoleAdmin {
		return fmt.Errorf("user %s is not ADMIN (role=%s)", ownerID, user.Role)
	}

	resp, err := runtime.IssueApiKey(ctx, ownerID, &entities.CreateApiKeyInput{
		Description: resolveDescription(*descFlag, deps.now()),
		Permissions: parsePermissionFlags(*permsFlag),
	})
	if err != nil {
		return fmt.Errorf("failed creating api key: %w", err)
	}

	_, _ = fmt.Fprintln(deps.out, "Created API key and stored in DB")
	_, _ = fmt.Fprintf(deps.out, "owner_id=%s\n", ownerID.String())
	_, _ = fmt.Fprintf(deps.out, "api_key_id=%s\n", resp.ID.String())
	_, _ = fmt.Fprintf(deps.out, "description=%s\n", resp.Description)
	_, _ = fmt.Fprintf(deps.out, "CONSUMER_KEY=%s\n", resp.ConsumerKey)
	_, _ = fmt.Fprintf(deps.out, "CONSUMER_SECRET=%s\n", resp.ConsumerSecret)
	return nil
}

func main() {
	if err := runAdminAPIKey(os.Args[1:], defaultAdminAPIKeyDeps()); err != nil {
		log.Fatal(err)
	}
}

package cli

import (
	"fmt"

	"github.com/martijn/feedback/internal/core/repository"
	"github.com/martijn/feedback/internal/core/service"
	"github.com/martijn/feedback/internal/infrastructure/sqlite"
	"github.com/martijn/feedback/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Feedback - multi-user feedback notes service",
	Long: `Feedback is a small multi-user feedback service.

It provides:
- User registration and session-based authentication
- Per-user feedback notes with owner-only edit and delete
- REST API for web clients
- CLI user administration`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/feedback/config.yml)")
}

// initServices initializes all services
func initServices() (*Services, error) {
	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	userRepo := sqlite.NewUserRepository(db)
	feedbackRepo := sqlite.NewFeedbackRepository(db)

	authService := service.NewAuthService(cfg.SecretKey, cfg.JWTAlgorithm)
	userService := service.NewUserService(userRepo, authService)
	feedbackService := service.NewFeedbackService(feedbackRepo)

	return &Services{
		DB:              db,
		UserRepo:        userRepo,
		FeedbackRepo:    feedbackRepo,
		AuthService:     authService,
		UserService:     userService,
		FeedbackService: feedbackService,
	}, nil
}

// Services holds all initialized services
type Services struct {
	DB              *sqlite.DB
	UserRepo        repository.UserRepository
	FeedbackRepo    repository.FeedbackRepository
	AuthService     *service.AuthService
	UserService     *service.UserService
	FeedbackService *service.FeedbackService
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}

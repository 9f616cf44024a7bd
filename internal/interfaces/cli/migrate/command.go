package migrate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/beaconhq/beacon/internal/infrastructure/config"
	"github.com/beaconhq/beacon/internal/infrastructure/database"
	"github.com/beaconhq/beacon/internal/infrastructure/migration"
	"github.com/beaconhq/beacon/internal/shared/biztime"
	"github.com/beaconhq/beacon/internal/shared/logger"
)

var (
	env   string
	name  string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.MarkFlagRequired("name")

	return cmd
}

func setup() (*migration.GolangMigrateStrategy, func(), error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	scriptsPath, err := filepath.Abs(scriptsDir())
	if err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to resolve scripts path: %w", err)
	}

	strategy := migration.NewGolangMigrateStrategy(scriptsPath)
	gm, ok := strategy.(*migration.GolangMigrateStrategy)
	if !ok {
		database.Close()
		return nil, nil, fmt.Errorf("unexpected migration strategy type")
	}

	cleanup := func() { database.Close() }
	return gm, cleanup, nil
}

func scriptsDir() string {
	return "./internal/infrastructure/migration/scripts"
}

func runUp(cmd *cobra.Command, args []string) error {
	gm, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Info("running migrations", "environment", env)
	if err := gm.Migrate(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("migrations applied successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	gm, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Info("rolling back migrations", "steps", steps)
	if err := gm.MigrateDown(database.Get(), steps); err != nil {
		return fmt.Errorf("rollback failed: %w", err)
	}
	logger.Info("rollback completed")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	gm, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	version, dirty, err := gm.Version(database.Get())
	if err != nil {
		return fmt.Errorf("failed to read migration status: %w", err)
	}

	fmt.Printf("current version: %d\ndirty: %v\n", version, dirty)
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	timestamp := biztime.FormatTimestampSuffix(biztime.NowUTC())

	for _, direction := range []string{"up", "down"} {
		filename := filepath.Join(scriptsDir(), fmt.Sprintf("%s_%s.%s.sql", timestamp, name, direction))
		f, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("failed to create migration file: %w", err)
		}
		f.Close()
		fmt.Printf("created %s\n", filename)
	}
	return nil
}

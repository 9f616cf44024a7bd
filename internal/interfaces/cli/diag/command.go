package diag

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/beaconhq/beacon/internal/infrastructure/config"
	"github.com/beaconhq/beacon/internal/infrastructure/database"
	"github.com/beaconhq/beacon/internal/infrastructure/webflow"
	"github.com/beaconhq/beacon/internal/shared/logger"
	"github.com/beaconhq/beacon/internal/shared/utils"
)

var (
	env  string
	slug string
)

// NewCommand builds the diagnostics command. All subcommands are read-only
// inspections; nothing here mutates the store or the CMS.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diag",
		Short: "Read-only diagnostics",
		Long:  `Inspect database and CMS state without modifying anything. Useful when a publish or ingest did not do what was expected.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newStoreCommand(),
		newCMSCommand(),
	)

	return cmd
}

func newStoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "store",
		Short: "Summarize database contents",
		RunE:  runStore,
	}
}

func newCMSCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cms",
		Short: "Look up a CMS item by slug",
		RunE:  runCMS,
	}

	cmd.Flags().StringVarP(&slug, "slug", "s", "", "Item slug to look up (required)")
	cmd.MarkFlagRequired("slug")

	return cmd
}

func loadConfig() (*config.Config, error) {
	// Local overrides live in .env during development; missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, nil
}

func runStore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	db := database.Get()

	type statusCount struct {
		Status string
		Count  int64
	}
	var byStatus []statusCount
	if err := db.Table("companies").Select("status, count(*) as count").Group("status").Scan(&byStatus).Error; err != nil {
		return fmt.Errorf("failed to count companies: %w", err)
	}

	var intakes, reviews, mediaItems int64
	db.Table("intakes").Count(&intakes)
	db.Table("reviews").Count(&reviews)
	db.Table("media_items").Count(&mediaItems)

	var unlinked int64
	db.Table("companies").Where("webflow_profile_id IS NULL OR webflow_profile_id = ''").Count(&unlinked)

	fmt.Println("companies by status:")
	for _, sc := range byStatus {
		fmt.Printf("  %-12s %d\n", sc.Status, sc.Count)
	}
	fmt.Printf("intakes:            %d\n", intakes)
	fmt.Printf("reviews:            %d\n", reviews)
	fmt.Printf("media items:        %d\n", mediaItems)
	fmt.Printf("unpublished:        %d\n", unlinked)

	return nil
}

type cmsLookup struct {
	Slug string `json:"slug" validate:"required,slug"`
}

func runCMS(cmd *cobra.Command, args []string) error {
	// Catch typos before hitting the API; the slug grammar is the same one
	// request bindings enforce.
	if err := utils.ValidateStruct(cmsLookup{Slug: slug}); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client := webflow.NewClient(&cfg.Webflow, logger.NewLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	item, err := client.FindItemBySlug(ctx, slug)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}
	if item == nil {
		fmt.Printf("no item found for slug %q\n", slug)
		return nil
	}

	fmt.Printf("item id:      %s\n", item.ID)
	fmt.Printf("slug:         %s\n", item.Slug())
	fmt.Printf("draft:        %v\n", item.IsDraft)
	fmt.Printf("archived:     %v\n", item.IsArchived)
	fmt.Printf("last updated: %s\n", item.LastUpdated)
	fmt.Printf("fields:       %d\n", len(item.FieldData))

	return nil
}

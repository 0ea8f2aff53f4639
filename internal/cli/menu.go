package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/casarosier/cms-migrate/internal/cms"
	"github.com/casarosier/cms-migrate/internal/config"
	"github.com/casarosier/cms-migrate/internal/menu"
	"github.com/casarosier/cms-migrate/pkg/logger"
	"github.com/spf13/cobra"
)

func NewMenuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Repair and audit migrated menu links",
	}

	var correctionsFile string
	fixCmd := &cobra.Command{
		Use:   "fix",
		Short: "Rewrite stale menu paths using a correction table",
		RunE: func(c *cobra.Command, args []string) error {
			return runMenuFix(c.Context(), correctionsFile)
		},
	}
	fixCmd.Flags().StringVarP(&correctionsFile, "corrections", "c", "configs/menu_corrections.json", "Path to the corrections file")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Classify every menu path as resolvable or broken",
		RunE: func(c *cobra.Command, args []string) error {
			return runMenuVerify(c.Context())
		},
	}

	cmd.AddCommand(fixCmd, verifyCmd)
	return cmd
}

func runMenuFix(ctx context.Context, correctionsFile string) error {
	table, err := menu.LoadCorrections(correctionsFile)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	content, err := cms.Connect(ctx, cfg.MongoConnString, cfg.MongoDatabase)
	if err != nil {
		return err
	}
	defer content.Close(context.Background())

	logger.Infof("Fixing menu links (%d corrections loaded)...", len(table))

	m, err := content.Menu(ctx)
	if err != nil {
		return fmt.Errorf("menu document: %w", err)
	}

	changed := menu.Apply(m.Items, table)
	if changed == 0 {
		logger.Infof("No stale paths found, menu left untouched")
		return nil
	}

	if err := content.SetMenuItems(ctx, m.ID, m.Items); err != nil {
		return err
	}
	logger.Infof("Menu updated: %d paths rewritten", changed)
	return nil
}

func runMenuVerify(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	content, err := cms.Connect(ctx, cfg.MongoConnString, cfg.MongoDatabase)
	if err != nil {
		return err
	}
	defer content.Close(context.Background())

	m, err := content.Menu(ctx)
	if err != nil {
		return fmt.Errorf("menu document: %w", err)
	}

	idx, err := loadContentIndex(ctx, content)
	if err != nil {
		return err
	}

	fmt.Println("Menu link report:")
	fmt.Println()
	for _, row := range menu.Verify(m, idx) {
		indent := strings.Repeat("  ", row.Level)
		switch {
		case row.Folder:
			fmt.Printf("%s📂 [%s] (Folder)\n", indent, row.Name)
		case row.Result.Valid:
			fmt.Printf("%s✅ [%s](%s) - %s\n", indent, row.Name, row.Path, row.Result.Match)
		default:
			fmt.Printf("%s❌ [%s](%s) - %s\n", indent, row.Name, row.Path, row.Result.Reason)
		}
	}
	fmt.Println()
	fmt.Println("Verification complete.")
	return nil
}

func loadContentIndex(ctx context.Context, content *cms.Store) (menu.Index, error) {
	var idx menu.Index
	var err error

	if idx.Courses, err = content.ContentRefs(ctx, "course"); err != nil {
		return idx, err
	}
	if idx.GiftCards, err = content.ContentRefs(ctx, "giftCard"); err != nil {
		return idx, err
	}
	if idx.LandingPages, err = content.ContentRefs(ctx, "landingPage"); err != nil {
		return idx, err
	}
	return idx, nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/casarosier/cms-migrate/internal/cms"
	"github.com/casarosier/cms-migrate/internal/config"
	"github.com/spf13/cobra"
)

func NewVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Inspect migrated content in the target store",
	}

	countsCmd := &cobra.Command{
		Use:   "counts",
		Short: "Print document counts per content type",
		RunE: func(c *cobra.Command, args []string) error {
			return runVerifyCounts(c.Context())
		},
	}

	contentCmd := &cobra.Command{
		Use:   "content",
		Short: "List migrated courses and gift cards",
		RunE: func(c *cobra.Command, args []string) error {
			return runVerifyContent(c.Context())
		},
	}

	cmd.AddCommand(countsCmd, contentCmd)
	return cmd
}

func runVerifyCounts(ctx context.Context) error {
	content, err := connectContent(ctx)
	if err != nil {
		return err
	}
	defer content.Close(context.Background())

	types := []struct {
		docType string
		label   string
	}{
		{"post", "Blog Posts"},
		{"landingPage", "Landing Pages"},
		{"settings", "Settings Doc"},
		{"siteMenu", "Menu Doc"},
		{"course", "Courses"},
		{"giftCard", "Gift Cards"},
	}

	fmt.Println("Migration summary:")
	for _, t := range types {
		n, err := content.CountByType(ctx, t.docType)
		if err != nil {
			return err
		}
		fmt.Printf("- %s: %d\n", t.label, n)
	}

	pages, err := content.ContentRefs(ctx, "landingPage")
	if err != nil {
		return err
	}
	if len(pages) > 0 {
		fmt.Println()
		fmt.Println("Migrated landing pages:")
		for _, lp := range pages {
			fmt.Printf("  - %s (%s)\n", lp.Title, lp.Slug.Current)
		}
	}
	return nil
}

func runVerifyContent(ctx context.Context) error {
	content, err := connectContent(ctx)
	if err != nil {
		return err
	}
	defer content.Close(context.Background())

	courses, err := content.ContentRefs(ctx, "course")
	if err != nil {
		return err
	}
	giftCards, err := content.ContentRefs(ctx, "giftCard")
	if err != nil {
		return err
	}

	fmt.Printf("Courses found: %d\n", len(courses))
	for _, c := range courses {
		fmt.Printf("  - %s (%s)\n", c.Title, c.Kind)
	}

	fmt.Printf("\nGift cards found: %d\n", len(giftCards))
	for _, gc := range giftCards {
		fmt.Printf("  - %s (%.0f€)\n", gc.Title, gc.Price)
	}
	return nil
}

func connectContent(ctx context.Context) (*cms.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return cms.Connect(ctx, cfg.MongoConnString, cfg.MongoDatabase)
}

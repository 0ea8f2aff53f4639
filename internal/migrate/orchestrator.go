// Package migrate turns legacy key/value records into content-store
// documents: classify, map, rehydrate images, upsert.
package migrate

import (
	"context"
	"fmt"

	"github.com/casarosier/cms-migrate/internal/legacy"
	"github.com/casarosier/cms-migrate/pkg/logger"
	"github.com/casarosier/cms-migrate/pkg/models"
	"github.com/google/uuid"
)

type Options struct {
	// DryRun maps and classifies but skips uploads and upserts.
	DryRun bool
	// PageSize for history key scans.
	PageSize int
	// ChunkSize for multi-key lookups.
	ChunkSize int
}

// Orchestrator runs the migration phases in order. Everything is
// sequential: one entity at a time, one image at a time, so progress output
// stays ordered and the destination APIs never see a burst.
type Orchestrator struct {
	legacyStore LegacyStore
	content     ContentStore
	images      ImageUploader
	opts        Options
}

func New(legacyStore LegacyStore, content ContentStore, images ImageUploader, opts Options) *Orchestrator {
	if opts.PageSize <= 0 {
		opts.PageSize = legacy.DefaultPageSize
	}
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = legacy.DefaultChunkSize
	}
	return &Orchestrator{legacyStore: legacyStore, content: content, images: images, opts: opts}
}

// Run executes all phases. Each phase is individually fault-tolerant: a
// failure is logged and the remaining phases still run. There is no global
// transaction; because upserts are idempotent the recovery procedure for a
// partial run is simply rerunning the whole migration.
func (o *Orchestrator) Run(ctx context.Context) error {
	logger.Infof("Starting migration from legacy KV store...")

	o.migrateSettings(ctx)
	o.migrateMenu(ctx)
	o.migratePosts(ctx)
	o.migrateLandingPages(ctx)
	o.migrateHistoryItems(ctx)

	logger.Infof("Legacy KV store migration finished")
	return ctx.Err()
}

func (o *Orchestrator) migrateSettings(ctx context.Context) {
	logger.Infof("Migrating site settings (site:settings)...")

	raw, err := o.legacyStore.GetByKey(ctx, "site:settings")
	if err != nil {
		logger.Errorf("settings: fetch failed: %v", err)
		return
	}
	if raw == nil {
		logger.Warnf("settings: no site:settings record found")
		return
	}

	var s legacy.Settings
	if err := legacy.Decode(raw, &s); err != nil {
		logger.Errorf("settings: %v", err)
		return
	}

	mapped := MapSettings(&s)
	mapped.HeroImages.Desktop = o.uploadImage(ctx, s.HeroImageDesktop)
	mapped.HeroImages.Mobile = o.uploadImage(ctx, s.HeroImageMobile)
	mapped.HeroImages.Text1 = o.uploadImage(ctx, s.HeroTextImage1)
	mapped.HeroImages.Text2 = o.uploadImage(ctx, s.HeroTextImage2)
	for i := range mapped.Instagram.Images {
		mapped.Instagram.Images[i].Image = o.uploadImage(ctx, s.InstagramImages[i].URL)
	}

	if err := o.upsert(ctx, mapped.ID, mapped); err != nil {
		logger.Errorf("settings: upsert failed: %v", err)
		return
	}
	logger.Infof("Site settings migrated")
}

func (o *Orchestrator) migrateMenu(ctx context.Context) {
	logger.Infof("Migrating menu (site:menu)...")

	raw, err := o.legacyStore.GetByKey(ctx, "site:menu")
	if err != nil {
		logger.Errorf("menu: fetch failed: %v", err)
		return
	}
	if raw == nil {
		logger.Warnf("menu: no site:menu record found")
		return
	}

	var m legacy.Menu
	if err := legacy.Decode(raw, &m); err != nil {
		logger.Errorf("menu: %v", err)
		return
	}

	mapped := MapMenu(&m)
	if err := o.upsert(ctx, mapped.ID, mapped); err != nil {
		logger.Errorf("menu: upsert failed: %v", err)
		return
	}
	logger.Infof("Menu migrated")
}

func (o *Orchestrator) migratePosts(ctx context.Context) {
	logger.Infof("Migrating blog posts (blog:post:*)...")

	rows, err := o.legacyStore.GetByPrefix(ctx, "blog:post:")
	if err != nil {
		logger.Errorf("posts: fetch failed: %v", err)
		return
	}
	logger.Infof("Found %d candidate posts", len(rows))

	for _, row := range rows {
		if err := o.migratePost(ctx, row); err != nil {
			logger.Errorf("posts: %s: %v", row.Key, err)
		}
	}
}

func (o *Orchestrator) migratePost(ctx context.Context, row legacy.Row) error {
	var p legacy.Post
	if err := legacy.Decode(row.Value, &p); err != nil {
		return err
	}
	if p.Deleted {
		return nil
	}

	mapped := MapPost(&p)
	mapped.MainImage = o.uploadImage(ctx, p.FeaturedImage)

	if err := o.upsert(ctx, mapped.ID, mapped); err != nil {
		return fmt.Errorf("upsert %q: %w", p.Title, err)
	}
	logger.Infof("Post migrated: %s", p.Title)
	return nil
}

func (o *Orchestrator) migrateLandingPages(ctx context.Context) {
	logger.Infof("Migrating landing pages (page:*)...")

	rows, err := o.legacyStore.GetByPrefix(ctx, "page:")
	if err != nil {
		logger.Errorf("pages: fetch failed: %v", err)
		return
	}
	logger.Infof("Found %d candidate landing pages", len(rows))

	for _, row := range rows {
		if err := o.migrateLandingPage(ctx, row); err != nil {
			logger.Errorf("pages: %s: %v", row.Key, err)
		}
	}
}

func (o *Orchestrator) migrateLandingPage(ctx context.Context, row legacy.Row) error {
	var lp legacy.Page
	if err := legacy.Decode(row.Value, &lp); err != nil {
		return err
	}
	// The "blog" page is the post-list container, not real content.
	if lp.Deleted || lp.Slug == "blog" {
		return nil
	}

	mapped := MapLandingPage(&lp)
	mapped.Hero.Image = o.uploadImage(ctx, lp.HeroImage)

	// Sections stay index-aligned through mapping, so images attach by
	// position, not by id.
	for i := range mapped.Sections {
		section := lp.Sections[i]
		if section.Image != "" {
			mapped.Sections[i].Image = o.uploadImage(ctx, section.Image)
		}
		if len(section.Images) > 0 {
			mapped.Sections[i].Images = o.uploadGallery(ctx, section.Images)
		}
	}

	if err := o.upsert(ctx, mapped.ID, mapped); err != nil {
		return fmt.Errorf("upsert %q: %w", lp.Title, err)
	}
	logger.Infof("Landing page migrated: %s", lp.Title)
	return nil
}

func (o *Orchestrator) migrateHistoryItems(ctx context.Context) {
	logger.Infof("Recovering courses and gift cards from history...")

	keys, err := o.legacyStore.ScanKeysByPrefix(ctx, "history:", o.opts.PageSize)
	if err != nil {
		logger.Errorf("history: key scan failed: %v", err)
		return
	}
	logger.Infof("Found %d history rows", len(keys))

	latest, ignored := legacy.ResolveLatest(keys)
	if ignored > 0 {
		logger.Warnf("history: ignored %d keys that do not parse", ignored)
	}
	logger.Infof("Identified %d unique candidate entities", len(latest))

	rows, err := o.legacyStore.GetManyByKeys(ctx, legacy.WinningKeys(latest), o.opts.ChunkSize)
	if err != nil {
		logger.Errorf("history: multi-get failed: %v", err)
		return
	}

	var items []*legacy.CourseLike
	discarded := 0
	for _, row := range rows {
		var item legacy.CourseLike
		if err := legacy.Decode(row.Value, &item); err != nil {
			logger.Warnf("history: %s: %v", row.Key, err)
			discarded++
			continue
		}
		if !Classify(&item) {
			discarded++
			continue
		}
		items = append(items, &item)
	}
	logger.Infof("Migrating %d accepted items (%d discarded)", len(items), discarded)

	for _, item := range items {
		var err error
		if item.Type == "gift-card" {
			err = o.migrateGiftCard(ctx, item)
		} else {
			err = o.migrateCourse(ctx, item)
		}
		if err != nil {
			logger.Errorf("history: %s: %v", item.Title, err)
		}
	}
}

func (o *Orchestrator) migrateCourse(ctx context.Context, item *legacy.CourseLike) error {
	logger.Infof("Processing course/workshop: %s (%s)", item.Title, item.Type)

	mapped := MapCourse(item)
	if item.HeroImage != nil {
		mapped.HeroImage = o.uploadImage(ctx, item.HeroImage.URL)
	}
	if item.TitleImage != nil {
		mapped.TitleImage = o.uploadImage(ctx, item.TitleImage.URL)
	}
	if uploaded := o.uploadGallery(ctx, item.Images); len(uploaded) > 0 {
		mapped.Images = uploaded
	}

	if err := o.upsert(ctx, mapped.ID, mapped); err != nil {
		return fmt.Errorf("upsert: %w", err)
	}
	return nil
}

func (o *Orchestrator) migrateGiftCard(ctx context.Context, item *legacy.CourseLike) error {
	logger.Infof("Processing gift card: %s", item.Title)

	mapped := MapGiftCard(item)
	if uploaded := o.uploadGallery(ctx, item.Images); len(uploaded) > 0 {
		mapped.Images = uploaded
	}

	if err := o.upsert(ctx, mapped.ID, mapped); err != nil {
		return fmt.Errorf("upsert: %w", err)
	}
	return nil
}

func (o *Orchestrator) uploadImage(ctx context.Context, url string) *models.Image {
	if url == "" || o.opts.DryRun {
		return nil
	}
	return o.images.UploadImage(ctx, url)
}

// uploadGallery uploads images one by one, keeping order stable. Failed
// uploads are simply missing from the result.
func (o *Orchestrator) uploadGallery(ctx context.Context, images []legacy.ImageValue) []models.Image {
	var out []models.Image
	for _, img := range images {
		ref := o.uploadImage(ctx, img.URL)
		if ref == nil {
			continue
		}
		ref.Key = uuid.NewString()
		out = append(out, *ref)
	}
	return out
}

func (o *Orchestrator) upsert(ctx context.Context, id string, doc interface{}) error {
	if o.opts.DryRun {
		logger.Infof("[DRY RUN] would upsert %s", id)
		return nil
	}
	return o.content.Upsert(ctx, id, doc)
}

package migrate

import (
	"testing"
	"time"

	"github.com/casarosier/cms-migrate/internal/legacy"
)

func TestSanitizeID(t *testing.T) {
	if got := SanitizeID("abc:123"); got != "abc-123" {
		t.Errorf("SanitizeID = %q, want abc-123", got)
	}
}

func TestMapPostFieldTable(t *testing.T) {
	p := &legacy.Post{
		ID:        "1",
		Title:     "Hola",
		Slug:      "hola",
		Excerpt:   "resumen",
		Author:    "Marta",
		Category:  "taller",
		CreatedAt: "2024-01-01T00:00:00Z",
		Published: true,
		Featured:  true,
		SEO:       legacy.PostSEO{MetaTitle: "mt", MetaDescription: "md", Keywords: "kw"},
	}

	doc := MapPost(p)

	if doc.ID != "post-1" {
		t.Errorf("_id = %q, want post-1", doc.ID)
	}
	if doc.Type != "post" {
		t.Errorf("_type = %q", doc.Type)
	}
	if doc.Slug.Current != "hola" || doc.Slug.Type != "slug" {
		t.Errorf("slug = %+v", doc.Slug)
	}
	if !doc.IsPublished {
		t.Error("published must map to isPublished")
	}
	if doc.PublishedAt != "2024-01-01T00:00:00Z" {
		t.Errorf("publishedAt = %q, want createdAt verbatim", doc.PublishedAt)
	}
	if doc.SEO.Keywords != "kw" {
		t.Errorf("seo.keywords = %q", doc.SEO.Keywords)
	}
	if doc.MainImage != nil {
		t.Error("mapper must leave image fields unset")
	}
}

func TestMapPostDefaults(t *testing.T) {
	doc := MapPost(&legacy.Post{Title: "Sin fecha", Slug: "sin-fecha"})

	if doc.ID != "post-sin-fecha" {
		t.Errorf("_id = %q, want slug fallback", doc.ID)
	}
	if doc.Author != "Casa Rosier" {
		t.Errorf("author = %q, want default", doc.Author)
	}
	if doc.PublishedAt == "" {
		t.Fatal("publishedAt must fall back to now")
	}
	if _, err := time.Parse(time.RFC3339, doc.PublishedAt); err != nil {
		t.Errorf("publishedAt fallback not RFC3339: %v", err)
	}
}

func TestMapCourseDeterministicID(t *testing.T) {
	doc := MapCourse(&legacy.CourseLike{ID: "abc:123", Title: "T", Slug: "t", Type: "class"})
	if doc.ID != "course-abc-123" {
		t.Errorf("_id = %q, want course-abc-123", doc.ID)
	}
	if doc.Kind != "class" {
		t.Errorf("type = %q, want unchanged", doc.Kind)
	}
	if doc.Includes == nil || len(doc.Includes) != 0 {
		t.Errorf("includes = %v, want empty slice default", doc.Includes)
	}
	if doc.HeroImage != nil || doc.TitleImage != nil || len(doc.Images) != 0 {
		t.Error("mapper must leave image fields unset")
	}
}

func TestMapGiftCard(t *testing.T) {
	doc := MapGiftCard(&legacy.CourseLike{ID: "content:gift-card-1", Title: "Tarjeta", Slug: "tarjeta", Price: 50})
	if doc.ID != "giftcard-content-gift-card-1" {
		t.Errorf("_id = %q", doc.ID)
	}
	if doc.Price != 50 {
		t.Errorf("price = %v", doc.Price)
	}
	if doc.Type != "giftCard" {
		t.Errorf("_type = %q", doc.Type)
	}
}

func TestMapSettings(t *testing.T) {
	doc := MapSettings(&legacy.Settings{
		SiteName:        "Casa Rosier",
		ContactEmail:    "hola@example.com",
		ContactEmail2:   "info@example.com",
		InstagramTitle:  "Síguenos",
		InstagramHandle: "@casarosier",
		InstagramLink:   "https://instagram.com/casarosier",
		InstagramImages: []legacy.InstagramImage{
			{URL: "https://x/1.jpg", Title: "uno"},
			{URL: "https://x/2.jpg", Title: "dos"},
		},
	})

	if doc.ID != "settings" || doc.Type != "settings" {
		t.Errorf("singleton identity = %q/%q", doc.ID, doc.Type)
	}
	if doc.Contact.Email != "hola@example.com" || doc.Contact.Email2 != "info@example.com" {
		t.Errorf("contact = %+v", doc.Contact)
	}
	if doc.Instagram.Title != "Síguenos" || doc.Instagram.Handle != "@casarosier" {
		t.Errorf("instagram = %+v", doc.Instagram)
	}
	if len(doc.Instagram.Images) != 2 {
		t.Fatalf("instagram images = %d, want 2", len(doc.Instagram.Images))
	}
	if doc.Instagram.Images[0].Key != "insta-0" || doc.Instagram.Images[1].Key != "insta-1" {
		t.Errorf("instagram keys = %q, %q", doc.Instagram.Images[0].Key, doc.Instagram.Images[1].Key)
	}
	if doc.Instagram.Images[0].Image != nil {
		t.Error("mapper must leave image fields unset")
	}
	if doc.HeroImages.Desktop != nil {
		t.Error("mapper must leave hero images unset")
	}
}

func TestMapMenuKeysAndVerbatimPaths(t *testing.T) {
	doc := MapMenu(&legacy.Menu{Items: []legacy.MenuItem{
		{Name: "Inicio", Path: "/"},
		{Name: "Clases", Submenu: []legacy.SubmenuItem{
			{Name: "Torno", Path: "/clases/torno"},
			{Name: "Iniciación", Path: "/clases/iniciacion"},
		}},
	}})

	if doc.ID != "siteMenu" || doc.Type != "siteMenu" {
		t.Errorf("singleton identity = %q/%q", doc.ID, doc.Type)
	}
	if doc.Items[0].Key != "menu-0" || doc.Items[1].Key != "menu-1" {
		t.Errorf("item keys = %q, %q", doc.Items[0].Key, doc.Items[1].Key)
	}
	if doc.Items[1].Submenu[1].Key != "sub-1" {
		t.Errorf("submenu key = %q", doc.Items[1].Submenu[1].Key)
	}
	// Stale or not, paths are copied verbatim; repair is the reconciler's job.
	if doc.Items[1].Submenu[0].Path != "/clases/torno" {
		t.Errorf("path = %q", doc.Items[1].Submenu[0].Path)
	}
}

func TestMapLandingPageSections(t *testing.T) {
	lp := &legacy.Page{
		ID:        "home",
		Title:     "Inicio",
		Slug:      "inicio",
		Visible:   true,
		HeroTitle: "Bienvenidos",
		Sections: []legacy.PageSection{
			{ID: "s-abc", Type: "text", Title: "Quiénes somos"},
			{Type: "features", Title: "Servicios", Features: []legacy.PageFeature{
				{Title: "Torno", Description: "d", Icon: "wheel"},
			}},
		},
		CTAText: "Reserva",
		CTALink: "/clases",
	}

	doc := MapLandingPage(lp)

	if doc.ID != "lp-home" {
		t.Errorf("_id = %q", doc.ID)
	}
	if len(doc.Sections) != 2 {
		t.Fatalf("sections = %d, want index-aligned 2", len(doc.Sections))
	}
	if doc.Sections[0].Key != "s-abc" {
		t.Errorf("section key = %q, want legacy id when present", doc.Sections[0].Key)
	}
	if doc.Sections[1].Key != "section-1" {
		t.Errorf("section key = %q, want positional fallback", doc.Sections[1].Key)
	}
	if doc.Sections[1].Features[0].Key != "feature-0" {
		t.Errorf("feature key = %q", doc.Sections[1].Features[0].Key)
	}
	if doc.Hero.Image != nil || doc.Sections[0].Image != nil {
		t.Error("mapper must leave image fields unset")
	}
	if doc.CTA.Text != "Reserva" || doc.CTA.Link != "/clases" {
		t.Errorf("cta = %+v", doc.CTA)
	}
}

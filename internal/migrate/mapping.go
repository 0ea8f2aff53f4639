package migrate

import (
	"fmt"
	"strings"
	"time"

	"github.com/casarosier/cms-migrate/internal/legacy"
	"github.com/casarosier/cms-migrate/pkg/models"
)

// Mappers translate validated legacy records into target documents. They
// are pure: no I/O, deterministic ids, image fields left unset for the
// orchestrator to populate after upload.

// SanitizeID makes a legacy id usable as a document id. Target ids forbid
// the legacy key separator.
func SanitizeID(id string) string {
	return strings.ReplaceAll(id, ":", "-")
}

func idOrSlug(id, slug string) string {
	if id != "" {
		return id
	}
	return slug
}

func MapPost(p *legacy.Post) *models.Post {
	publishedAt := p.CreatedAt
	if publishedAt == "" {
		publishedAt = time.Now().UTC().Format(time.RFC3339)
	}
	author := p.Author
	if author == "" {
		author = "Casa Rosier"
	}
	return &models.Post{
		ID:          "post-" + SanitizeID(idOrSlug(p.ID, p.Slug)),
		Type:        "post",
		Title:       p.Title,
		Slug:        models.NewSlug(p.Slug),
		Author:      author,
		Excerpt:     p.Excerpt,
		IsPublished: p.Published,
		Featured:    p.Featured,
		PublishedAt: publishedAt,
		Category:    p.Category,
		SEO: models.PostSEO{
			MetaTitle:       p.SEO.MetaTitle,
			MetaDescription: p.SEO.MetaDescription,
			Keywords:        p.SEO.Keywords,
		},
	}
}

// MapLandingPage maps sections by index position: the legacy and target
// section arrays stay aligned, and the orchestrator populates section
// images by the same index because the legacy section id is not carried
// into the target shape.
func MapLandingPage(lp *legacy.Page) *models.LandingPage {
	sections := make([]models.PageSection, len(lp.Sections))
	for i, s := range lp.Sections {
		key := s.ID
		if key == "" {
			key = fmt.Sprintf("section-%d", i)
		}
		var features []models.PageFeature
		for fi, f := range s.Features {
			features = append(features, models.PageFeature{
				Key:         fmt.Sprintf("feature-%d", fi),
				Title:       f.Title,
				Description: f.Description,
				Icon:        f.Icon,
			})
		}
		sections[i] = models.PageSection{
			Key:      key,
			Type:     s.Type,
			Title:    s.Title,
			Layout:   s.Layout,
			Features: features,
			Images:   []models.Image{},
		}
	}

	return &models.LandingPage{
		ID:      "lp-" + SanitizeID(idOrSlug(lp.ID, lp.Slug)),
		Type:    "landingPage",
		Title:   lp.Title,
		Slug:    models.NewSlug(lp.Slug),
		Visible: lp.Visible,
		SEO: models.PageSEO{
			MetaTitle:       lp.MetaTitle,
			MetaDescription: lp.MetaDescription,
			MetaKeywords:    lp.MetaKeywords,
		},
		Hero: models.PageHero{
			Title:    lp.HeroTitle,
			Subtitle: lp.HeroSubtitle,
		},
		Sections: sections,
		CTA: models.PageCTA{
			Text: lp.CTAText,
			Link: lp.CTALink,
		},
	}
}

func MapSettings(s *legacy.Settings) *models.Settings {
	images := make([]models.InstagramImage, len(s.InstagramImages))
	for i, img := range s.InstagramImages {
		images[i] = models.InstagramImage{
			Key:         fmt.Sprintf("insta-%d", i),
			Title:       img.Title,
			Description: img.Description,
			Date:        img.Date,
		}
	}

	return &models.Settings{
		ID:              "settings",
		Type:            "settings",
		SiteName:        s.SiteName,
		SiteDescription: s.SiteDescription,
		SEO: models.SettingsSEO{
			SeoTitle:          s.SeoTitle,
			SeoDescription:    s.SeoDescription,
			SeoKeywords:       s.SeoKeywords,
			GoogleAnalyticsID: s.GoogleAnalyticsID,
		},
		Contact: models.ContactInfo{
			Email:    s.ContactEmail,
			Email2:   s.ContactEmail2,
			Phone:    s.ContactPhone,
			Whatsapp: s.WhatsappNumber,
		},
		Instagram: models.InstagramConfig{
			Title:  s.InstagramTitle,
			Handle: s.InstagramHandle,
			Link:   s.InstagramLink,
			Images: images,
		},
	}
}

// MapMenu copies paths verbatim; stale ones are repaired later by the
// reconciler, never at migration time.
func MapMenu(m *legacy.Menu) *models.SiteMenu {
	items := make([]models.MenuItem, len(m.Items))
	for i, item := range m.Items {
		var submenu []models.SubmenuItem
		for si, sub := range item.Submenu {
			submenu = append(submenu, models.SubmenuItem{
				Key:  fmt.Sprintf("sub-%d", si),
				Name: sub.Name,
				Path: sub.Path,
			})
		}
		items[i] = models.MenuItem{
			Key:     fmt.Sprintf("menu-%d", i),
			Name:    item.Name,
			Path:    item.Path,
			Submenu: submenu,
		}
	}

	return &models.SiteMenu{
		ID:    "siteMenu",
		Type:  "siteMenu",
		Name:  "Menú Principal",
		Items: items,
	}
}

func MapCourse(c *legacy.CourseLike) *models.Course {
	includes := c.Includes
	if includes == nil {
		includes = []string{}
	}
	return &models.Course{
		ID:                  "course-" + SanitizeID(idOrSlug(c.ID, c.Slug)),
		Type:                "course",
		Title:               c.Title,
		Slug:                models.NewSlug(c.Slug),
		Kind:                c.Type,
		Visible:             c.Visible,
		Price:               c.Price,
		Duration:            c.Duration,
		ShortDescription:    c.ShortDescription,
		Includes:            includes,
		ShowInHome:          c.ShowInHome,
		ShowInHomeWorkshops: c.ShowInHomeWorkshops,
		SEO: models.CourseSEO{
			MetaTitle:       c.SEO.MetaTitle,
			MetaDescription: c.SEO.MetaDescription,
		},
		Images: []models.Image{},
	}
}

func MapGiftCard(gc *legacy.CourseLike) *models.GiftCard {
	return &models.GiftCard{
		ID:      "giftcard-" + SanitizeID(idOrSlug(gc.ID, gc.Slug)),
		Type:    "giftCard",
		Title:   gc.Title,
		Slug:    models.NewSlug(gc.Slug),
		Price:   gc.Price,
		Visible: gc.Visible,
		SEO: models.CourseSEO{
			MetaTitle:       gc.SEO.MetaTitle,
			MetaDescription: gc.SEO.MetaDescription,
		},
		Images: []models.Image{},
	}
}

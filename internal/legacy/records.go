package legacy

import (
	"encoding/json"
	"fmt"
)

// ImageValue accepts both legacy encodings of an image: a bare URL string
// or an object carrying a url field. A value that fits neither shape is a
// decode error for the owning record.
type ImageValue struct {
	URL string
}

func (v *ImageValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v.URL = s
		return nil
	}
	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("image value is neither a URL string nor an object: %w", err)
	}
	v.URL = obj.URL
	return nil
}

// Settings is the site:settings singleton.
type Settings struct {
	SiteName          string `json:"siteName"`
	SiteDescription   string `json:"siteDescription"`
	SeoTitle          string `json:"seoTitle"`
	SeoDescription    string `json:"seoDescription"`
	SeoKeywords       string `json:"seoKeywords"`
	GoogleAnalyticsID string `json:"googleAnalyticsId"`
	ContactEmail      string `json:"contactEmail"`
	ContactEmail2     string `json:"contactEmail2"`
	ContactPhone      string `json:"contactPhone"`
	WhatsappNumber    string `json:"whatsappNumber"`

	HeroImageDesktop string `json:"heroImageDesktop"`
	HeroImageMobile  string `json:"heroImageMobile"`
	HeroTextImage1   string `json:"heroTextImage1"`
	HeroTextImage2   string `json:"heroTextImage2"`

	InstagramTitle  string           `json:"instagramTitle"`
	InstagramHandle string           `json:"instagramHandle"`
	InstagramLink   string           `json:"instagramLink"`
	InstagramImages []InstagramImage `json:"instagramImages"`
}

type InstagramImage struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// Menu is the site:menu singleton, a tree of depth two.
type Menu struct {
	Items []MenuItem `json:"items"`
}

type MenuItem struct {
	Name    string        `json:"name"`
	Path    string        `json:"path"`
	Submenu []SubmenuItem `json:"submenu"`
}

type SubmenuItem struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Post is a blog:post:<id> record.
type Post struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Slug          string  `json:"slug"`
	Excerpt       string  `json:"excerpt"`
	Author        string  `json:"author"`
	Category      string  `json:"category"`
	CreatedAt     string  `json:"createdAt"`
	Published     bool    `json:"published"`
	Featured      bool    `json:"featured"`
	Deleted       bool    `json:"deleted"`
	FeaturedImage string  `json:"featuredImage"`
	SEO           PostSEO `json:"seo"`
}

type PostSEO struct {
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	Keywords        string `json:"keywords"`
}

// Page is a page:<id> record. The page with slug "blog" is the post-list
// container and is never migrated.
type Page struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Slug            string        `json:"slug"`
	Visible         bool          `json:"visible"`
	Deleted         bool          `json:"deleted"`
	MetaTitle       string        `json:"metaTitle"`
	MetaDescription string        `json:"metaDescription"`
	MetaKeywords    string        `json:"metaKeywords"`
	HeroTitle       string        `json:"heroTitle"`
	HeroSubtitle    string        `json:"heroSubtitle"`
	HeroImage       string        `json:"heroImage"`
	Sections        []PageSection `json:"sections"`
	CTAText         string        `json:"ctaText"`
	CTALink         string        `json:"ctaLink"`
}

type PageSection struct {
	ID       string        `json:"id"`
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Content  string        `json:"content"`
	Layout   string        `json:"layout"`
	Image    string        `json:"image"`
	Images   []ImageValue  `json:"images"`
	Features []PageFeature `json:"features"`
}

type PageFeature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CourseLike is the shape recovered from history snapshots: a class,
// workshop, private booking or gift card, distinguished by Type (which may
// be empty on older rows, see the classifier's gift-card heuristic).
type CourseLike struct {
	ID                  string       `json:"id"`
	Title               string       `json:"title"`
	Slug                string       `json:"slug"`
	Type                string       `json:"type"`
	Visible             bool         `json:"visible"`
	Price               float64      `json:"price"`
	Duration            string       `json:"duration"`
	ShortDescription    string       `json:"shortDescription"`
	Includes            []string     `json:"includes"`
	ShowInHome          bool         `json:"showInHome"`
	ShowInHomeWorkshops bool         `json:"showInHomeWorkshops"`
	HeroImage           *ImageValue  `json:"heroImage"`
	TitleImage          *ImageValue  `json:"titleImage"`
	Images              []ImageValue `json:"images"`
	SEO                 CourseSEO    `json:"seo"`
}

type CourseSEO struct {
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
}

// Decode validates raw JSON against the record type the key implies.
// Records failing validation are quarantined by the caller instead of
// flowing through loosely typed.
func Decode[T any](raw json.RawMessage, out *T) error {
	if len(raw) == 0 {
		return fmt.Errorf("empty record value")
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("record does not match expected shape: %w", err)
	}
	return nil
}

// Package models defines the target-schema document types written to the
// content store. Field and key names follow the CMS schema declarations, so
// documents produced here are drop-in replacements for editor-created ones.
package models

// Image references an uploaded asset. Only the asset rehydrator produces
// these; mappers leave image fields unset.
type Image struct {
	Type  string   `bson:"_type" json:"_type"`
	Key   string   `bson:"_key,omitempty" json:"_key,omitempty"`
	Asset AssetRef `bson:"asset" json:"asset"`
}

type AssetRef struct {
	Type string `bson:"_type" json:"_type"`
	Ref  string `bson:"_ref" json:"_ref"`
}

type Slug struct {
	Type    string `bson:"_type" json:"_type"`
	Current string `bson:"current" json:"current"`
}

func NewSlug(current string) Slug {
	return Slug{Type: "slug", Current: current}
}

// Post is a migrated blog post.
type Post struct {
	ID          string  `bson:"_id"`
	Type        string  `bson:"_type"`
	Title       string  `bson:"title"`
	Slug        Slug    `bson:"slug"`
	Author      string  `bson:"author"`
	Excerpt     string  `bson:"excerpt"`
	IsPublished bool    `bson:"isPublished"`
	Featured    bool    `bson:"featured"`
	PublishedAt string  `bson:"publishedAt"`
	Category    string  `bson:"category"`
	SEO         PostSEO `bson:"seo"`
	MainImage   *Image  `bson:"mainImage,omitempty"`
}

type PostSEO struct {
	MetaTitle       string `bson:"metaTitle"`
	MetaDescription string `bson:"metaDescription"`
	Keywords        string `bson:"keywords"`
}

// LandingPage is a migrated marketing page.
type LandingPage struct {
	ID       string        `bson:"_id"`
	Type     string        `bson:"_type"`
	Title    string        `bson:"title"`
	Slug     Slug          `bson:"slug"`
	Visible  bool          `bson:"visible"`
	SEO      PageSEO       `bson:"seo"`
	Hero     PageHero      `bson:"hero"`
	Sections []PageSection `bson:"sections"`
	CTA      PageCTA       `bson:"cta"`
}

type PageSEO struct {
	MetaTitle       string `bson:"metaTitle"`
	MetaDescription string `bson:"metaDescription"`
	MetaKeywords    string `bson:"metaKeywords"`
}

type PageHero struct {
	Title    string `bson:"title"`
	Subtitle string `bson:"subtitle"`
	Image    *Image `bson:"image,omitempty"`
}

type PageSection struct {
	Key      string        `bson:"_key"`
	Type     string        `bson:"type"`
	Title    string        `bson:"title"`
	Layout   string        `bson:"layout,omitempty"`
	Features []PageFeature `bson:"features,omitempty"`
	Image    *Image        `bson:"image,omitempty"`
	Images   []Image       `bson:"images"`
}

type PageFeature struct {
	Key         string `bson:"_key"`
	Title       string `bson:"title"`
	Description string `bson:"description"`
	Icon        string `bson:"icon"`
}

type PageCTA struct {
	Text string `bson:"text"`
	Link string `bson:"link"`
}

// Settings is the singleton site configuration document.
type Settings struct {
	ID              string          `bson:"_id"`
	Type            string          `bson:"_type"`
	SiteName        string          `bson:"siteName"`
	SiteDescription string          `bson:"siteDescription"`
	SEO             SettingsSEO     `bson:"seo"`
	Contact         ContactInfo     `bson:"contact"`
	HeroImages      HeroImages      `bson:"heroImages"`
	Instagram       InstagramConfig `bson:"instagram"`
}

type SettingsSEO struct {
	SeoTitle          string `bson:"seoTitle"`
	SeoDescription    string `bson:"seoDescription"`
	SeoKeywords       string `bson:"seoKeywords"`
	GoogleAnalyticsID string `bson:"googleAnalyticsId"`
}

type ContactInfo struct {
	Email    string `bson:"email"`
	Email2   string `bson:"email2"`
	Phone    string `bson:"phone"`
	Whatsapp string `bson:"whatsapp"`
}

type HeroImages struct {
	Desktop *Image `bson:"desktop,omitempty"`
	Mobile  *Image `bson:"mobile,omitempty"`
	Text1   *Image `bson:"text1,omitempty"`
	Text2   *Image `bson:"text2,omitempty"`
}

type InstagramConfig struct {
	Title  string           `bson:"title"`
	Handle string           `bson:"handle"`
	Link   string           `bson:"link"`
	Images []InstagramImage `bson:"images"`
}

type InstagramImage struct {
	Key         string `bson:"_key"`
	Title       string `bson:"title"`
	Description string `bson:"description"`
	Date        string `bson:"date"`
	Image       *Image `bson:"image,omitempty"`
}

// SiteMenu is the singleton navigation document. Paths are copied verbatim
// at migration time; the reconciler rewrites them afterwards.
type SiteMenu struct {
	ID    string     `bson:"_id"`
	Type  string     `bson:"_type"`
	Name  string     `bson:"name"`
	Items []MenuItem `bson:"items"`
}

type MenuItem struct {
	Key     string        `bson:"_key"`
	Name    string        `bson:"name"`
	Path    string        `bson:"path,omitempty"`
	Submenu []SubmenuItem `bson:"submenu,omitempty"`
}

type SubmenuItem struct {
	Key  string `bson:"_key"`
	Name string `bson:"name"`
	Path string `bson:"path"`
}

// Course covers classes, workshops and private bookings, distinguished by
// the Kind field ("class", "workshop", "private").
type Course struct {
	ID                  string    `bson:"_id"`
	Type                string    `bson:"_type"`
	Title               string    `bson:"title"`
	Slug                Slug      `bson:"slug"`
	Kind                string    `bson:"type"`
	Visible             bool      `bson:"visible"`
	Price               float64   `bson:"price"`
	Duration            string    `bson:"duration"`
	ShortDescription    string    `bson:"shortDescription"`
	Includes            []string  `bson:"includes"`
	ShowInHome          bool      `bson:"showInHome"`
	ShowInHomeWorkshops bool      `bson:"showInHomeWorkshops"`
	SEO                 CourseSEO `bson:"seo"`
	HeroImage           *Image    `bson:"heroImage,omitempty"`
	TitleImage          *Image    `bson:"titleImage,omitempty"`
	Images              []Image   `bson:"images"`
}

type CourseSEO struct {
	MetaTitle       string `bson:"metaTitle"`
	MetaDescription string `bson:"metaDescription"`
}

type GiftCard struct {
	ID      string    `bson:"_id"`
	Type    string    `bson:"_type"`
	Title   string    `bson:"title"`
	Slug    Slug      `bson:"slug"`
	Price   float64   `bson:"price"`
	Visible bool      `bson:"visible"`
	SEO     CourseSEO `bson:"seo"`
	Images  []Image   `bson:"images"`
}

// ContentRef is the projection used by the link verifier and the content
// reports: enough of a document to resolve a menu path against it.
type ContentRef struct {
	ID    string  `bson:"_id"`
	Title string  `bson:"title"`
	Kind  string  `bson:"type,omitempty"`
	Slug  Slug    `bson:"slug"`
	Price float64 `bson:"price,omitempty"`
}

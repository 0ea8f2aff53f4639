// Package menu repairs and audits the navigation document after migration:
// slug renames during migration leave menu paths pointing at routes that no
// longer resolve.
package menu

import (
	"fmt"
	"strings"

	"github.com/casarosier/cms-migrate/pkg/models"
)

// Static routes of the site frontend; single-segment paths matching one of
// these are valid regardless of content.
var staticRoutes = map[string]bool{
	"blog":              true,
	"clases":            true,
	"workshops":         true,
	"tiendita":          true,
	"el-estudio":        true,
	"admin":             true,
	"espacios-privados": true,
}

// Course kind expected under each dynamic route section.
var sectionKinds = map[string]string{
	"clases":    "class",
	"workshops": "workshop",
	"privada":   "private",
}

var sectionLabels = map[string]string{
	"class":    "Class",
	"workshop": "Workshop",
	"private":  "Private",
}

// Index holds the migrated content the verifier resolves paths against.
type Index struct {
	Courses      []models.ContentRef
	GiftCards    []models.ContentRef
	LandingPages []models.ContentRef
}

// Result classifies a single path.
type Result struct {
	Valid bool
	// Match describes what the path resolved to; set when Valid.
	Match string
	// Reason explains the failure; set when not Valid.
	Reason string
}

// CheckPath classifies a menu path as resolvable or broken against current
// content. The rules mirror the frontend router: root, static routes,
// landing-page slugs, and two-segment course routes per section.
func CheckPath(path string, idx Index) Result {
	if path == "" {
		return Result{Reason: "Empty path"}
	}
	if path == "/" {
		return Result{Valid: true, Match: "Home"}
	}

	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")

	if len(parts) == 1 {
		if staticRoutes[parts[0]] {
			return Result{Valid: true, Match: "Static Route"}
		}
		if lp := findBySlug(idx.LandingPages, parts[0]); lp != nil {
			return Result{Valid: true, Match: "Landing Page: " + lp.Title}
		}
		return Result{Reason: "Unknown root path"}
	}

	section, slug := parts[0], parts[1]

	if kind, ok := sectionKinds[section]; ok {
		if item := findCourse(idx.Courses, slug, kind); item != nil {
			return Result{Valid: true, Match: fmt.Sprintf("%s: %s", sectionLabels[kind], item.Title)}
		}
		// The slug may exist under another course kind; treat that as
		// resolvable but flag the mismatch. Private routes get no such
		// fallback.
		if section != "privada" {
			if item := findBySlug(idx.Courses, slug); item != nil {
				return Result{Valid: true, Match: fmt.Sprintf("Found as %s: %s (URL mismatch?)", item.Kind, item.Title)}
			}
		}
	}

	if section == "tarjeta-regalo" {
		return Result{Reason: "Dynamic gift card path not common in menu"}
	}
	if section == "blog" {
		return Result{Valid: true, Match: "Blog Post"}
	}

	return Result{Reason: "Content not found in content store"}
}

// ReportRow is one verifier line: a menu entry plus its verdict.
type ReportRow struct {
	Level  int
	Name   string
	Path   string
	Folder bool
	Result Result
}

// Verify classifies every path in the menu, walking top-level items and one
// level of submenu. Items without a path are reported as folders.
func Verify(m *models.SiteMenu, idx Index) []ReportRow {
	var rows []ReportRow
	for _, item := range m.Items {
		rows = append(rows, checkItem(item.Name, item.Path, 0, idx))
		for _, sub := range item.Submenu {
			rows = append(rows, checkItem(sub.Name, sub.Path, 1, idx))
		}
	}
	return rows
}

func checkItem(name, path string, level int, idx Index) ReportRow {
	if path == "" {
		return ReportRow{Level: level, Name: name, Folder: true}
	}
	return ReportRow{Level: level, Name: name, Path: path, Result: CheckPath(path, idx)}
}

func findBySlug(refs []models.ContentRef, slug string) *models.ContentRef {
	for i := range refs {
		if refs[i].Slug.Current == slug {
			return &refs[i]
		}
	}
	return nil
}

func findCourse(refs []models.ContentRef, slug, kind string) *models.ContentRef {
	for i := range refs {
		if refs[i].Slug.Current == slug && refs[i].Kind == kind {
			return &refs[i]
		}
	}
	return nil
}

package legacy

import (
	"testing"
)

func TestResolveLatestPicksGreatestTimestamp(t *testing.T) {
	keys := []string{
		"history:course-1:version:100:aaa",
		"history:course-1:version:300:bbb",
		"history:course-1:version:200:ccc",
	}

	latest, ignored := ResolveLatest(keys)
	if ignored != 0 {
		t.Fatalf("ignored = %d, want 0", ignored)
	}
	if len(latest) != 1 {
		t.Fatalf("got %d entities, want 1", len(latest))
	}

	v, ok := latest["course-1"]
	if !ok {
		t.Fatal("course-1 not resolved")
	}
	if v.Timestamp != 300 {
		t.Errorf("timestamp = %d, want 300", v.Timestamp)
	}
	if v.Key != "history:course-1:version:300:bbb" {
		t.Errorf("key = %s, want the 300 row", v.Key)
	}
}

func TestResolveLatestExcludesDirectKeyNamespaces(t *testing.T) {
	keys := []string{
		"history:page:home:version:100:abc",
		"history:blog:post:1:version:100:abc",
		"history:site:settings:version:100:abc",
		"history:gift-card-1:version:100:abc",
	}

	latest, _ := ResolveLatest(keys)
	if len(latest) != 1 {
		t.Fatalf("got %d entities, want 1: %v", len(latest), latest)
	}
	if _, ok := latest["gift-card-1"]; !ok {
		t.Error("gift-card-1 should survive exclusion")
	}
	// A page entity must never be recovered even if it has history rows.
	if _, ok := latest["page:home"]; ok {
		t.Error("page:home must be excluded before classification")
	}
}

func TestResolveLatestIgnoresMalformedKeys(t *testing.T) {
	keys := []string{
		"history:course-1:version:100:aaa",
		"history:course-1:version:notanumber:aaa",
		"history:weird-row-without-version",
		"site:settings",
	}

	latest, ignored := ResolveLatest(keys)
	if ignored != 3 {
		t.Errorf("ignored = %d, want 3", ignored)
	}
	if len(latest) != 1 {
		t.Errorf("got %d entities, want 1", len(latest))
	}
}

func TestResolveLatestTieBreakIsOrderIndependent(t *testing.T) {
	a := "history:course-1:version:100:aaa"
	b := "history:course-1:version:100:zzz"

	forward, _ := ResolveLatest([]string{a, b})
	reverse, _ := ResolveLatest([]string{b, a})

	if forward["course-1"].Key != reverse["course-1"].Key {
		t.Fatalf("tie-break depends on scan order: %s vs %s",
			forward["course-1"].Key, reverse["course-1"].Key)
	}
	if forward["course-1"].Suffix != "zzz" {
		t.Errorf("suffix = %s, want the lexicographically greatest (zzz)", forward["course-1"].Suffix)
	}
}

func TestParseHistoryKeyWithCompositeEntityID(t *testing.T) {
	// Entity ids may contain colons themselves.
	v, ok := ParseHistoryKey("history:content:gift-card-1:version:1700000000000:x7k2p")
	if !ok {
		t.Fatal("key should parse")
	}
	if v.EntityID != "content:gift-card-1" {
		t.Errorf("entity id = %q", v.EntityID)
	}
	if v.Timestamp != 1700000000000 {
		t.Errorf("timestamp = %d", v.Timestamp)
	}
	if v.Suffix != "x7k2p" {
		t.Errorf("suffix = %q", v.Suffix)
	}
}

func TestWinningKeys(t *testing.T) {
	latest, _ := ResolveLatest([]string{
		"history:a:version:1:x",
		"history:b:version:2:y",
	})
	keys := WinningKeys(latest)
	if len(keys) != 2 {
		t.Fatalf("got %d keys, want 2", len(keys))
	}
}

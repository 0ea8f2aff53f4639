package legacy

import (
	"encoding/json"
	"testing"
)

func TestImageValueAcceptsBothEncodings(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare url", `"https://example.com/a.jpg"`, "https://example.com/a.jpg"},
		{"object", `{"url":"https://example.com/b.jpg","alt":"x"}`, "https://example.com/b.jpg"},
		{"object without url", `{"alt":"x"}`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var v ImageValue
			if err := json.Unmarshal([]byte(tc.in), &v); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if v.URL != tc.want {
				t.Errorf("url = %q, want %q", v.URL, tc.want)
			}
		})
	}
}

func TestImageValueRejectsOtherShapes(t *testing.T) {
	var v ImageValue
	if err := json.Unmarshal([]byte(`42`), &v); err == nil {
		t.Error("number should not decode as an image value")
	}
}

func TestDecodeQuarantinesMalformedRecords(t *testing.T) {
	var p Post
	if err := Decode(json.RawMessage(`{"title": 42}`), &p); err == nil {
		t.Error("type-mismatched record should fail validation")
	}
	if err := Decode(nil, &p); err == nil {
		t.Error("empty value should fail validation")
	}
}

func TestDecodePost(t *testing.T) {
	raw := json.RawMessage(`{
		"id": "1",
		"title": "Hola",
		"slug": "hola",
		"published": true,
		"createdAt": "2024-01-01T00:00:00Z",
		"seo": {"keywords": "ceramica"}
	}`)

	var p Post
	if err := Decode(raw, &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !p.Published || p.Slug != "hola" || p.SEO.Keywords != "ceramica" {
		t.Errorf("decoded post = %+v", p)
	}
}

func TestChunks(t *testing.T) {
	keys := []string{"a", "b", "c", "d", "e"}

	chunks := Chunks(keys, 2)
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	if len(chunks[2]) != 1 || chunks[2][0] != "e" {
		t.Errorf("last chunk = %v", chunks[2])
	}

	if got := Chunks(nil, 2); got != nil {
		t.Errorf("empty input should yield no chunks, got %v", got)
	}
}

func TestLikePatternEscapesWildcards(t *testing.T) {
	if got := likePattern("blog:post:"); got != "blog:post:%" {
		t.Errorf("pattern = %q", got)
	}
	if got := likePattern("a%b_c"); got != "a[%]b[_]c%" {
		t.Errorf("escaped pattern = %q", got)
	}
}

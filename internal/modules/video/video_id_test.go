package video

import "testing"

func TestExtractVideoID(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
		ok   bool
	}{
		{"watch", "https://www.youtube.com/watch?v=ABC123", "ABC123", true},
		{"watch with amp", "https://www.youtube.com/watch?v=ABC123&t=42s", "ABC123", true},
		{"watch with query", "https://www.youtube.com/watch?v=ABC123?feature=share", "ABC123", true},
		{"watch with fragment", "https://www.youtube.com/watch?v=ABC123#t=1", "ABC123", true},
		{"amp v", "https://www.youtube.com/watch?feature=player&v=ABC123", "ABC123", true},
		{"short", "https://youtu.be/dQw4w9WgXcQ?si=xyz", "dQw4w9WgXcQ", true},
		{"bare short", "youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"embed", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"vi keeps trailing path", "https://i.ytimg.com/vi/dQw4w9WgXcQ/default.jpg", "dQw4w9WgXcQ/default.jpg", true},
		{"v path", "https://www.youtube.com/v/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"no marker", "https://example.com/page", "", false},
		{"empty", "", "", false},
		{"empty token", "https://www.youtube.com/watch?v=&x=1", "", true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractVideoID(tc.url)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("ExtractVideoID(%q) = (%q, %v), want (%q, %v)", tc.url, got, ok, tc.want, tc.ok)
			}
		})
	}
}

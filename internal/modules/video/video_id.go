package video

import "regexp"

// videoIDPattern matches the positional markers YouTube uses in its URL
// shapes and captures everything up to the next '#', '&' or '?'.
var videoIDPattern = regexp.MustCompile(
	`(?:v=|/embed/|/\d/|/vi/|/v/|youtu\.be/|/e/|watch\?v=|&v=|^youtu\.be/|watch\?.*?&v=)([^#&?]*)`,
)

// ExtractVideoID returns the id following the leftmost marker in rawURL.
// The token is not validated; a malformed id surfaces later as a
// transcript error.
func ExtractVideoID(rawURL string) (string, bool) {
	m := videoIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

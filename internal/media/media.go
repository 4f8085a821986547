// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package media classifies media URLs into the named kinds Timeline.js
// recognizes. Classification is reporting-only: the output document
// embeds the raw URL and lets Timeline.js do its own detection.
package media

import "regexp"

// Kind names a detected media type.
type Kind struct {
	Type string
	Name string
}

// Kinds returned outside the rule table.
var (
	KindUnknown = Kind{Type: "unknown", Name: "Unknown"}
	KindLink    = Kind{Type: "link", Name: "Web Link"}
)

type rule struct {
	pattern *regexp.Regexp
	kind    Kind
}

// rules are evaluated in order against the lower-cased URL; the first
// match wins. Host rules precede extension rules: a platform URL can
// also end in an image-like extension, and the platform must win.
var rules = []rule{
	{regexp.MustCompile(`youtube|youtu\.be`), Kind{"youtube", "YouTube Video"}},
	{regexp.MustCompile(`vimeo\.com`), Kind{"vimeo", "Vimeo Video"}},
	{regexp.MustCompile(`twitter\.com|x\.com`), Kind{"twitter", "Twitter Post"}},
	{regexp.MustCompile(`instagram\.com.*/p/`), Kind{"instagram", "Instagram Post"}},
	{regexp.MustCompile(`flickr\.com/photos`), Kind{"flickr", "Flickr Photo"}},
	{regexp.MustCompile(`soundcloud\.com`), Kind{"soundcloud", "SoundCloud Audio"}},
	{regexp.MustCompile(`spotify\.com`), Kind{"spotify", "Spotify Audio"}},
	{regexp.MustCompile(`google\.com/maps`), Kind{"googlemaps", "Google Maps"}},
	{regexp.MustCompile(`wikipedia\.org`), Kind{"wikipedia", "Wikipedia Article"}},
	{regexp.MustCompile(`commons\.wikimedia\.org.*\.(jpg|jpeg|png|gif|svg|webp)`), Kind{"wikipedia-image", "Wikipedia Image"}},
	{regexp.MustCompile(`dailymotion\.com|dai\.ly`), Kind{"dailymotion", "DailyMotion Video"}},
	{regexp.MustCompile(`vine\.co`), Kind{"vine", "Vine Video"}},
	{regexp.MustCompile(`documentcloud\.org`), Kind{"documentcloud", "Document Cloud"}},
	{regexp.MustCompile(`drive\.google\.com`), Kind{"googledocs", "Google Drive"}},
	{regexp.MustCompile(`imgur\.com`), Kind{"imgur", "Imgur Image"}},
	{regexp.MustCompile(`wistia\.com|wi\.st`), Kind{"wistia", "Wistia Video"}},
	{regexp.MustCompile(`\.(jpg|jpeg|png|gif|svg|webp)(\?.*)?$`), Kind{"image", "Image"}},
	{regexp.MustCompile(`\.(mp4|webm|avi|mov)(\?.*)?$`), Kind{"video", "Video File"}},
	{regexp.MustCompile(`\.(mp3|wav|ogg|m4a)(\?.*)?$`), Kind{"audio", "Audio File"}},
	{regexp.MustCompile(`\.(pdf)(\?.*)?$`), Kind{"pdf", "PDF Document"}},
}

// Detect classifies a URL. An empty URL is Unknown; a URL matching no
// rule is a generic Web Link. Pure function, no side effects.
func Detect(url string) Kind {
	if url == "" {
		return KindUnknown
	}
	lower := lowerASCII(url)
	for _, r := range rules {
		if r.pattern.MatchString(lower) {
			return r.kind
		}
	}
	return KindLink
}

// lowerASCII lowercases A-Z only, leaving multibyte runes alone so
// percent-encoded and Unicode URLs keep their byte offsets.
func lowerASCII(s string) string {
	b := []byte(s)
	changed := false
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}

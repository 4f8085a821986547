// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package media

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"empty url", "", "unknown"},
		{"youtube short link", "https://youtu.be/abc", "youtube"},
		{"youtube full host", "https://www.YouTube.com/watch?v=abc", "youtube"},
		{"vimeo", "https://vimeo.com/12345", "vimeo"},
		{"twitter", "https://twitter.com/user/status/1", "twitter"},
		{"instagram post", "https://www.instagram.com/accounts/p/xyz/", "instagram"},
		{"flickr photo", "https://www.flickr.com/photos/nasa/123", "flickr"},
		{"soundcloud", "https://soundcloud.com/artist/track", "soundcloud"},
		{"google maps", "https://www.google.com/maps/place/x", "googlemaps"},
		{"wikipedia article", "https://en.wikipedia.org/wiki/Sputnik_1", "wikipedia"},
		{"wikimedia image beats image rule", "https://commons.wikimedia.org/a/b/photo.jpg", "wikipedia-image"},
		{"google drive", "https://drive.google.com/file/d/abc", "googledocs"},
		{"image extension", "https://example.com/pic.jpg", "image"},
		{"image extension with query", "https://example.com/pic.PNG?size=large", "image"},
		{"video extension", "https://example.com/clip.mp4", "video"},
		{"audio extension", "https://example.com/song.mp3", "audio"},
		{"pdf extension", "https://example.com/paper.pdf", "pdf"},
		{"extension mid-path does not match", "https://example.com/pic.jpg/view", "link"},
		{"plain page", "https://example.com/page", "link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.url)
			if got.Type != tt.want {
				t.Errorf("Detect(%q).Type = %q, want %q", tt.url, got.Type, tt.want)
			}
			if got.Name == "" {
				t.Errorf("Detect(%q) returned empty display name", tt.url)
			}
		})
	}
}

func TestDetectHostRulePrecedence(t *testing.T) {
	// A hosted platform URL ending in an image extension must classify
	// as the platform, not as an image.
	got := Detect("https://imgur.com/gallery/abc.png")
	if got.Type != "imgur" {
		t.Errorf("Detect = %q, want %q (host rules precede extension rules)", got.Type, "imgur")
	}
}

package model

import "testing"

func TestRecord_Equal(t *testing.T) {
	tests := []struct {
		name     string
		a        Record
		b        Record
		expected bool
	}{
		{"same local path", NewLocalFile("/videos/a.mp4"), NewLocalFile("/videos/a.mp4"), true},
		{"unnormalized local path", NewLocalFile("/videos//a.mp4"), NewLocalFile("/videos/a.mp4"), true},
		{"different local path", NewLocalFile("/videos/a.mp4"), NewLocalFile("/videos/b.mp4"), false},
		{"same url", NewRemoteRef("https://youtu.be/abc123"), NewRemoteRef("https://youtu.be/abc123"), true},
		{"url with surrounding space", NewRemoteRef(" https://youtu.be/abc123 "), NewRemoteRef("https://youtu.be/abc123"), true},
		{"different url", NewRemoteRef("https://youtu.be/abc123"), NewRemoteRef("https://youtu.be/def456"), false},
		{"different variant", NewLocalFile("https://youtu.be/abc123"), NewRemoteRef("https://youtu.be/abc123"), false},
	}

	for _, test := range tests {
		if got := test.a.Equal(test.b); got != test.expected {
			t.Errorf("%s: Equal() = %v, expected %v", test.name, got, test.expected)
		}
	}
}

func TestRecord_DisplayName(t *testing.T) {
	local := NewLocalFile("/videos/holiday.mp4")
	if local.DisplayName() != "holiday.mp4" {
		t.Errorf("DisplayName() for local file = %q, expected %q", local.DisplayName(), "holiday.mp4")
	}

	remote := NewRemoteRef("https://www.youtube.com/watch?v=abc123")
	if remote.DisplayName() != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("DisplayName() for remote ref = %q, expected the URL", remote.DisplayName())
	}
}

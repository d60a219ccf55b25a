package mimetype_test

import (
	"testing"

	"github.com/iyulab/undoc/internal/mimetype"
)

func TestForPart(t *testing.T) {
	tests := []struct {
		part string
		want string
	}{
		{"word/media/image1.png", "image/png"},
		{"word/media/image2.JPG", "image/jpeg"},
		{"xl/media/image3.jpeg", "image/jpeg"},
		{"ppt/media/image4.emf", "image/x-emf"},
		{"word/media/image5.xyz", "application/octet-stream"},
		{"word/media/noextension", "application/octet-stream"},
	}
	for _, tt := range tests {
		if got := mimetype.ForPart(tt.part); got != tt.want {
			t.Errorf("ForPart(%q) = %q, want %q", tt.part, got, tt.want)
		}
	}
}

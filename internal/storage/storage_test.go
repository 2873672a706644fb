package storage

import "testing"

func TestValidImageType(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{"image/jpeg", true},
		{"image/jpg", true},
		{"image/png", true},
		{"image/webp", true},
		{"image/heic", true},
		{"IMAGE/JPEG", true},
		{"image/gif", false},
		{"application/pdf", false},
		{"text/html", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			if got := ValidImageType(tt.contentType); got != tt.want {
				t.Errorf("ValidImageType(%q) = %v, want %v", tt.contentType, got, tt.want)
			}
		})
	}
}

func TestImageExt(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"photo.jpg", ".jpg"},
		{"photo.JPEG", ".jpeg"},
		{"photo.PNG", ".png"},
		{"archive.tar.gz", ".gz"},
		{"noextension", ".jpg"},
		{"", ".jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := ImageExt(tt.filename); got != tt.want {
				t.Errorf("ImageExt(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

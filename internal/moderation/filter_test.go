package moderation

import "testing"

func TestContentFilterCheck(t *testing.T) {
	filter := NewContentFilter()

	tests := []struct {
		name       string
		text       string
		wantOK     bool
		wantReason string
	}{
		{"empty text passes", "", true, ""},
		{"clean text passes", "Perrita mestiza color marrón, muy cariñosa", true, ""},
		{"accented text passes", "Se perdió cerca de la plaza, tiene collar rojo", true, ""},
		{"banned word english", "this is fucking spam text", false, "inappropriate_language"},
		{"banned word spanish", "es una estafa total", false, "inappropriate_language"},
		{"banned word case insensitive", "MIERDA", false, "inappropriate_language"},
		{"banned word inside another word passes", "classic", true, ""},
		{"http url", "llamar a http://example.com ya", false, "url_not_allowed"},
		{"https url", "ver https://foo.bar/baz", false, "url_not_allowed"},
		{"www url", "entrar a www.sitio.com ahora", false, "url_not_allowed"},
		{"repeated letters", "holaaaaa perdido", false, "spam_detected"},
		{"repeated punctuation", "ayuda!!!!!", false, "spam_detected"},
		{"four repeats pass", "holaaaa", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := filter.Check(tt.text)
			if ok != tt.wantOK {
				t.Errorf("Check(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if reason != tt.wantReason {
				t.Errorf("Check(%q) reason = %q, want %q", tt.text, reason, tt.wantReason)
			}
		})
	}
}

func TestRejectionMessage(t *testing.T) {
	filter := NewContentFilter()

	for _, reason := range []string{"inappropriate_language", "url_not_allowed", "spam_detected"} {
		if msg := filter.RejectionMessage(reason); msg == "" {
			t.Errorf("RejectionMessage(%q) is empty", reason)
		}
	}

	fallback := filter.RejectionMessage("unknown_reason")
	if fallback != "The text does not meet our content guidelines." {
		t.Errorf("fallback message = %q", fallback)
	}
}

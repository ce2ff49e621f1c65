package services

import "testing"

func TestContentFilterCheck(t *testing.T) {
	f := NewContentFilter()

	cases := []struct {
		name   string
		text   string
		ok     bool
		reason string
	}{
		{"clean", "We are hiring a warehouse worker for the night shift", true, ""},
		{"empty", "", true, ""},
		{"banned word", "This is not a scam, honest", false, "inappropriate_language"},
		{"banned word is case insensitive", "TOTAL BULLSHIT", false, "inappropriate_language"},
		{"substring does not trigger", "We use Scampi recipes and classy assets", true, ""},
		{"http link", "Apply at http://jobs.example.com now", false, "url_not_allowed"},
		{"www link", "Visit www.example.com for details", false, "url_not_allowed"},
		{"repeated punctuation", "APPLY NOW!!!!", false, "spam_detected"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, reason := f.Check(tc.text)
			if ok != tc.ok || reason != tc.reason {
				t.Fatalf("Check(%q) = (%v, %q), want (%v, %q)", tc.text, ok, reason, tc.ok, tc.reason)
			}
		})
	}
}

func TestRejectionMessage(t *testing.T) {
	f := NewContentFilter()

	if msg := f.RejectionMessage("url_not_allowed"); msg == "" {
		t.Fatal("expected a message for a known reason")
	}
	if msg := f.RejectionMessage("something_else"); msg == "" {
		t.Fatal("expected a fallback message for unknown reasons")
	}
}

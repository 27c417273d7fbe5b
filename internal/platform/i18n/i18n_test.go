package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestDefaultTagIsAmericanEnglish(t *testing.T) {
	if DefaultTag() != language.AmericanEnglish {
		t.Fatalf("expected en-US default, got %v", DefaultTag())
	}
}

func TestParseTag(t *testing.T) {
	tag, ok := ParseTag("de")
	if !ok {
		t.Fatal("expected german to be supported")
	}
	if Locale(tag) != "de-DE" {
		t.Fatalf("expected de-DE, got %q", Locale(tag))
	}

	if _, ok := ParseTag("not-a-tag!!"); ok {
		t.Fatal("expected parse failure")
	}
}

func TestMatchTagsPrefersCallerOrder(t *testing.T) {
	preferred, _, err := language.ParseAcceptLanguage("de-DE,en;q=0.7")
	if err != nil {
		t.Fatalf("parse accept-language: %v", err)
	}
	if got := MatchTags(preferred); Locale(got) != "de-DE" {
		t.Fatalf("expected de-DE, got %q", Locale(got))
	}
}

func TestMatchTagsFallsBack(t *testing.T) {
	preferred, _, err := language.ParseAcceptLanguage("fr-FR")
	if err != nil {
		t.Fatalf("parse accept-language: %v", err)
	}
	if got := MatchTags(preferred); got != DefaultTag() {
		t.Fatalf("expected default tag, got %v", got)
	}
	if got := MatchTags(nil); got != DefaultTag() {
		t.Fatalf("expected default tag for empty preferences, got %v", got)
	}
}

// Package i18n declares the locales supported by user-facing surfaces and
// resolves the best match for a request.
package i18n

import "golang.org/x/text/language"

var supported = []language.Tag{
	language.AmericanEnglish, // en-US, default
	language.MustParse("de-DE"),
}

var matcher = language.NewMatcher(supported)

// DefaultTag returns the default language tag.
func DefaultTag() language.Tag {
	return supported[0]
}

// SupportedTags returns the supported language tags in preference order.
func SupportedTags() []language.Tag {
	tags := make([]language.Tag, len(supported))
	copy(tags, supported)
	return tags
}

// ParseTag parses a locale value and reports whether it maps onto a
// supported tag.
func ParseTag(value string) (language.Tag, bool) {
	tag, err := language.Parse(value)
	if err != nil {
		return DefaultTag(), false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return DefaultTag(), false
	}
	return supported[index], true
}

// MatchTags picks the best supported tag for the caller's preferences.
func MatchTags(preferred []language.Tag) language.Tag {
	if len(preferred) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(preferred...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supported[index]
}

// Locale renders a tag as the catalog locale key (e.g. "de-DE").
func Locale(tag language.Tag) string {
	return tag.String()
}

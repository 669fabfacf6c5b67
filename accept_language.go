package locl

import "golang.org/x/text/language"

// maxAcceptLanguageLength prevents abuse through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// MatchLanguage picks the best language from available for an
// Accept-Language header, honoring quality values and base-language matches
// ("en" serves "en-US"). An empty header or no usable match returns the
// first available language.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
// Available: ["pl", "en", "de"]
// Returns: "en"
func MatchLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags := make([]language.Tag, 0, len(available))
	for _, lang := range available {
		tag := language.Make(lang)
		if tag == language.Und {
			return available[0]
		}
		tags = append(tags, tag)
	}

	matcher := language.NewMatcher(tags)
	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return available[0]
	}
	_, index, conf := matcher.Match(desired...)
	if conf == language.No {
		return available[0]
	}
	return available[index]
}

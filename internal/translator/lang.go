package translator

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// remoteText is req.Text as sent to remote backends: NFC-normalized.
func remoteText(text string) string {
	return norm.NFC.String(text)
}

// targetTag parses lang and, when region is a valid ISO 3166 code, attaches
// it to the tag. An unknown region is dropped rather than failing the call.
func targetTag(lang, region string) (language.Tag, error) {
	if lang == "" {
		return language.Und, fmt.Errorf("target language is empty")
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return language.Und, fmt.Errorf("invalid target language %q: %w", lang, err)
	}
	if region == "" {
		return tag, nil
	}
	r, err := language.ParseRegion(region)
	if err != nil {
		return tag, nil
	}
	withRegion, err := language.Compose(tag, r)
	if err != nil {
		return tag, nil
	}
	return withRegion, nil
}

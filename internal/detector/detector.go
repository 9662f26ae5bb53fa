// Package detector resolves the "auto" source language with lingua-go.
package detector

import (
	"strings"

	lingua "github.com/pemistahl/lingua-go"
)

// Auto is the source language value that asks for detection.
const Auto = "auto"

// Detector is expensive to build; create one and reuse it.
type Detector struct {
	detector lingua.LanguageDetector
}

// New builds a detector restricted to the given ISO 639-1 codes. Unknown
// codes are skipped. With fewer than two usable codes it falls back to all
// languages, since lingua needs at least two candidates.
func New(isoCodes ...string) *Detector {
	var codes []lingua.IsoCode639_1
	seen := make(map[lingua.IsoCode639_1]bool)
	for _, c := range isoCodes {
		code := lingua.GetIsoCode639_1FromValue(strings.ToUpper(strings.TrimSpace(c)))
		if code == lingua.UnknownIsoCode639_1 || seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}

	builder := lingua.NewLanguageDetectorBuilder()
	var b lingua.LanguageDetectorBuilder
	if len(codes) >= 2 {
		b = builder.FromIsoCodes639_1(codes...)
	} else {
		b = builder.FromAllLanguages()
	}

	return &Detector{detector: b.Build()}
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if strings.TrimSpace(text) == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

// DetectISO returns the lower-case ISO 639-1 code of text.
func (d *Detector) DetectISO(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}

// Resolve returns lang unchanged unless it is Auto, in which case it returns
// the detected code. When detection fails Auto is returned.
func (d *Detector) Resolve(lang, text string) string {
	if !strings.EqualFold(lang, Auto) {
		return lang
	}
	if code, ok := d.DetectISO(text); ok {
		return code
	}
	return Auto
}

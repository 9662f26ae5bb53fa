package sfl

import "strings"

type processRule struct {
	process  ProcessType
	keywords []string
}

// processRules is checked in order; the first rule with any hit wins.
var processRules = []processRule{
	{ProcessVerbal, []string{"said", "announced", "told", "asked"}},
	{ProcessMental, []string{"think", "believe", "know", "feel"}},
	{ProcessMaterial, []string{"do", "make", "create", "build"}},
}

const defaultProcess = ProcessRelational

type moodRule struct {
	suffix string
	mood   Mood
}

var moodRules = []moodRule{
	{"?", MoodInterrogative},
	{"!", MoodExclamative},
}

// businessTerms are matched case-sensitively so "CEO" does not fire on "ceo".
var businessTerms = []string{"committee", "merger", "CEO", "proposal"}

var formalMarkers = []string{"shall", "herein", "aforementioned"}

var cohesionMarkers = []string{"however", "therefore", "moreover", "thus"}

// Extract analyzes text and returns its feature bundle. It never fails:
// ambiguous or empty input yields the default classifications.
func Extract(text string) FeatureBundle {
	lower := strings.ToLower(text)

	return FeatureBundle{
		ProcessType:     detectProcessType(lower),
		Participants:    extractParticipants(text),
		Circumstances:   extractCircumstances(text),
		Mood:            detectMood(text),
		Theme:           identifyTheme(text),
		Register:        detectRegister(text, lower),
		CohesionMarkers: findCohesionMarkers(lower),
	}
}

func detectProcessType(lower string) ProcessType {
	for _, rule := range processRules {
		if containsAny(lower, rule.keywords) {
			return rule.process
		}
	}
	return defaultProcess
}

func detectMood(text string) Mood {
	trimmed := strings.TrimSpace(text)
	for _, rule := range moodRules {
		if strings.HasSuffix(trimmed, rule.suffix) {
			return rule.mood
		}
	}
	return MoodDeclarative
}

func identifyTheme(text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	return words[0]
}

func detectRegister(text, lower string) RegisterInfo {
	reg := RegisterInfo{
		Field: FieldGeneral,
		Tenor: TenorNeutral,
		Mode:  ModeWritten,
	}
	if containsAny(text, businessTerms) {
		reg.Field = FieldBusiness
	}
	if containsAny(lower, formalMarkers) {
		reg.Tenor = TenorFormal
	}
	return reg
}

func extractParticipants(string) []string {
	return []string{}
}

func extractCircumstances(string) []string {
	return []string{}
}

func findCohesionMarkers(lower string) []string {
	found := []string{}
	for _, m := range cohesionMarkers {
		if strings.Contains(lower, m) {
			found = append(found, m)
		}
	}
	return found
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

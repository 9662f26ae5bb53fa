package core

import (
	"errors"
	"fmt"

	"github.com/valpere/sfltran/internal/sfl"
)

// ErrTranslationServiceUnavailable wraps any failure of the translation
// service collaborator.
var ErrTranslationServiceUnavailable = errors.New("translation service unavailable")

// DefaultConfidence is reported for every translation until backends
// provide a calibrated score.
const DefaultConfidence = 0.92

// Register is a preferred register preset for the translation.
type Register string

const (
	RegisterFormal         Register = "formal"
	RegisterInformal       Register = "informal"
	RegisterAcademic       Register = "academic"
	RegisterBusiness       Register = "business-formal"
	RegisterConversational Register = "conversational"
	RegisterTechnical      Register = "technical"
)

var registers = []Register{
	RegisterFormal,
	RegisterInformal,
	RegisterAcademic,
	RegisterBusiness,
	RegisterConversational,
	RegisterTechnical,
}

// ParseRegister accepts "" as no preference.
func ParseRegister(s string) (Register, error) {
	if s == "" {
		return "", nil
	}
	for _, r := range registers {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown register %q", s)
}

// Options controls a single Translate call.
//
// PreserveRegister and CulturalAdaptation are forwarded to the service
// request but do not change the result of any built-in backend.
type Options struct {
	Analyze            bool
	Region             string
	PreserveRegister   bool
	CulturalAdaptation bool
}

type TranslationResult struct {
	TranslatedText string             `json:"translation"`
	SourceText     string             `json:"source_text"`
	SourceLang     string             `json:"source_lang"`
	TargetLang     string             `json:"target_lang"`
	Features       *sfl.FeatureBundle `json:"sfl_analysis"`
	Confidence     float64            `json:"confidence"`
}

// Package sfl extracts Systemic Functional Linguistics features from a single
// clause using keyword rule tables.
package sfl

// ProcessType is the transitivity category of the main verb.
type ProcessType string

const (
	ProcessMaterial    ProcessType = "material"
	ProcessMental      ProcessType = "mental"
	ProcessRelational  ProcessType = "relational"
	ProcessVerbal      ProcessType = "verbal"
	ProcessBehavioral  ProcessType = "behavioral"
	ProcessExistential ProcessType = "existential"
)

// ProcessTypes lists every process type in declaration order.
var ProcessTypes = []ProcessType{
	ProcessMaterial,
	ProcessMental,
	ProcessRelational,
	ProcessVerbal,
	ProcessBehavioral,
	ProcessExistential,
}

func (p ProcessType) Valid() bool {
	for _, v := range ProcessTypes {
		if p == v {
			return true
		}
	}
	return false
}

type Mood string

const (
	MoodDeclarative   Mood = "declarative"
	MoodInterrogative Mood = "interrogative"
	MoodExclamative   Mood = "exclamative"
)

type Field string

const (
	FieldGeneral  Field = "general"
	FieldBusiness Field = "business"
)

type Tenor string

const (
	TenorNeutral Tenor = "neutral"
	TenorFormal  Tenor = "formal"
)

type Mode string

const ModeWritten Mode = "written"

// RegisterInfo holds the three register variables of a clause.
type RegisterInfo struct {
	Field Field `json:"field"`
	Tenor Tenor `json:"tenor"`
	Mode  Mode  `json:"mode"`
}

// FeatureBundle is the result of Extract.
//
// Participants and Circumstances are always non-nil so they encode as []
// rather than null.
type FeatureBundle struct {
	ProcessType     ProcessType  `json:"process_type"`
	Participants    []string     `json:"participants"`
	Circumstances   []string     `json:"circumstances"`
	Mood            Mood         `json:"mood"`
	Theme           string       `json:"theme"`
	Register        RegisterInfo `json:"register"`
	CohesionMarkers []string     `json:"cohesion_markers"`
}

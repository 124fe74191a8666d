package domain

import (
	"strings"
	"time"
)

// Discipline is the school subject an activity belongs to.
type Discipline string

const (
	DisciplineLanguage     Discipline = "language"
	DisciplineMath         Discipline = "math"
	DisciplineScience      Discipline = "science"
	DisciplineHistory      Discipline = "history"
	DisciplineGeography    Discipline = "geography"
	DisciplineArts         Discipline = "arts"
	DisciplinePhysicalEd   Discipline = "physical-education"
	DisciplineLifeSkills   Discipline = "life-skills"
	DisciplineCrossSubject Discipline = "cross-subject"
	DisciplineOther        Discipline = "other"
)

// KnownDisciplines lists the fixed discipline set in display order.
var KnownDisciplines = []Discipline{
	DisciplineLanguage,
	DisciplineMath,
	DisciplineScience,
	DisciplineHistory,
	DisciplineGeography,
	DisciplineArts,
	DisciplinePhysicalEd,
	DisciplineLifeSkills,
	DisciplineCrossSubject,
	DisciplineOther,
}

// NormalizeDiscipline maps free-form model output onto the fixed set,
// falling back to DisciplineOther for anything unrecognized.
func NormalizeDiscipline(s string) Discipline {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, d := range KnownDisciplines {
		if needle == string(d) {
			return d
		}
	}
	switch {
	case strings.Contains(needle, "portug"), strings.Contains(needle, "lang"),
		strings.Contains(needle, "read"), strings.Contains(needle, "writ"):
		return DisciplineLanguage
	case strings.Contains(needle, "math"):
		return DisciplineMath
	case strings.Contains(needle, "scien"), strings.Contains(needle, "biol"):
		return DisciplineScience
	case strings.Contains(needle, "hist"):
		return DisciplineHistory
	case strings.Contains(needle, "geo"):
		return DisciplineGeography
	case strings.Contains(needle, "art"), strings.Contains(needle, "music"):
		return DisciplineArts
	case strings.Contains(needle, "phys"), strings.Contains(needle, "sport"),
		strings.Contains(needle, "motor"):
		return DisciplinePhysicalEd
	case strings.Contains(needle, "interdis"), strings.Contains(needle, "cross"),
		strings.Contains(needle, "multi"):
		return DisciplineCrossSubject
	}
	return DisciplineOther
}

// Activity rating values.
type Rating string

const (
	RatingNone    Rating = ""
	RatingLike    Rating = "like"
	RatingDislike Rating = "dislike"
)

// Goal-horizon and design tags attached to suggested activities.
const (
	TagShortTerm       = "short-term"
	TagMediumTerm      = "medium-term"
	TagLongTerm        = "long-term"
	TagUniversalDesign = "universal-design"
)

// Activity is a reusable teaching-activity record, stored independently of
// any single plan.
type Activity struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Discipline  Discipline `json:"discipline"`
	Skills      []string   `json:"skills"`
	Needs       []string   `json:"needs"`
	GoalTags    []string   `json:"goalTags"`
	IsFavorited bool       `json:"isFavorited"`
	Rating      Rating     `json:"rating,omitempty"`
	Comments    string     `json:"comments,omitempty"`
	// SourcePlanID points at the plan the suggestion originated from.
	// It is a back-reference only; deleting that plan does not delete
	// the activity.
	SourcePlanID *string   `json:"sourcePlanId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// HasTag reports whether the activity carries the given goal tag.
func (a *Activity) HasTag(tag string) bool {
	for _, t := range a.GoalTags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddTag appends a goal tag if not already present.
func (a *Activity) AddTag(tag string) {
	if !a.HasTag(tag) {
		a.GoalTags = append(a.GoalTags, tag)
	}
}

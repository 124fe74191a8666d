// Package schema defines the static form layout of an Individualized
// Educational Plan: ordered sections, field descriptors, required-field
// rules, and per-field AI capabilities. It is the single source consumed
// by the validator, the context assembler, the prompt builders, and the
// renderer.
package schema

// FieldKind distinguishes how a field is edited and rendered.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindTextarea FieldKind = "textarea"
	KindDate     FieldKind = "date"
)

// Capabilities declares which AI actions a field supports.
type Capabilities struct {
	// Generatable fields support the plain AI-generate action.
	Generatable bool
	// Critiquable fields support the rubric critique action (goals).
	Critiquable bool
	// Suggestible fields support the related-activity suggestion action.
	Suggestible bool
}

// Field describes one named input within the plan form.
type Field struct {
	ID           string
	Label        string
	Help         string
	Kind         FieldKind
	Capabilities Capabilities
}

// Section is an ordered group of fields under one heading.
type Section struct {
	Title  string
	Fields []Field
}

// Field ids referenced directly by orchestration logic.
const (
	FieldStudentName = "student-name"
	FieldDiagnosis   = "diagnosis"
	FieldGoalShort   = "goal-short"
	FieldGoalMedium  = "goal-medium"
	FieldGoalLong    = "goal-long"
	FieldActivities  = "activities"
	FieldUDL         = "udl-activities"
)

var (
	genText  = Capabilities{Generatable: true}
	goalCaps = Capabilities{Generatable: true, Critiquable: true, Suggestible: true}
	sugOnly  = Capabilities{Suggestible: true}
)

var sections = []Section{
	{
		Title: "1. Student Identification",
		Fields: []Field{
			{ID: FieldStudentName, Label: "Student", Kind: KindText},
			{ID: "birth-date", Label: "Date of Birth", Kind: KindDate},
			{ID: "school-year", Label: "School Year", Kind: KindText},
			{ID: "school", Label: "School", Kind: KindText},
			{ID: "plan-teachers", Label: "Plan Teachers", Kind: KindText},
			{ID: "prepared-date", Label: "Preparation Date", Kind: KindDate},
			{ID: "subject", Label: "Subject", Kind: KindText},
			{ID: "term-contents", Label: "Term Contents", Kind: KindTextarea,
				Help: "List the curriculum contents planned for the current term."},
			{ID: "restrictions", Label: "Strategies to Avoid (Restrictions)", Kind: KindTextarea,
				Help: "Strategies or stimuli known not to work for this student and that the plan must avoid."},
			{ID: FieldDiagnosis, Label: "Diagnosis and Specific Needs", Kind: KindTextarea,
				Help: "Describe the student's diagnosis (if any) and the specific educational needs arising from it, e.g. ADHD, dyslexia, ASD."},
			{ID: "family-context", Label: "Family and School Context", Kind: KindTextarea,
				Help: "Brief summary of the family context and the student's school history: family support, school changes, and other relevant factors."},
		},
	},
	{
		Title: "2. Initial Assessment",
		Fields: []Field{
			{ID: "academic-skills", Label: "Academic Skills", Kind: KindTextarea, Capabilities: genText,
				Help: "Strengths and difficulties in academic areas such as reading, writing and math. Use concrete examples."},
			{ID: "social-behavior", Label: "Social and Behavioral Aspects", Kind: KindTextarea, Capabilities: genText,
				Help: "How the student interacts with peers and teachers, classroom behavior, and communication skills."},
			{ID: "motor-autonomy", Label: "Motor Coordination and Autonomy", Kind: KindTextarea, Capabilities: genText,
				Help: "Fine and gross motor coordination and the student's autonomy in daily and school activities."},
		},
	},
	{
		Title: "3. Goals and Objectives",
		Fields: []Field{
			{ID: FieldGoalShort, Label: "Short Term (3 months)", Kind: KindTextarea, Capabilities: goalCaps,
				Help: "A specific, achievable objective for the next 3 months, e.g. 'read and interpret simple sentences with 80% accuracy'."},
			{ID: FieldGoalMedium, Label: "Medium Term (6 months)", Kind: KindTextarea, Capabilities: goalCaps,
				Help: "A goal for the next 6 months that advances on the short-term goal."},
			{ID: FieldGoalLong, Label: "Long Term (1 year)", Kind: KindTextarea, Capabilities: goalCaps,
				Help: "The main objective for the end of the school year. A broad, meaningful goal."},
		},
	},
	{
		Title: "4. Resources and Strategies",
		Fields: []Field{
			{ID: "adaptations", Label: "Curricular Adaptations", Kind: KindTextarea, Capabilities: genText,
				Help: "Adaptations to materials, assessments and environment, e.g. enlarged-font tests, extra time."},
			{ID: "methodologies", Label: "Methodologies and Strategies", Kind: KindTextarea, Capabilities: genText,
				Help: "Pedagogical approaches to be used, e.g. visual supports, project-based learning, gamification."},
			{ID: "partnerships", Label: "Partnerships and Follow-up", Kind: KindTextarea, Capabilities: genText,
				Help: "How family, therapists and other professionals will collaborate."},
		},
	},
	{
		Title: "5. Implementation Responsibilities",
		Fields: []Field{
			{ID: "lead-teacher", Label: "Lead Teacher", Kind: KindTextarea, Capabilities: genText,
				Help: "Responsibilities of the lead teacher in implementing and monitoring the plan."},
			{ID: "coordinator", Label: "Pedagogical Coordinator", Kind: KindTextarea, Capabilities: genText,
				Help: "The coordinator's role: supervision, teacher support, liaison with the family."},
			{ID: "family", Label: "Family", Kind: KindTextarea, Capabilities: genText,
				Help: "How the family takes part: supporting activities at home and keeping in touch with the school."},
			{ID: "support-staff", Label: "Support Professionals", Kind: KindTextarea, Capabilities: genText,
				Help: "Other professionals (psychologists, speech therapists, ...) and their roles in the plan."},
		},
	},
	{
		Title: "6. Plan Review",
		Fields: []Field{
			{ID: "review-date", Label: "Last Review Date", Kind: KindDate},
			{ID: "review-criteria", Label: "Review Frequency and Criteria", Kind: KindTextarea, Capabilities: genText,
				Help: "How often the plan is reviewed and which criteria measure progress and the need for adjustments."},
			{ID: "review-adjustments", Label: "Adjustments Made", Kind: KindTextarea, Capabilities: genText,
				Help: "Main changes since the last review, e.g. a goal was refocused or new visual strategies were added."},
		},
	},
	{
		Title: "7. Adapted Activities",
		Fields: []Field{
			{ID: FieldActivities, Label: "Suggested Activities", Kind: KindTextarea, Capabilities: sugOnly,
				Help: "Ask the assistant for activity suggestions based on the goals, or describe your own adapted activities."},
		},
	},
	{
		Title: "8. Universal Design for Learning",
		Fields: []Field{
			{ID: FieldUDL, Label: "UDL-based Activities", Kind: KindTextarea, Capabilities: sugOnly,
				Help: "How Universal Design for Learning principles will be applied to remove barriers and promote inclusion."},
		},
	},
}

// requiredSections is the count of leading sections whose fields are all
// mandatory before saving or any generation action.
const requiredSections = 2

var (
	fieldsByID       map[string]Field
	orderedFields    []Field
	requiredFieldIDs []string
)

func init() {
	fieldsByID = make(map[string]Field)
	for si, sec := range sections {
		for _, f := range sec.Fields {
			fieldsByID[f.ID] = f
			orderedFields = append(orderedFields, f)
			if si < requiredSections {
				requiredFieldIDs = append(requiredFieldIDs, f.ID)
			}
		}
	}
}

// Sections returns the full ordered form layout.
func Sections() []Section {
	return sections
}

// OrderedFields returns every field in canonical section order.
func OrderedFields() []Field {
	return orderedFields
}

// FieldByID looks up a field descriptor. ok is false for unknown ids.
func FieldByID(id string) (Field, bool) {
	f, ok := fieldsByID[id]
	return f, ok
}

// Label returns the display label for a field id, or the id itself when
// unknown.
func Label(id string) string {
	if f, ok := fieldsByID[id]; ok {
		return f.Label
	}
	return id
}

// RequiredFieldIDs returns the ids of every mandatory field in canonical
// order (all fields of the first two sections).
func RequiredFieldIDs() []string {
	return requiredFieldIDs
}

// IsRequired reports whether a field must be filled before saving or
// invoking generation actions.
func IsRequired(id string) bool {
	for _, rid := range requiredFieldIDs {
		if rid == id {
			return true
		}
	}
	return false
}

// GoalFieldIDs returns the three goal-horizon field ids in order.
func GoalFieldIDs() []string {
	return []string{FieldGoalShort, FieldGoalMedium, FieldGoalLong}
}

// IsGoalField reports whether the field is one of the three goal fields.
func IsGoalField(id string) bool {
	return id == FieldGoalShort || id == FieldGoalMedium || id == FieldGoalLong
}

// GoalHorizonTag maps a field id to the activity tag its suggestions carry:
// the goal horizon for goal fields, the universal-design tag for the UDL
// field, empty otherwise.
func GoalHorizonTag(id string) string {
	switch id {
	case FieldGoalShort:
		return "short-term"
	case FieldGoalMedium:
		return "medium-term"
	case FieldGoalLong:
		return "long-term"
	case FieldUDL:
		return "universal-design"
	}
	return ""
}

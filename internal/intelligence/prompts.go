package intelligence

import (
	"fmt"
	"strings"
)

// fieldGeneratePrompt asks the model to draft the content of one field,
// grounded in the full assembled context.
func fieldGeneratePrompt(fieldLabel string, ctx Context) string {
	return fmt.Sprintf(`Act as a specialist in inclusive education. Your task is to fill in the field %q of an Individualized Educational Plan.

To keep the document cohesive, analyze the support documents (if any) and the already-filled plan fields carefully before writing your answer.

%s
%s

Now, based on ALL the context provided, write the content for the field: %q.
Your answer must be only the text for this field, with no introductions or headings.`,
		fieldLabel, ctx.RAG, ctx.Form, fieldLabel)
}

// refinePrompt asks the model to rework an existing draft under a user
// instruction while staying coherent with the rest of the plan.
func refinePrompt(fieldLabel, current, instruction string, ctx Context) string {
	return fmt.Sprintf(`Act as a specialist in education. The user is editing the field %q of an Individualized Educational Plan.

Current text:
---
%s
---

The user gave the following instruction to refine the text: %q.

Also consider the following support documents and the rest of the plan to keep the document coherent:
%s
%s

Refine the current text following the instruction and the context. Keep the original purpose but improve clarity and structure. Return only the improved text.`,
		fieldLabel, current, instruction, ctx.RAG, ctx.Form)
}

// critiquePrompt asks for a rubric review of one goal. The response must be
// a JSON object keyed by the five rubric criteria.
func critiquePrompt(goalText string) string {
	return fmt.Sprintf(`Analyze the following goal from an Individualized Educational Plan against the SMART criteria (Specific, Measurable, Achievable, Relevant, Time-bound). Provide a constructive critique and an improvement suggestion for each criterion.

Goal under analysis: %q

Your answer MUST be a valid JSON object with no additional text before or after it. Use exactly this structure:
{
  "isSpecific": { "critique": "...", "suggestion": "..." },
  "isMeasurable": { "critique": "...", "suggestion": "..." },
  "isAchievable": { "critique": "...", "suggestion": "..." },
  "isRelevant": { "critique": "...", "suggestion": "..." },
  "isTimeBound": { "critique": "...", "suggestion": "..." }
}`, goalText)
}

// suggestPrompt asks for 3-5 adapted teaching activities as a JSON array.
// subject anchors the request (a specific goal or the whole plan) and
// udl switches on Universal Design for Learning framing.
func suggestPrompt(subject, promptContext string, udl bool) string {
	intro := "Based"
	if udl {
		intro = "Based on the principles of Universal Design for Learning and"
	}
	return fmt.Sprintf(`%s %s, suggest 3 to 5 adapted educational activities.

Context:
%s

Your answer MUST be a valid JSON array of objects with no additional text before or after it. Use exactly this structure:
[
  {
    "title": "...",
    "description": "...",
    "discipline": "...",
    "skills": ["...", "..."],
    "needs": ["...", "..."],
    "goalTags": ["..."]
  }
]`, intro, subject, promptContext)
}

// fullPlanPrompt asks for the complete document in one pass.
func fullPlanPrompt(ctx Context) string {
	return fmt.Sprintf(`Act as a specialist in special education and psychopedagogy.
Based on the support documents and the form data, write a complete, cohesive and professional Individualized Educational Plan.
The final document must be well structured, with clear paragraphs and technical but understandable language.
Connect the sections logically: goals must reflect the diagnosis and assessment, and activities must align with the goals.
If some fields are unfilled, use your expertise to make reasonable inferences.
The tone must be formal and respectful.

%s
%s

Write the complete plan below.`, ctx.RAG, ctx.Form)
}

// analysisPrompt asks a multidisciplinary review of the whole plan as a
// structured object.
func analysisPrompt(ctx Context) string {
	var b strings.Builder
	b.WriteString(`Act as a multidisciplinary team of education specialists composed of a pedagogue and a psychopedagogue.
Your task is a complete, in-depth review of the following Individualized Educational Plan.

Plan context:
---
`)
	b.WriteString(ctx.Form)
	b.WriteString(`---

Support documents (if any):
---
`)
	b.WriteString(ctx.RAG)
	b.WriteString(`---

Review the plan and return a valid JSON object with no additional text or formatting before or after it. The structure must be:

{
  "strengths": ["strong points of the plan, such as goal clarity or strategy fit"],
  "weaknesses": ["weak points or areas needing more detail, such as vague goals"],
  "goalAnalysis": "detailed review of the short/medium/long-term goals: are they SMART and aligned with the student profile?",
  "pedagogicalAnalysis": "from a pedagogical standpoint, review the strategies, curricular adaptations and methodologies",
  "psychopedagogicalAnalysis": "from a psychopedagogical standpoint, review the coherence between diagnosis, initial assessment and interventions",
  "suggestions": ["practical, actionable suggestions addressing the identified weak points"]
}

Make sure the review is constructive, professional, and grounded in evidence from the plan itself.`)
	return b.String()
}

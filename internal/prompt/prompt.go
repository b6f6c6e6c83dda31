package prompt

import (
	"fmt"
	"strings"
)

// Category selects which instruction template and output-shape contract
// applies to a rewrite request. The set is closed: anything outside it is
// handled by the identity fallback in Build.
type Category string

// Recognized content categories.
const (
	CategoryObjective          Category = "objective"
	CategoryExperience         Category = "experience"
	CategoryProjectDescription Category = "project_description"
	CategoryProjectHighlights  Category = "project_highlights"
	CategoryCoverLetter        Category = "cover_letter"
	CategoryMockInterview      Category = "mock_interview"
)

// Recognized reports whether c selects one of the known instruction
// templates. Unrecognized categories pass the source text through unchanged,
// which lets callers skip the provider call entirely.
func (c Category) Recognized() bool {
	switch c {
	case CategoryObjective, CategoryExperience, CategoryProjectDescription,
		CategoryProjectHighlights, CategoryCoverLetter, CategoryMockInterview:
		return true
	}
	return false
}

// Request carries everything the template engine needs to assemble an
// instruction string.
type Request struct {
	Category        Category
	SourceText      string
	Keywords        []string
	ExperienceLevel string
}

// Build maps a request to a finished instruction string. It is a total
// function: it never fails, and identical inputs always produce byte-identical
// output. An unrecognized category returns the source text unmodified.
func Build(req Request) string {
	keywords := keywordClause(req.Keywords)
	experience := experienceClause(req.ExperienceLevel)

	switch req.Category {
	case CategoryObjective:
		return fmt.Sprintf(objectiveTemplate, contextLines(experience, keywords), req.SourceText)
	case CategoryExperience:
		return fmt.Sprintf(experienceTemplate, contextLines(experience, keywords), req.SourceText)
	case CategoryProjectDescription:
		return fmt.Sprintf(projectDescriptionTemplate, contextLines(keywords), req.SourceText)
	case CategoryProjectHighlights:
		return fmt.Sprintf(projectHighlightsTemplate, contextLines(keywords), req.SourceText)
	case CategoryCoverLetter:
		return fmt.Sprintf(coverLetterTemplate, contextLines(experience, keywords), req.SourceText)
	case CategoryMockInterview:
		return fmt.Sprintf(mockInterviewTemplate, contextLines(experience, keywords), req.SourceText)
	}

	return req.SourceText
}

// keywordClause renders the keyword-incorporation instruction, preserving the
// caller's keyword order. An empty list produces no clause at all, not an
// empty one.
func keywordClause(keywords []string) string {
	if len(keywords) == 0 {
		return ""
	}
	return "Incorporate these keywords seamlessly: " + strings.Join(keywords, ", ") + "."
}

// experienceClause renders the experience-level instruction. Same
// presence-or-absence rule as keywordClause.
func experienceClause(level string) string {
	if level == "" {
		return ""
	}
	return "The candidate's experience level is " + level + "."
}

// contextLines joins the non-empty clauses, each on its own line prefixed
// with a newline so the template slot disappears entirely when no clause
// applies.
func contextLines(clauses ...string) string {
	var b strings.Builder
	for _, clause := range clauses {
		if clause == "" {
			continue
		}
		b.WriteString("\n")
		b.WriteString(clause)
	}
	return b.String()
}

const objectiveTemplate = `Act as an expert career coach and resume writer.
Rewrite the following professional objective to be concise, powerful, and ATS-friendly.
The rewritten objective should be a single paragraph, no more than 3-4 sentences.
It must be tailored for a tech industry role.%s

Original Objective: "%s"

Return only the rewritten objective text, without any introductory phrases.`

const experienceTemplate = `Act as an expert technical resume writer.

IMPORTANT FORMATTING REQUIREMENTS:
- Create exactly 3-5 concise bullet points
- Each bullet point must be 1-2 sentences maximum (under 150 characters)
- Start each bullet point with a strong action verb
- Use the STAR method (Situation, Task, Action, Result)
- Include quantified achievements with specific metrics when possible
- Format as bullet points using the • symbol
- Each bullet point should be on a separate line%s

Original Experience: "%s"

Return ONLY the bullet points in this exact format:
• [First bullet point with action verb and quantified result]
• [Second bullet point with action verb and quantified result]
• [Third bullet point with action verb and quantified result]

Do not include any introductory text or explanations.`

const projectDescriptionTemplate = `Act as an expert technical resume writer and project portfolio specialist.

Create a professional, concise project description (2-3 sentences maximum, under 200 characters total).
Focus on the technical implementation, problem solved, and impact.

REQUIREMENTS:
- Start with what the project does/solves
- Mention key technologies used
- Include a quantifiable impact or technical achievement if possible
- Make it ATS-friendly and recruiter-readable
- Keep it concise and impactful%s

Project Context: "%s"

Return only the project description, without any introductory phrases.`

const projectHighlightsTemplate = `Act as an expert technical resume writer.

Create exactly 3-4 professional project highlight bullet points based on the project context.

FORMATTING REQUIREMENTS:
- Each bullet point must be 1-2 sentences maximum (under 130 characters)
- Start with strong action verbs (Built, Implemented, Developed, Architected, etc.)
- Include specific technical details and quantified results when possible
- Focus on technical challenges solved and achievements
- Format as bullet points using the • symbol
- Each bullet point should be on a separate line%s

Project Context: "%s"

Return ONLY the bullet points in this exact format:
• [First highlight with action verb and technical detail]
• [Second highlight with action verb and quantified result]
• [Third highlight with action verb and technical achievement]

Do not include any introductory text or explanations.`

const coverLetterTemplate = `Act as an expert career coach and professional cover letter writer.

Write a complete, compelling cover letter based on the candidate context below.

REQUIREMENTS:
- Structure the letter as 3-5 short paragraphs
- Open with genuine interest in the role and company
- Match the tone of the letter to the candidate's experience level
- Weave the candidate's background into specific, credible claims
- Close with a clear call to action and a proper sign-off%s

Candidate Context: "%s"

Return only the cover letter text, without any introductory phrases.`

const mockInterviewTemplate = `Act as an experienced technical interviewer preparing questions for a candidate.

Generate exactly 15 interview questions based on the candidate context below.

FORMATTING REQUIREMENTS:
- Each question must be under 160 characters
- Mix the difficulty: include easy, intermediate, and hard questions
- Cover both technical depth and behavioural fit
- Format as bullet points using the • symbol
- Each question should be on a separate line%s

Candidate Context: "%s"

Return ONLY the 15 questions, without any introductory text or explanations.`

package pipeline

import (
	"fmt"
	"strings"

	"github.com/ritam/preptrail/internal/store"
)

const systemPrompt = `You are a career mentor who designs internship-preparation plans for university students.

Rules:
- Produce a week-by-week plan tailored to the student's target role, experience level, and interests.
- Week numbers start at 1 and ascend without gaps.
- Each week has one clear theme and focus area; weeks build on each other, fundamentals first.
- Tasks must be concrete and individually checkable ("Solve 15 array problems on LeetCode", not "practice coding").
- Deliverables are tangible artifacts: a polished resume, a deployed project, a set of solved problems.
- Resources are real, well-known courses, books, or sites relevant to the task. Plain names, no URLs.
- Estimated hours should be realistic for a student balancing coursework (6-15 hours per week).
- If a resume is provided, use it: reinforce existing strengths and fill visible gaps.
- Keep all text plain ASCII.`

// buildUserMessage constructs the generation prompt from the student
// profile and optional resume text.
func buildUserMessage(profile store.Profile, resumeText string, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Target role: %s\n", profile.TargetRole)
	fmt.Fprintf(&b, "Experience level: %s\n", profile.ExperienceLevel)
	fmt.Fprintf(&b, "Interests: %s\n", joinOrNone(profile.Interests))
	fmt.Fprintf(&b, "Plan length: %d weeks\n", cfg.WeekCount)

	if resumeText != "" {
		b.WriteString("\nResume:\n")
		b.WriteString(resumeText)
		b.WriteString("\n")
	}

	b.WriteString("\nCreate the full plan now.")

	return b.String()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None given"
	}
	return strings.Join(items, ", ")
}

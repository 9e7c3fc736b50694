package topics

import (
	"fmt"
	"strings"
)

const topicSystemPrompt = `You are a mentor helping a student prepare for internship applications. The student tapped a topic in their weekly plan and wants a focused explanation.`

func buildTopicUserMessage(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	if req.Context != "" {
		fmt.Fprintf(&b, "Appears in the plan as part of: %s\n", req.Context)
	}
	if req.UserLevel != "" {
		fmt.Fprintf(&b, "Student level: %s\n", req.UserLevel)
	}

	b.WriteString(`
Instructions:
1. Explain the topic in 4-8 sentences. Assume the stated student level; define jargon on first use.
2. Name 2-4 well-known resources for going deeper.
3. Suggest 2-5 small concrete exercises the student can do this week.
4. Use plain ASCII text.`)

	return b.String()
}

package relay

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the single user message sent to the generation API.
func BuildPrompt(topic, difficulty string) string {
	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("Generate %d multiple-choice questions on the topic %q with difficulty %q.\n",
		QuestionCount, topic, difficulty))
	builder.WriteString("Return ONLY a JSON array (no markdown, no code blocks, no explanations). ")
	builder.WriteString("Each item must be a JSON object with the following keys:\n")
	builder.WriteString("{\n")
	builder.WriteString("\"question\": \"...\",\n")
	builder.WriteString("\"options\": [\"...\", \"...\", \"...\", \"...\"],\n")
	builder.WriteString("\"answer\": \"...\"\n")
	builder.WriteString("}\n")
	builder.WriteString("The value of \"answer\" must be exactly one of the strings in \"options\".\n")
	return builder.String()
}

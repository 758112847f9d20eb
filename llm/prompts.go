package llm

import (
	"embed"
	"strings"
)

//go:embed prompts/*.txt
var promptFS embed.FS

const genericPrompt = `You are an academic writer preparing a Geographical Indication research paper.
Write the "{section}" section of the paper in formal academic prose, based strictly on the data below.
Do not invent facts that are not present in the data. Write 2-4 paragraphs without headings.

Data:
{data}`

// SectionPrompt returns the prompt template for a section. Templates are
// embedded; an unknown section gets the generic template.
func SectionPrompt(section string) string {
	data, err := promptFS.ReadFile("prompts/" + section + ".txt")
	if err != nil {
		return strings.ReplaceAll(genericPrompt, "{section}", section)
	}
	return string(data)
}

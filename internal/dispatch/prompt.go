package dispatch

import (
	"fmt"

	"github.com/agentbench/agentbench-api/internal/models"
)

// promptTemplates maps each task kind to the instructional template sent
// to every provider. The task input is embedded verbatim.
var promptTemplates = map[models.TaskKind]string{
	models.TaskIdeaGeneration:   "Generate 5 innovative research ideas for: %s",
	models.TaskProposalWriting:  "Write a research proposal for: %s",
	models.TaskExperimentDesign: "Design an experiment to test: %s",
	models.TaskPaperWriting:     "Write an introduction section for a paper on: %s",
	models.TaskLiteratureReview: "Provide a literature review on: %s",
	models.TaskCodeGeneration:   "Write code to implement: %s",
	models.TaskProblemSolving:   "Solve this problem: %s",
	models.TaskSummarization:    "Summarize the following: %s",
}

// BuildPrompt renders the prompt for a task kind. Unknown kinds fall back
// to the raw input so a dispatch never fails on prompt construction.
func BuildPrompt(kind models.TaskKind, input string) string {
	tmpl, ok := promptTemplates[kind]
	if !ok {
		return input
	}
	return fmt.Sprintf(tmpl, input)
}

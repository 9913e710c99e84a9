package models

// TaskKind identifies one of the fixed categories of generation request.
// Each kind carries its own prompt template, expected length, and keyword
// set (see internal/dispatch and internal/analyzer).
type TaskKind string

const (
	TaskIdeaGeneration   TaskKind = "idea_generation"
	TaskProposalWriting  TaskKind = "proposal_writing"
	TaskExperimentDesign TaskKind = "experiment_design"
	TaskPaperWriting     TaskKind = "paper_writing"
	TaskLiteratureReview TaskKind = "literature_review"
	TaskCodeGeneration   TaskKind = "code_generation"
	TaskProblemSolving   TaskKind = "problem_solving"
	TaskSummarization    TaskKind = "summarization"
)

// AllTaskKinds returns the task kinds in their canonical order.
func AllTaskKinds() []TaskKind {
	return []TaskKind{
		TaskIdeaGeneration,
		TaskProposalWriting,
		TaskExperimentDesign,
		TaskPaperWriting,
		TaskLiteratureReview,
		TaskCodeGeneration,
		TaskProblemSolving,
		TaskSummarization,
	}
}

// Valid reports whether k is one of the eight known task kinds.
func (k TaskKind) Valid() bool {
	switch k {
	case TaskIdeaGeneration, TaskProposalWriting, TaskExperimentDesign,
		TaskPaperWriting, TaskLiteratureReview, TaskCodeGeneration,
		TaskProblemSolving, TaskSummarization:
		return true
	}
	return false
}

// TaskKindInfo describes a task kind for the catalog endpoint.
type TaskKindInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// TaskCatalog lists the task kinds with display metadata.
var TaskCatalog = []TaskKindInfo{
	{ID: string(TaskIdeaGeneration), Name: "Idea Generation", Description: "Generate research ideas for a topic", Category: "ideation"},
	{ID: string(TaskProposalWriting), Name: "Proposal Writing", Description: "Write research proposals", Category: "writing"},
	{ID: string(TaskExperimentDesign), Name: "Experiment Design", Description: "Design experiments to test a hypothesis", Category: "experimentation"},
	{ID: string(TaskPaperWriting), Name: "Paper Writing", Description: "Write research paper sections", Category: "writing"},
	{ID: string(TaskLiteratureReview), Name: "Literature Review", Description: "Conduct literature reviews", Category: "research"},
	{ID: string(TaskCodeGeneration), Name: "Code Generation", Description: "Implement code for a described task", Category: "engineering"},
	{ID: string(TaskProblemSolving), Name: "Problem Solving", Description: "Work through a stated problem", Category: "reasoning"},
	{ID: string(TaskSummarization), Name: "Summarization", Description: "Summarize provided material", Category: "writing"},
}

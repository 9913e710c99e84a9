package analyzer

import "github.com/agentbench/agentbench-api/internal/models"

// Scoring tables. All of these are fixed configuration data; nothing in
// the analyzer mutates them, which keeps Analyze a pure function.

// aspectOrder fixes the iteration order for score maps so reports are
// reproducible across calls.
var aspectOrder = []string{
	"relevance",
	"completeness",
	"clarity",
	"structure",
	"depth",
	"accuracy",
	"creativity",
	"coherence",
}

// aspectWeights sum to exactly 1.0, so the overall score is a convex
// combination of sub-scores and stays in [0, 100].
var aspectWeights = map[string]float64{
	"relevance":    0.20,
	"completeness": 0.20,
	"clarity":      0.15,
	"structure":    0.10,
	"depth":        0.15,
	"accuracy":     0.10,
	"creativity":   0.05,
	"coherence":    0.05,
}

// relevanceKeywords holds the five indicator words checked per task kind.
var relevanceKeywords = map[models.TaskKind][]string{
	models.TaskIdeaGeneration:   {"idea", "concept", "innovation", "approach", "solution"},
	models.TaskProposalWriting:  {"objective", "methodology", "timeline", "budget", "outcome"},
	models.TaskExperimentDesign: {"hypothesis", "method", "control", "variable", "measurement"},
	models.TaskPaperWriting:     {"abstract", "introduction", "conclusion", "reference", "analysis"},
	models.TaskLiteratureReview: {"review", "study", "research", "finding", "paper"},
	models.TaskCodeGeneration:   {"function", "class", "import", "return", "def"},
	models.TaskProblemSolving:   {"solution", "step", "answer", "result", "approach"},
	models.TaskSummarization:    {"summary", "main", "key", "point", "conclusion"},
}

// minExpectedWords is the word count at which completeness saturates.
var minExpectedWords = map[models.TaskKind]int{
	models.TaskIdeaGeneration:   200,
	models.TaskProposalWriting:  500,
	models.TaskExperimentDesign: 300,
	models.TaskPaperWriting:     400,
	models.TaskLiteratureReview: 500,
	models.TaskCodeGeneration:   50,
	models.TaskProblemSolving:   100,
	models.TaskSummarization:    150,
}

const defaultMinExpectedWords = 200

// detailIndicators are discourse connectives signalling elaboration.
var detailIndicators = []string{
	"for example", "such as", "specifically", "in particular",
	"furthermore", "additionally", "moreover", "therefore",
	"because", "due to", "as a result", "consequently",
}

// technicalTerms is a coarse technical-register vocabulary.
var technicalTerms = []string{
	"algorithm", "methodology", "framework", "architecture",
	"implementation", "optimization", "evaluation", "analysis",
	"hypothesis", "validation", "correlation", "distribution",
}

// hedgingPhrases indicate the model declined or is uncertain.
var hedgingPhrases = []string{
	"i don't know", "i'm not sure", "i cannot", "unable to",
	"no information", "cannot provide", "don't have",
}

// creativeWords feed the creativity score for ideation-style tasks.
var creativeWords = []string{
	"innovative", "novel", "unique", "creative", "original",
	"breakthrough", "revolutionary", "pioneering", "cutting-edge",
	"unprecedented", "groundbreaking", "ingenious",
}

// transitionPhrases feed the coherence score.
var transitionPhrases = []string{
	"first", "second", "third", "finally", "however",
	"therefore", "thus", "moreover", "furthermore",
	"in addition", "consequently", "as a result",
	"on the other hand", "in contrast", "similarly",
}

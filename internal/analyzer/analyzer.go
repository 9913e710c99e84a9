// Package analyzer scores generated text on eight lexical dimensions and
// combines them into a weighted, explainable quality report. Analyze is a
// pure function of its inputs: no I/O, no shared state, safe for any
// number of concurrent callers.
package analyzer

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/agentbench/agentbench-api/internal/models"
)

var (
	sentenceRe = regexp.MustCompile(`[.!?]+`)
	listItemRe = regexp.MustCompile(`^\s*[\d\-\*•]`)
)

// Analyze produces a quality report for one response. Degenerate input
// (empty text) still yields a well-formed report using floor values; the
// function never fails.
func Analyze(text string, kind models.TaskKind, elapsed time.Duration) *Report {
	lower := strings.ToLower(text)
	sentences := splitSentences(text)
	paragraphs := splitParagraphs(text)
	words := strings.Fields(text)

	scores := map[string]float64{
		"relevance":    scoreRelevance(lower, kind),
		"completeness": scoreCompleteness(len(words), kind),
		"clarity":      scoreClarity(sentences),
		"structure":    scoreStructure(text, len(paragraphs)),
		"depth":        scoreDepth(lower),
		"accuracy":     scoreAccuracy(text, lower),
		"creativity":   scoreCreativity(lower, kind),
		"coherence":    scoreCoherence(lower, len(paragraphs)),
	}

	overall := 0.0
	for _, aspect := range aspectOrder {
		overall += scores[aspect] * aspectWeights[aspect]
	}
	overall = round2(overall * 100)

	avgSentenceLen := float64(len(words)) / math.Max(1, float64(len(sentences)))

	report := &Report{
		OverallScore: overall,
		Grade:        GradeFor(overall),
		Metrics: Metrics{
			ResponseLength:    len(text),
			WordCount:         len(words),
			SentenceCount:     len(sentences),
			ParagraphCount:    len(paragraphs),
			ExecutionTime:     round2(elapsed.Seconds()),
			AvgSentenceLength: round2(avgSentenceLen),
		},
		Strengths:       []string{},
		Weaknesses:      []string{},
		Recommendations: recommendations(scores, text, kind),
		DetailedScores:  make(map[string]float64, len(aspectOrder)),
	}

	for _, aspect := range aspectOrder {
		score := scores[aspect]
		if score >= 0.8 {
			report.Strengths = append(report.Strengths, "Excellent "+aspect)
		} else if score < 0.5 {
			report.Weaknesses = append(report.Weaknesses, "Poor "+aspect)
		}
		report.DetailedScores[aspect] = round2(score * 100)
	}

	return report
}

// GradeFor maps a 0-100 score to a letter grade.
func GradeFor(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// scoreRelevance is the fraction of the task's keyword set found in the
// text. Kinds without a keyword set get a neutral 0.7.
func scoreRelevance(lower string, kind models.TaskKind) float64 {
	keywords, ok := relevanceKeywords[kind]
	if !ok || len(keywords) == 0 {
		return 0.7
	}
	found := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			found++
		}
	}
	return math.Min(1.0, float64(found)/float64(len(keywords)))
}

// scoreCompleteness is word count over the task's minimum expectation,
// capped at 1.0.
func scoreCompleteness(wordCount int, kind models.TaskKind) float64 {
	expected, ok := minExpectedWords[kind]
	if !ok {
		expected = defaultMinExpectedWords
	}
	if wordCount >= expected {
		return 1.0
	}
	return float64(wordCount) / float64(expected)
}

// scoreClarity buckets on average words per sentence; 15-20 reads best.
func scoreClarity(sentences []string) float64 {
	if len(sentences) == 0 {
		return 0.5
	}
	total := 0
	for _, s := range sentences {
		total += len(strings.Fields(s))
	}
	avg := float64(total) / float64(len(sentences))

	switch {
	case avg >= 15 && avg <= 20:
		return 1.0
	case avg >= 10 && avg <= 25:
		return 0.8
	case avg < 10:
		return 0.6
	default:
		return 0.5
	}
}

// scoreStructure rewards paragraphs, heading lines, list items, and
// emphasis markup additively.
func scoreStructure(text string, paragraphCount int) float64 {
	score := 0.0
	if paragraphCount > 1 {
		score += 0.3
	}

	hasHeading := false
	hasList := false
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "#") {
			hasHeading = true
		}
		if listItemRe.MatchString(line) {
			hasList = true
		}
	}
	if hasHeading {
		score += 0.3
	}
	if hasList {
		score += 0.2
	}
	if strings.Contains(text, "**") || strings.Contains(text, "__") || strings.Contains(text, "*") {
		score += 0.2
	}
	return math.Min(1.0, score)
}

// scoreDepth counts discourse connectives and technical-register terms.
func scoreDepth(lower string) float64 {
	count := countPresent(lower, detailIndicators) + countPresent(lower, technicalTerms)
	return math.Min(1.0, float64(count)/10)
}

// scoreAccuracy penalizes heavy line repetition first, then hedging.
func scoreAccuracy(text, lower string) float64 {
	lines := strings.Split(text, "\n")
	unique := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		unique[line] = struct{}{}
	}
	if float64(len(unique)) < float64(len(lines))*0.5 {
		return 0.3
	}
	for _, phrase := range hedgingPhrases {
		if strings.Contains(lower, phrase) {
			return 0.5
		}
	}
	return 0.8
}

// scoreCreativity blends creative vocabulary with unique-word ratio for
// ideation-style tasks; other kinds get a neutral 0.7.
func scoreCreativity(lower string, kind models.TaskKind) float64 {
	if kind != models.TaskIdeaGeneration && kind != models.TaskProblemSolving {
		return 0.7
	}
	vocab := math.Min(1.0, float64(countPresent(lower, creativeWords))/5)

	words := strings.Fields(lower)
	diversity := 0.0
	if len(words) > 0 {
		unique := make(map[string]struct{}, len(words))
		for _, w := range words {
			unique[w] = struct{}{}
		}
		diversity = float64(len(unique)) / float64(len(words))
	}
	return math.Min(1.0, vocab*0.5+diversity*0.5)
}

// scoreCoherence rewards transition phrases across multiple paragraphs.
func scoreCoherence(lower string, paragraphCount int) float64 {
	if paragraphCount <= 1 {
		return 0.6
	}
	count := countPresent(lower, transitionPhrases)
	return math.Min(1.0, 0.5+float64(count)/8)
}

// recommendations applies the fixed advice table. Its thresholds are
// looser than the strength/weakness cutoffs on purpose: a dimension can
// be unremarkable yet still worth advice.
func recommendations(scores map[string]float64, text string, kind models.TaskKind) []string {
	recs := []string{}
	if scores["relevance"] < 0.6 {
		recs = append(recs, "Improve relevance by focusing more directly on the task requirements")
	}
	if scores["completeness"] < 0.7 {
		recs = append(recs, "Provide more comprehensive and detailed responses")
	}
	if scores["clarity"] < 0.7 {
		recs = append(recs, "Enhance clarity by using simpler sentence structures")
	}
	if scores["structure"] < 0.6 {
		recs = append(recs, "Improve organization with clear sections and formatting")
	}
	if scores["depth"] < 0.6 {
		recs = append(recs, "Add more depth with examples and detailed explanations")
	}
	if scores["coherence"] < 0.6 {
		recs = append(recs, "Improve logical flow with better transitions between ideas")
	}
	if kind == models.TaskIdeaGeneration && scores["creativity"] < 0.6 {
		recs = append(recs, "Enhance creativity with more innovative and unique ideas")
	}
	if kind == models.TaskCodeGeneration && !strings.Contains(text, "```") {
		recs = append(recs, "Use proper code formatting with syntax highlighting")
	}
	return recs
}

func countPresent(lower string, phrases []string) int {
	count := 0
	for _, phrase := range phrases {
		if strings.Contains(lower, phrase) {
			count++
		}
	}
	return count
}

func splitSentences(text string) []string {
	parts := sentenceRe.Split(text, -1)
	sentences := parts[:0]
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			sentences = append(sentences, part)
		}
	}
	return sentences
}

func splitParagraphs(text string) []string {
	parts := strings.Split(text, "\n\n")
	paragraphs := parts[:0]
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			paragraphs = append(paragraphs, part)
		}
	}
	return paragraphs
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Package platform aggregates test results in memory: per-agent score
// profiles, head-to-head comparison, and platform-wide statistics.
package platform

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/agentbench/agentbench-api/internal/analyzer"
	"github.com/agentbench/agentbench-api/internal/models"
)

// TestResult is one completed (or failed) agent test run.
type TestResult struct {
	TestID       string              `json:"test_id"`
	Timestamp    time.Time           `json:"timestamp"`
	AgentName    string              `json:"agent_name"`
	ProviderKind models.ProviderKind `json:"provider_kind"`
	TaskKind     models.TaskKind     `json:"task_kind"`
	TestInput    string              `json:"test_input"`
	Response     string              `json:"agent_response,omitempty"`
	Elapsed      float64             `json:"execution_time"`
	Analysis     *analyzer.Report    `json:"analysis,omitempty"`
	Success      bool                `json:"success"`
	Error        string              `json:"error,omitempty"`
}

// TaskStats summarizes an agent's runs for one task kind.
type TaskStats struct {
	Tests   int     `json:"tests"`
	Average float64 `json:"average"`
}

// AgentProfile is the aggregated view of one agent across its runs.
type AgentProfile struct {
	AgentName       string               `json:"agent_name"`
	TotalTests      int                  `json:"total_tests"`
	AverageScore    float64              `json:"average_score"`
	Grade           string               `json:"grade"`
	TaskPerformance map[string]TaskStats `json:"task_performance"`
}

// ComparisonEntry ranks one agent in the head-to-head comparison.
type ComparisonEntry struct {
	AgentName    string  `json:"agent_name"`
	TotalTests   int     `json:"total_tests"`
	AverageScore float64 `json:"average_score"`
	BestScore    float64 `json:"best_score"`
	WorstScore   float64 `json:"worst_score"`
	Consistency  float64 `json:"consistency"`
}

// Stats is the platform-wide counters block.
type Stats struct {
	TotalTests       int            `json:"total_tests"`
	SuccessfulTests  int            `json:"successful_tests"`
	FailedTests      int            `json:"failed_tests"`
	SuccessRate      float64        `json:"success_rate"`
	AgentsTested     int            `json:"agents_tested"`
	TaskDistribution map[string]int `json:"task_distribution"`
}

type profile struct {
	totalTests int
	scores     []float64
	taskScores map[string][]float64
}

// Platform holds all results seen since startup. Safe for concurrent use.
type Platform struct {
	mu       sync.Mutex
	results  []TestResult
	profiles map[string]*profile
}

func New() *Platform {
	return &Platform{profiles: make(map[string]*profile)}
}

// Add records a result and folds it into the agent's profile. Failed
// runs count toward the test total but not the score history.
func (p *Platform) Add(result TestResult) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.results = append(p.results, result)

	prof, ok := p.profiles[result.AgentName]
	if !ok {
		prof = &profile{taskScores: make(map[string][]float64)}
		p.profiles[result.AgentName] = prof
	}
	prof.totalTests++
	if result.Success && result.Analysis != nil {
		score := result.Analysis.OverallScore
		prof.scores = append(prof.scores, score)
		task := string(result.TaskKind)
		prof.taskScores[task] = append(prof.taskScores[task], score)
	}
}

// Recent returns up to limit results, most recent first.
func (p *Platform) Recent(limit int) []TestResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	if limit <= 0 || limit > len(p.results) {
		limit = len(p.results)
	}
	out := make([]TestResult, 0, limit)
	for i := len(p.results) - 1; i >= len(p.results)-limit; i-- {
		out = append(out, p.results[i])
	}
	return out
}

// TotalResults returns the number of results recorded.
func (p *Platform) TotalResults() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.results)
}

// Profiles returns all agent profiles sorted by average score, best
// first.
func (p *Platform) Profiles() []AgentProfile {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]AgentProfile, 0, len(p.profiles))
	for name, prof := range p.profiles {
		avg := mean(prof.scores)
		entry := AgentProfile{
			AgentName:       name,
			TotalTests:      prof.totalTests,
			AverageScore:    round2(avg),
			Grade:           analyzer.GradeFor(avg),
			TaskPerformance: make(map[string]TaskStats, len(prof.taskScores)),
		}
		for task, scores := range prof.taskScores {
			entry.TaskPerformance[task] = TaskStats{
				Tests:   len(scores),
				Average: round2(mean(scores)),
			}
		}
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AverageScore > out[j].AverageScore })
	return out
}

// Comparison ranks agents that have at least one scored run.
func (p *Platform) Comparison() []ComparisonEntry {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]ComparisonEntry, 0, len(p.profiles))
	for name, prof := range p.profiles {
		if len(prof.scores) == 0 {
			continue
		}
		best, worst := prof.scores[0], prof.scores[0]
		for _, s := range prof.scores[1:] {
			if s > best {
				best = s
			}
			if s < worst {
				worst = s
			}
		}
		out = append(out, ComparisonEntry{
			AgentName:    name,
			TotalTests:   prof.totalTests,
			AverageScore: round2(mean(prof.scores)),
			BestScore:    round2(best),
			WorstScore:   round2(worst),
			Consistency:  round2(100 - (best - worst)),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AverageScore > out[j].AverageScore })
	return out
}

// Stats returns the platform-wide counters.
func (p *Platform) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	stats := Stats{
		TotalTests:       len(p.results),
		AgentsTested:     len(p.profiles),
		TaskDistribution: make(map[string]int),
	}
	for _, r := range p.results {
		if r.Success {
			stats.SuccessfulTests++
		}
		stats.TaskDistribution[string(r.TaskKind)]++
	}
	stats.FailedTests = stats.TotalTests - stats.SuccessfulTests
	if stats.TotalTests > 0 {
		stats.SuccessRate = round2(float64(stats.SuccessfulTests) / float64(stats.TotalTests) * 100)
	}
	return stats
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

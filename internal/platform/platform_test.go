package platform

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentbench/agentbench-api/internal/analyzer"
	"github.com/agentbench/agentbench-api/internal/models"
)

func scoredResult(agent string, kind models.TaskKind, score float64) TestResult {
	return TestResult{
		TestID:       fmt.Sprintf("%s-%v", agent, score),
		Timestamp:    time.Now(),
		AgentName:    agent,
		ProviderKind: models.ProviderOpenAI,
		TaskKind:     kind,
		TestInput:    "input",
		Response:     "response",
		Success:      true,
		Analysis:     &analyzer.Report{OverallScore: score, Grade: analyzer.GradeFor(score)},
	}
}

func failedResult(agent string, kind models.TaskKind) TestResult {
	return TestResult{
		TestID:       agent + "-failed",
		Timestamp:    time.Now(),
		AgentName:    agent,
		ProviderKind: models.ProviderOpenAI,
		TaskKind:     kind,
		TestInput:    "input",
		Success:      false,
		Error:        "dispatch failed",
	}
}

func TestPlatform_RecentNewestFirst(t *testing.T) {
	p := New()
	p.Add(scoredResult("alpha", models.TaskSummarization, 70))
	p.Add(scoredResult("alpha", models.TaskSummarization, 80))
	p.Add(scoredResult("alpha", models.TaskSummarization, 90))

	recent := p.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, 90.0, recent[0].Analysis.OverallScore)
	assert.Equal(t, 80.0, recent[1].Analysis.OverallScore)

	// Zero or oversized limits return everything.
	assert.Len(t, p.Recent(0), 3)
	assert.Len(t, p.Recent(100), 3)
	assert.Equal(t, 3, p.TotalResults())
}

func TestPlatform_ProfilesAggregateAndSort(t *testing.T) {
	p := New()
	p.Add(scoredResult("strong", models.TaskSummarization, 90))
	p.Add(scoredResult("strong", models.TaskCodeGeneration, 80))
	p.Add(scoredResult("weak", models.TaskSummarization, 40))
	p.Add(failedResult("weak", models.TaskSummarization))

	profiles := p.Profiles()
	require.Len(t, profiles, 2)

	// Sorted best average first.
	assert.Equal(t, "strong", profiles[0].AgentName)
	assert.Equal(t, 85.0, profiles[0].AverageScore)
	assert.Equal(t, "B", profiles[0].Grade)
	assert.Equal(t, 2, profiles[0].TotalTests)

	taskPerf := profiles[0].TaskPerformance
	require.Contains(t, taskPerf, string(models.TaskSummarization))
	assert.Equal(t, 1, taskPerf[string(models.TaskSummarization)].Tests)
	assert.Equal(t, 90.0, taskPerf[string(models.TaskSummarization)].Average)

	// Failures count toward totals but not the score history.
	assert.Equal(t, "weak", profiles[1].AgentName)
	assert.Equal(t, 2, profiles[1].TotalTests)
	assert.Equal(t, 40.0, profiles[1].AverageScore)
	assert.Equal(t, "F", profiles[1].Grade)
}

func TestPlatform_Comparison(t *testing.T) {
	p := New()
	p.Add(scoredResult("steady", models.TaskSummarization, 75))
	p.Add(scoredResult("steady", models.TaskSummarization, 77))
	p.Add(scoredResult("erratic", models.TaskSummarization, 95))
	p.Add(scoredResult("erratic", models.TaskSummarization, 35))
	p.Add(failedResult("hopeless", models.TaskSummarization))

	comparison := p.Comparison()
	require.Len(t, comparison, 2, "agents with no scored runs are excluded")

	assert.Equal(t, "steady", comparison[0].AgentName)
	assert.Equal(t, 76.0, comparison[0].AverageScore)
	assert.Equal(t, 77.0, comparison[0].BestScore)
	assert.Equal(t, 75.0, comparison[0].WorstScore)
	assert.Equal(t, 98.0, comparison[0].Consistency)

	assert.Equal(t, "erratic", comparison[1].AgentName)
	assert.Equal(t, 65.0, comparison[1].AverageScore)
	assert.Equal(t, 40.0, comparison[1].Consistency)
}

func TestPlatform_Stats(t *testing.T) {
	p := New()
	assert.Equal(t, Stats{TaskDistribution: map[string]int{}}, p.Stats())

	p.Add(scoredResult("a", models.TaskSummarization, 80))
	p.Add(scoredResult("a", models.TaskCodeGeneration, 60))
	p.Add(scoredResult("b", models.TaskSummarization, 70))
	p.Add(failedResult("b", models.TaskSummarization))

	stats := p.Stats()
	assert.Equal(t, 4, stats.TotalTests)
	assert.Equal(t, 3, stats.SuccessfulTests)
	assert.Equal(t, 1, stats.FailedTests)
	assert.Equal(t, 75.0, stats.SuccessRate)
	assert.Equal(t, 2, stats.AgentsTested)
	assert.Equal(t, map[string]int{
		string(models.TaskSummarization):  3,
		string(models.TaskCodeGeneration): 1,
	}, stats.TaskDistribution)
}

func TestPlatform_ConcurrentAdds(t *testing.T) {
	p := New()
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				p.Add(scoredResult(fmt.Sprintf("agent-%d", n), models.TaskSummarization, 50))
			}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	assert.Equal(t, 400, p.TotalResults())
	assert.Len(t, p.Profiles(), 8)
}

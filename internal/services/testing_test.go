package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentbench/agentbench-api/internal/analyzer"
	"github.com/agentbench/agentbench-api/internal/dispatch"
	"github.com/agentbench/agentbench-api/internal/models"
	"github.com/agentbench/agentbench-api/internal/platform"
)

// stubGenerator returns a canned result or error and records the request
// it was called with.
type stubGenerator struct {
	result *dispatch.Result
	err    error
	calls  []*dispatch.Request
}

func (s *stubGenerator) Execute(_ context.Context, req *dispatch.Request) (*dispatch.Result, error) {
	s.calls = append(s.calls, req)
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func TestRun_SuccessfulDispatch(t *testing.T) {
	gen := &stubGenerator{result: &dispatch.Result{
		Text:    "The summary covers the main key point and conclusion.",
		Elapsed: 1200 * time.Millisecond,
	}}
	plat := platform.New()
	svc := NewTestService(gen, plat, nil, nil)

	result, err := svc.Run(context.Background(), &RunTestInput{
		AgentName: "test-agent",
		Provider:  models.ProviderOpenAI,
		TaskKind:  models.TaskSummarization,
		Input:     "a long article",
		RequestID: "req-1",
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.TestID)
	assert.True(t, result.Success)
	assert.Empty(t, result.Error)
	assert.Equal(t, "test-agent", result.AgentName)
	assert.Equal(t, models.ProviderOpenAI, result.ProviderKind)
	assert.Equal(t, gen.result.Text, result.Response)
	require.NotNil(t, result.Analysis)
	assert.Equal(t, 1.2, result.Elapsed)
	assert.Equal(t, analyzer.GradeFor(result.Analysis.OverallScore), result.Analysis.Grade)

	// The dispatch request carries the caller's fields through untouched.
	require.Len(t, gen.calls, 1)
	assert.Equal(t, models.ProviderOpenAI, gen.calls[0].Provider)
	assert.Equal(t, "a long article", gen.calls[0].Input)

	// The run is folded into the in-memory platform.
	assert.Equal(t, 1, plat.TotalResults())
	recent := plat.Recent(1)
	require.Len(t, recent, 1)
	assert.Equal(t, result.TestID, recent[0].TestID)
}

func TestRun_FailedDispatchIsRecorded(t *testing.T) {
	dispatchErr := &dispatch.ProviderError{
		Provider: models.ProviderAnthropic,
		Status:   401,
		Body:     "unauthorized",
	}
	gen := &stubGenerator{err: dispatchErr}
	plat := platform.New()
	svc := NewTestService(gen, plat, nil, nil)

	result, err := svc.Run(context.Background(), &RunTestInput{
		AgentName: "broken-agent",
		Provider:  models.ProviderAnthropic,
		TaskKind:  models.TaskCodeGeneration,
		Input:     "a parser",
	})
	require.Error(t, err)
	assert.ErrorAs(t, err, new(*dispatch.ProviderError))

	// The failed run is still returned and recorded.
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Nil(t, result.Analysis)
	assert.Equal(t, dispatchErr.Error(), result.Error)
	assert.Equal(t, 1, plat.TotalResults())

	stats := plat.Stats()
	assert.Equal(t, 1, stats.FailedTests)
	assert.Equal(t, 0, stats.SuccessfulTests)
}

func TestRun_UniqueTestIDs(t *testing.T) {
	gen := &stubGenerator{result: &dispatch.Result{Text: "ok.", Elapsed: time.Millisecond}}
	svc := NewTestService(gen, platform.New(), nil, nil)

	in := &RunTestInput{
		AgentName: "agent",
		Provider:  models.ProviderCustom,
		TaskKind:  models.TaskSummarization,
		Input:     "x",
	}
	first, err := svc.Run(context.Background(), in)
	require.NoError(t, err)
	second, err := svc.Run(context.Background(), in)
	require.NoError(t, err)
	assert.NotEqual(t, first.TestID, second.TestID)
}

func TestHistory_WithoutDatabase(t *testing.T) {
	svc := NewTestService(&stubGenerator{}, platform.New(), nil, nil)
	records, err := svc.History(10)
	require.NoError(t, err)
	assert.Nil(t, records)
}

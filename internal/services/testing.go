package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/agentbench/agentbench-api/internal/analyzer"
	"github.com/agentbench/agentbench-api/internal/dispatch"
	"github.com/agentbench/agentbench-api/internal/logger"
	"github.com/agentbench/agentbench-api/internal/metrics"
	"github.com/agentbench/agentbench-api/internal/models"
	"github.com/agentbench/agentbench-api/internal/observability"
	"github.com/agentbench/agentbench-api/internal/platform"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Generator is the dispatch contract the service depends on. Satisfied
// by *dispatch.Dispatcher; tests substitute stubs.
type Generator interface {
	Execute(ctx context.Context, req *dispatch.Request) (*dispatch.Result, error)
}

// RunTestInput describes one agent test run.
type RunTestInput struct {
	AgentName string
	Provider  models.ProviderKind
	Endpoint  string
	APIKey    string
	TaskKind  models.TaskKind
	Input     string
	Params    map[string]any
	RequestID string
}

// TestService runs agent tests: dispatch the prompt, analyze the reply,
// fold the outcome into the in-memory platform, and persist when a
// database is configured.
type TestService struct {
	dispatcher    Generator
	platform      *platform.Platform
	db            *gorm.DB // nil when persistence is disabled
	cloudwatch    *metrics.Client
	sentryMetrics *metrics.SentryMetrics
}

func NewTestService(dispatcher Generator, plat *platform.Platform, db *gorm.DB, cw *metrics.Client) *TestService {
	return &TestService{
		dispatcher:    dispatcher,
		platform:      plat,
		db:            db,
		cloudwatch:    cw,
		sentryMetrics: metrics.NewSentryMetrics(),
	}
}

// Platform exposes the aggregation layer for read endpoints.
func (s *TestService) Platform() *platform.Platform {
	return s.platform
}

// Run executes one test. Failed dispatches are recorded (the failure is
// part of the agent's history) and the error is returned for the caller
// to map onto a response status.
func (s *TestService) Run(ctx context.Context, in *RunTestInput) (*platform.TestResult, error) {
	testID := uuid.New().String()
	startedAt := time.Now()

	trace := observability.GetClient().StartTrace(ctx, "agent-test", map[string]interface{}{
		"test_id":   testID,
		"agent":     in.AgentName,
		"provider":  string(in.Provider),
		"task_kind": string(in.TaskKind),
	})
	defer trace.Finish()

	gen := trace.Generation("dispatch", map[string]interface{}{
		"endpoint": in.Endpoint,
	})
	gen.Input(in.Input)

	result, err := s.dispatcher.Execute(ctx, &dispatch.Request{
		Provider: in.Provider,
		Endpoint: in.Endpoint,
		APIKey:   in.APIKey,
		TaskKind: in.TaskKind,
		Input:    in.Input,
		Params:   in.Params,
	})
	if err != nil {
		gen.SetLevel("ERROR")
		gen.Finish()

		failed := platform.TestResult{
			TestID:       testID,
			Timestamp:    startedAt,
			AgentName:    in.AgentName,
			ProviderKind: in.Provider,
			TaskKind:     in.TaskKind,
			TestInput:    in.Input,
			Success:      false,
			Error:        err.Error(),
		}
		s.platform.Add(failed)
		s.persist(&failed, in.RequestID)
		s.cloudwatch.RecordTestFailure(string(in.Provider), string(in.TaskKind))
		logger.Error("Agent test failed", err, logger.Fields{
			"test_id":   testID,
			"provider":  string(in.Provider),
			"task_kind": string(in.TaskKind),
			"agent":     in.AgentName,
		})
		return &failed, err
	}

	gen.Output(result.Text)
	gen.Finish()

	report := analyzer.Analyze(result.Text, in.TaskKind, result.Elapsed)

	completed := platform.TestResult{
		TestID:       testID,
		Timestamp:    startedAt,
		AgentName:    in.AgentName,
		ProviderKind: in.Provider,
		TaskKind:     in.TaskKind,
		TestInput:    in.Input,
		Response:     result.Text,
		Elapsed:      report.Metrics.ExecutionTime,
		Analysis:     report,
		Success:      true,
	}
	s.platform.Add(completed)
	s.persist(&completed, in.RequestID)

	s.cloudwatch.RecordTestRun(string(in.Provider), string(in.TaskKind), report.OverallScore, result.Elapsed)
	s.sentryMetrics.RecordTestRun(ctx, string(in.Provider), string(in.TaskKind), report.OverallScore, result.Elapsed)
	logger.LogTestRun(string(in.Provider), string(in.TaskKind), result.Elapsed, report.OverallScore, logger.Fields{
		"test_id":    testID,
		"agent":      in.AgentName,
		"request_id": in.RequestID,
	})

	return &completed, nil
}

// History returns the most recent persisted records, newest first. Only
// available when a database is configured.
func (s *TestService) History(limit int) ([]models.AgentTest, error) {
	if s.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}
	var records []models.AgentTest
	if err := s.db.Order("created_at DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *TestService) persist(result *platform.TestResult, requestID string) {
	if s.db == nil {
		return
	}

	record := models.AgentTest{
		TestID:       result.TestID,
		AgentName:    result.AgentName,
		ProviderKind: string(result.ProviderKind),
		TaskKind:     string(result.TaskKind),
		TestInput:    result.TestInput,
		Response:     result.Response,
		ElapsedMS:    int(result.Elapsed * 1000),
		Success:      result.Success,
		Error:        result.Error,
		RequestID:    requestID,
	}
	if result.Analysis != nil {
		record.OverallScore = result.Analysis.OverallScore
		record.Grade = result.Analysis.Grade
		if encoded, err := json.Marshal(result.Analysis); err == nil {
			record.Analysis = string(encoded)
		}
	}

	if err := s.db.Create(&record).Error; err != nil {
		logger.Error("Failed to persist test record", err, logger.Fields{
			"test_id": result.TestID,
		})
	}
}

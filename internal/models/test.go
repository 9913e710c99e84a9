package models

import (
	"time"
)

// AgentTest is the persisted record of one agent test run. The analysis
// report is stored as a JSON document; score and grade are duplicated as
// columns so dashboards can aggregate without unpacking JSON.
type AgentTest struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	TestID       string  `gorm:"uniqueIndex;not null" json:"test_id"`
	AgentName    string  `gorm:"index;not null" json:"agent_name"`
	ProviderKind string  `gorm:"index;not null" json:"provider_kind"`
	TaskKind     string  `gorm:"index;not null" json:"task_kind"`
	TestInput    string  `gorm:"type:text" json:"test_input"`
	Response     string  `gorm:"type:text" json:"response"`
	ElapsedMS    int     `gorm:"not null" json:"elapsed_ms"`
	OverallScore float64 `json:"overall_score"`
	Grade        string  `json:"grade"`
	Analysis     string  `gorm:"type:jsonb" json:"analysis"`
	Success      bool    `gorm:"index" json:"success"`
	Error        string  `gorm:"type:text" json:"error,omitempty"`
	RequestID    string  `gorm:"index" json:"request_id"`
}

package storage

import (
	"encoding/json"
	"time"
)

// schemaVersion is written into every session and index file
const schemaVersion = 1

// sessionRecord is the on-disk JSON layout of a session file
type sessionRecord struct {
	Artifacts                 []string                  `json:"artifacts"`
	Background                string                    `json:"background"`
	CreatedAt                 time.Time                 `json:"created_at"`
	Hyperparameters           hyperparametersRecord     `json:"hyperparameters"`
	MultiStepReasoningEnabled bool                      `json:"multi_step_reasoning_enabled"`
	PendingCompression        *pendingCompressionRecord `json:"pending_compression,omitempty"`
	Pools                     []turnRecord              `json:"pools"`
	Procedure                 string                    `json:"procedure,omitempty"`
	Purpose                   string                    `json:"purpose"`
	References                []referenceRecord         `json:"references"`
	Roles                     []string                  `json:"roles"`
	SessionID                 string                    `json:"session_id"`
	Todos                     []todoRecord              `json:"todos"`
	TokenCount                int                       `json:"token_count"`
	Turns                     []turnRecord              `json:"turns"`
	Version                   int                       `json:"version"`
}

// turnRecord is discriminated by Type. Response holds a plain string for
// function_calling turns and a toolResultRecord for tool_response turns.
type turnRecord struct {
	Content            string          `json:"content,omitempty"`
	Instruction        string          `json:"instruction,omitempty"`
	Name               string          `json:"name,omitempty"`
	OriginalTurnsRange *[2]int         `json:"original_turns_range,omitempty"`
	Response           json.RawMessage `json:"response,omitempty"`
	Timestamp          time.Time       `json:"timestamp"`
	Type               string          `json:"type"`
}

type toolResultRecord struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type referenceRecord struct {
	Disabled bool   `json:"disabled"`
	Path     string `json:"path"`
	TTL      *int   `json:"ttl"`
}

type todoRecord struct {
	Checked     bool   `json:"checked"`
	Description string `json:"description"`
	Title       string `json:"title"`
}

type hyperparametersRecord struct {
	Temperature *float64 `json:"temperature,omitempty"`
	TopK        *int     `json:"top_k,omitempty"`
	TopP        *float64 `json:"top_p,omitempty"`
}

type pendingCompressionRecord struct {
	CreatedAt       time.Time `json:"created_at"`
	End             int       `json:"end"`
	Start           int       `json:"start"`
	Summary         string    `json:"summary"`
	TargetSessionID string    `json:"target_session_id"`
	TargetTurnCount int       `json:"target_turn_count"`
}

// indexFile is the on-disk JSON layout of index.json
type indexFile struct {
	Sessions map[string]indexRecord `json:"sessions"`
	Version  int                    `json:"version"`
}

type indexRecord struct {
	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `json:"last_updated"`
	Purpose     string    `json:"purpose"`
}

func newIndexFile() indexFile {
	return indexFile{Sessions: make(map[string]indexRecord), Version: schemaVersion}
}

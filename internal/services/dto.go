package services

import "github.com/s-age/pipe-sub004/internal/domain"

// CreateSessionParams contains parameters for creating a new session
type CreateSessionParams struct {
	Artifacts                 []string
	Background                string
	Hyperparameters           domain.Hyperparameters
	MultiStepReasoningEnabled bool
	ParentID                  string
	Procedure                 string
	Purpose                   string
	Roles                     []string
}

// EditSessionMetaParams lists the metadata fields to change; nil fields are
// left untouched
type EditSessionMetaParams struct {
	Artifacts                 *[]string
	Background                *string
	MultiStepReasoningEnabled *bool
	Procedure                 *string
	Purpose                   *string
	Roles                     *[]string
}

// ReferenceContent is one reference file ready to be placed in a prompt
type ReferenceContent struct {
	Content string
	Path    string
}

// RemovalResult reports the outcome of archiving or deleting one requested id
type RemovalResult struct {
	Backups   []domain.BackupRecord
	Err       error
	Removed   []string
	SessionID string
}

// StopResult reports what Stop did
type StopResult struct {
	Killed     bool
	RolledBack int
}

package storage

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/s-age/pipe-sub004/internal/domain"
)

// sessionToRecord converts a domain.Session to its file layout
func sessionToRecord(s *domain.Session) (sessionRecord, error) {
	turns, err := turnsToRecords(s.Turns)
	if err != nil {
		return sessionRecord{}, err
	}
	pools, err := turnsToRecords(s.Pools)
	if err != nil {
		return sessionRecord{}, err
	}

	rec := sessionRecord{
		Artifacts:                 nonNil(s.Artifacts),
		Background:                s.Background,
		CreatedAt:                 s.CreatedAt,
		Hyperparameters:           hyperparametersRecord(s.Hyperparameters),
		MultiStepReasoningEnabled: s.MultiStepReasoningEnabled,
		Pools:                     pools,
		Procedure:                 s.Procedure,
		Purpose:                   s.Purpose,
		References:                make([]referenceRecord, 0, len(s.References)),
		Roles:                     nonNil(s.Roles),
		SessionID:                 s.ID,
		Todos:                     make([]todoRecord, 0, len(s.Todos)),
		TokenCount:                s.TokenCount,
		Turns:                     turns,
		Version:                   schemaVersion,
	}
	for _, ref := range s.References {
		rec.References = append(rec.References, referenceRecord(ref))
	}
	for _, todo := range s.Todos {
		rec.Todos = append(rec.Todos, todoRecord(todo))
	}
	if s.PendingCompression != nil {
		pending := pendingCompressionRecord(*s.PendingCompression)
		rec.PendingCompression = &pending
	}
	return rec, nil
}

// recordToSession converts a session file layout to domain.Session
func recordToSession(rec sessionRecord) (*domain.Session, error) {
	turns, err := recordsToTurns(rec.Turns)
	if err != nil {
		return nil, err
	}
	pools, err := recordsToTurns(rec.Pools)
	if err != nil {
		return nil, err
	}

	s := &domain.Session{
		Artifacts:                 slices.Clone(rec.Artifacts),
		Background:                rec.Background,
		CreatedAt:                 rec.CreatedAt,
		Hyperparameters:           domain.Hyperparameters(rec.Hyperparameters),
		ID:                        rec.SessionID,
		MultiStepReasoningEnabled: rec.MultiStepReasoningEnabled,
		Pools:                     pools,
		Procedure:                 rec.Procedure,
		Purpose:                   rec.Purpose,
		Roles:                     slices.Clone(rec.Roles),
		TokenCount:                rec.TokenCount,
		Turns:                     turns,
	}
	for _, ref := range rec.References {
		s.References = append(s.References, domain.Reference(ref))
	}
	for _, todo := range rec.Todos {
		s.Todos = append(s.Todos, domain.TodoItem(todo))
	}
	if rec.PendingCompression != nil {
		pending := domain.PendingCompression(*rec.PendingCompression)
		s.PendingCompression = &pending
	}
	return s, nil
}

func turnsToRecords(turns []domain.Turn) ([]turnRecord, error) {
	records := make([]turnRecord, 0, len(turns))
	for i, t := range turns {
		rec, err := turnToRecord(t)
		if err != nil {
			return nil, fmt.Errorf("turn %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func recordsToTurns(records []turnRecord) ([]domain.Turn, error) {
	turns := make([]domain.Turn, 0, len(records))
	for i, rec := range records {
		t, err := recordToTurn(rec)
		if err != nil {
			return nil, fmt.Errorf("turn %d: %w", i, err)
		}
		turns = append(turns, t)
	}
	return turns, nil
}

func turnToRecord(t domain.Turn) (turnRecord, error) {
	rec := turnRecord{Timestamp: t.Timestamp, Type: string(t.Type)}

	var response any
	switch t.Type {
	case domain.TurnUserTask:
		rec.Instruction = t.Instruction
	case domain.TurnModelResponse:
		rec.Content = t.Content
	case domain.TurnFunctionCalling:
		response = t.Response
	case domain.TurnToolResponse:
		rec.Name = t.Name
		response = toolResultRecord(t.Result)
	case domain.TurnCompressedHistory:
		rec.Content = t.Content
		turnsRange := t.OriginalTurnsRange
		rec.OriginalTurnsRange = &turnsRange
	default:
		return turnRecord{}, domain.Validationf("unknown turn type %q", t.Type)
	}

	if response != nil {
		raw, err := json.Marshal(response)
		if err != nil {
			return turnRecord{}, domain.Validationf("failed to encode turn response: %v", err)
		}
		rec.Response = raw
	}
	return rec, nil
}

func recordToTurn(rec turnRecord) (domain.Turn, error) {
	t := domain.Turn{Timestamp: rec.Timestamp, Type: domain.TurnType(rec.Type)}

	switch t.Type {
	case domain.TurnUserTask:
		t.Instruction = rec.Instruction
	case domain.TurnModelResponse:
		t.Content = rec.Content
	case domain.TurnFunctionCalling:
		if len(rec.Response) > 0 {
			if err := json.Unmarshal(rec.Response, &t.Response); err != nil {
				return domain.Turn{}, domain.Validationf("function_calling response must be a string: %v", err)
			}
		}
	case domain.TurnToolResponse:
		t.Name = rec.Name
		var result toolResultRecord
		if len(rec.Response) > 0 {
			if err := json.Unmarshal(rec.Response, &result); err != nil {
				return domain.Turn{}, domain.Validationf("tool_response response must be an object: %v", err)
			}
		}
		t.Result = domain.ToolResult(result)
	case domain.TurnCompressedHistory:
		t.Content = rec.Content
		if rec.OriginalTurnsRange != nil {
			t.OriginalTurnsRange = *rec.OriginalTurnsRange
		}
	default:
		return domain.Turn{}, domain.Validationf("unknown turn type %q", rec.Type)
	}
	return t, nil
}

// entryFromRecord builds a domain.IndexEntry for id
func entryFromRecord(id string, rec indexRecord) domain.IndexEntry {
	return domain.IndexEntry{
		CreatedAt:   rec.CreatedAt,
		LastUpdated: rec.LastUpdated,
		Purpose:     rec.Purpose,
		SessionID:   id,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return slices.Clone(values)
}

// backupModelToDomain converts a BackupModel (GORM) to domain.BackupRecord
func backupModelToDomain(m BackupModel) domain.BackupRecord {
	return domain.BackupRecord{
		BackupPath:       m.BackupPath,
		CreatedAt:        m.CreatedAt,
		ID:               m.ID,
		Purpose:          m.Purpose,
		Reason:           domain.BackupReason(m.Reason),
		SessionCreatedAt: m.SessionCreatedAt,
		SessionID:        m.SessionID,
	}
}

// domainToBackupModel converts a domain.BackupRecord to BackupModel (GORM)
func domainToBackupModel(r domain.BackupRecord) BackupModel {
	return BackupModel{
		BackupPath:       r.BackupPath,
		CreatedAt:        r.CreatedAt,
		ID:               r.ID,
		Purpose:          r.Purpose,
		Reason:           string(r.Reason),
		SessionCreatedAt: r.SessionCreatedAt,
		SessionID:        r.SessionID,
	}
}

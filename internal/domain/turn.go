package domain

import "time"

// TurnType discriminates the variants of a Turn
type TurnType string

const (
	TurnCompressedHistory TurnType = "compressed_history"
	TurnFunctionCalling   TurnType = "function_calling"
	TurnModelResponse     TurnType = "model_response"
	TurnToolResponse      TurnType = "tool_response"
	TurnUserTask          TurnType = "user_task"
)

// Tool response statuses
const (
	ToolStatusFailed    = "failed"
	ToolStatusSucceeded = "succeeded"
)

// ExpiredToolResponseMessage replaces the body of stale tool output
const ExpiredToolResponseMessage = "This tool response has expired to save tokens. Re-run the tool if the output is needed again."

// ToolResult is the response payload of a tool_response turn
type ToolResult struct {
	Message string
	Status  string
}

// Turn is one timestamped event of a session's history.
// Only the fields belonging to Type are meaningful.
type Turn struct {
	Content            string // model_response, compressed_history
	Instruction        string // user_task
	Name               string // tool_response
	OriginalTurnsRange [2]int // compressed_history
	Response           string // function_calling
	Result             ToolResult
	Timestamp          time.Time
	Type               TurnType
}

func NewUserTask(instruction string, ts time.Time) Turn {
	return Turn{Type: TurnUserTask, Instruction: instruction, Timestamp: ts}
}

func NewModelResponse(content string, ts time.Time) Turn {
	return Turn{Type: TurnModelResponse, Content: content, Timestamp: ts}
}

func NewFunctionCalling(response string, ts time.Time) Turn {
	return Turn{Type: TurnFunctionCalling, Response: response, Timestamp: ts}
}

func NewToolResponse(name, status, message string, ts time.Time) Turn {
	return Turn{
		Type:      TurnToolResponse,
		Name:      name,
		Result:    ToolResult{Status: status, Message: message},
		Timestamp: ts,
	}
}

func NewCompressedHistory(content string, start, end int, ts time.Time) Turn {
	return Turn{
		Type:               TurnCompressedHistory,
		Content:            content,
		OriginalTurnsRange: [2]int{start, end},
		Timestamp:          ts,
	}
}

// Validate checks that a turn carries a known type and the fields it needs
func (t Turn) Validate() error {
	switch t.Type {
	case TurnUserTask, TurnModelResponse, TurnFunctionCalling:
	case TurnToolResponse:
		if t.Name == "" {
			return Validationf("tool_response turn requires a name")
		}
		if t.Result.Status == "" {
			return Validationf("tool_response turn requires a status")
		}
	case TurnCompressedHistory:
		if t.OriginalTurnsRange[0] < 0 || t.OriginalTurnsRange[0] > t.OriginalTurnsRange[1] {
			return Validationf("compressed_history range [%d,%d] is invalid",
				t.OriginalTurnsRange[0], t.OriginalTurnsRange[1])
		}
	default:
		return Validationf("unknown turn type %q", t.Type)
	}
	if t.Timestamp.IsZero() {
		return Validationf("%s turn requires a timestamp", t.Type)
	}
	return nil
}

// TurnEdit lists the fields to change on a single turn. Nil fields are left
// untouched.
type TurnEdit struct {
	Content     *string
	Instruction *string
	Message     *string
	Response    *string
	Status      *string
}

func (e TurnEdit) empty() bool {
	return e.Content == nil && e.Instruction == nil && e.Message == nil &&
		e.Response == nil && e.Status == nil
}

// apply returns a copy of t with the edit applied, rejecting fields that do
// not belong to the turn's type.
func (e TurnEdit) apply(t Turn) (Turn, error) {
	if e.empty() {
		return t, Validationf("no fields to edit")
	}

	allowed := map[TurnType]func() bool{
		TurnUserTask: func() bool {
			return e.Content == nil && e.Message == nil && e.Response == nil && e.Status == nil
		},
		TurnModelResponse: func() bool {
			return e.Instruction == nil && e.Message == nil && e.Response == nil && e.Status == nil
		},
		TurnCompressedHistory: func() bool {
			return e.Instruction == nil && e.Message == nil && e.Response == nil && e.Status == nil
		},
		TurnFunctionCalling: func() bool {
			return e.Content == nil && e.Instruction == nil && e.Message == nil && e.Status == nil
		},
		TurnToolResponse: func() bool {
			return e.Content == nil && e.Instruction == nil && e.Response == nil
		},
	}
	check, ok := allowed[t.Type]
	if !ok || !check() {
		return t, Validationf("field not editable on %s turn", t.Type)
	}

	if e.Instruction != nil {
		t.Instruction = *e.Instruction
	}
	if e.Content != nil {
		t.Content = *e.Content
	}
	if e.Response != nil {
		t.Response = *e.Response
	}
	if e.Message != nil {
		t.Result.Message = *e.Message
	}
	if e.Status != nil {
		t.Result.Status = *e.Status
	}
	return t, nil
}

package wire

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Request is any message the driver may send. The first element of the wire
// array names the command (case-insensitively); the optional second element
// carries command-specific parameters.
type Request interface {
	isRequest()
}

// StepMatchesRequest asks which registered steps match a piece of step text.
type StepMatchesRequest struct {
	NameToMatch string
}

func (StepMatchesRequest) isRequest() {}

// InvokeRequest asks the host to run a previously matched step by id.
type InvokeRequest struct {
	ID   string
	Args []Arg
}

func (InvokeRequest) isRequest() {}

// BeginScenarioRequest starts a scenario, replacing the active tag set.
// A missing parameter object decodes to an empty tag list.
type BeginScenarioRequest struct {
	Tags []string
}

func (BeginScenarioRequest) isRequest() {}

// EndScenarioRequest ends a scenario, clearing the active tag set.
type EndScenarioRequest struct {
	Tags []string
}

func (EndScenarioRequest) isRequest() {}

// SnippetTextRequest asks the host to suggest source for an undefined step.
type SnippetTextRequest struct {
	StepKeyword       string
	MultilineArgClass string
	StepName          string
}

func (SnippetTextRequest) isRequest() {}

type stepMatchesParams struct {
	NameToMatch string `json:"name_to_match"`
}

type invokeParams struct {
	ID   string `json:"id"`
	Args []Arg  `json:"args"`
}

type scenarioParams struct {
	Tags []string `json:"tags"`
}

type snippetTextParams struct {
	StepKeyword       string `json:"step_keyword"`
	MultilineArgClass string `json:"multiline_arg_class"`
	StepName          string `json:"step_name"`
}

// DecodeRequest parses one line of the wire protocol into a Request. An
// unrecognized or malformed command tag is a decode error; callers (the
// server's read loop) are expected to skip the line silently on error.
func DecodeRequest(line []byte) (Request, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(line, &raw); err != nil {
		return nil, fmt.Errorf("wire: malformed request: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("wire: empty request array")
	}

	var tag string
	if err := json.Unmarshal(raw[0], &tag); err != nil {
		return nil, fmt.Errorf("wire: request tag is not a string: %w", err)
	}
	tag = strings.ToLower(tag)

	switch tag {
	case "step_matches":
		if len(raw) < 2 {
			return nil, fmt.Errorf("wire: step_matches missing parameters")
		}
		var p stepMatchesParams
		if err := json.Unmarshal(raw[1], &p); err != nil {
			return nil, fmt.Errorf("wire: step_matches: %w", err)
		}
		return StepMatchesRequest{NameToMatch: p.NameToMatch}, nil

	case "invoke":
		if len(raw) < 2 {
			return nil, fmt.Errorf("wire: invoke missing parameters")
		}
		var p invokeParams
		if err := json.Unmarshal(raw[1], &p); err != nil {
			return nil, fmt.Errorf("wire: invoke: %w", err)
		}
		args := p.Args
		if args == nil {
			args = []Arg{}
		}
		return InvokeRequest{ID: p.ID, Args: args}, nil

	case "begin_scenario":
		if len(raw) < 2 {
			return BeginScenarioRequest{Tags: []string{}}, nil
		}
		var p scenarioParams
		if err := json.Unmarshal(raw[1], &p); err != nil {
			return nil, fmt.Errorf("wire: begin_scenario: %w", err)
		}
		tags := p.Tags
		if tags == nil {
			tags = []string{}
		}
		return BeginScenarioRequest{Tags: tags}, nil

	case "end_scenario":
		if len(raw) < 2 {
			return EndScenarioRequest{Tags: []string{}}, nil
		}
		var p scenarioParams
		if err := json.Unmarshal(raw[1], &p); err != nil {
			return nil, fmt.Errorf("wire: end_scenario: %w", err)
		}
		tags := p.Tags
		if tags == nil {
			tags = []string{}
		}
		return EndScenarioRequest{Tags: tags}, nil

	case "snippet_text":
		if len(raw) < 2 {
			return nil, fmt.Errorf("wire: snippet_text missing parameters")
		}
		var p snippetTextParams
		if err := json.Unmarshal(raw[1], &p); err != nil {
			return nil, fmt.Errorf("wire: snippet_text: %w", err)
		}
		return SnippetTextRequest{
			StepKeyword:       p.StepKeyword,
			MultilineArgClass: p.MultilineArgClass,
			StepName:          p.StepName,
		}, nil

	default:
		return nil, fmt.Errorf("wire: unknown command %q", tag)
	}
}

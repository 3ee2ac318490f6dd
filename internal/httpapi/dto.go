package httpapi

import "github.com/samdwyer/cardhall/internal/game"

// CommandRequest is the body of POST /v1/command.
type CommandRequest struct {
	Input string `json:"input"`
}

// ResultResponse is one action outcome.
type ResultResponse struct {
	Message      string      `json:"message"`
	StateChanged bool        `json:"stateChanged"`
	Event        *game.Event `json:"event,omitempty"`
	Error        string      `json:"error,omitempty"`
}

// CommandResponse is the JSON shape returned by POST /v1/command. Results
// holds the player's action followed by any opponent reply it triggered.
type CommandResponse struct {
	Session string           `json:"session"`
	Results []ResultResponse `json:"results"`
	State   game.Snapshot    `json:"state"`
}

// StateResponse is the JSON shape returned by GET /v1/state.
type StateResponse struct {
	Session string        `json:"session"`
	State   game.Snapshot `json:"state"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func toResult(r game.Result) ResultResponse {
	out := ResultResponse{
		Message:      r.Message,
		StateChanged: r.StateChanged,
		Event:        r.Event,
	}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return out
}

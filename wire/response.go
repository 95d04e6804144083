package wire

import "encoding/json"

// StepArg is a single captured argument reported back from a step_matches
// request. A group that did not participate in the match serializes both
// fields as JSON null.
type StepArg struct {
	Val *string `json:"val"`
	Pos *uint32 `json:"pos"`
}

// MatchReport is one candidate match returned for a step_matches request.
type MatchReport struct {
	ID     string    `json:"id"`
	Args   []StepArg `json:"args"`
	Source string    `json:"source"`
}

// Response is any message the host may send back to the driver. Concrete
// types: Success, Pending, Fail (also usable as InvokeOutcome — see below)
// and WithPayload (snippet text / step-match lists, which only ever occur as
// top-level responses, never as the outcome of a step body).
type Response interface {
	isResponse()
}

// InvokeOutcome is the narrower sum type a step callable returns: Success,
// Pending, or Fail. It embeds Response so that every InvokeOutcome is also
// directly usable as a top-level Response, matching their identical wire
// encodings.
type InvokeOutcome interface {
	Response
	isInvokeOutcome()
}

// Success is the empty-payload ["success"] response/outcome used for
// begin_scenario, end_scenario, and a step that simply passed.
type Success struct{}

func (Success) isResponse()      {}
func (Success) isInvokeOutcome() {}

// MarshalJSON renders Success as ["success"].
func (Success) MarshalJSON() ([]byte, error) {
	return json.Marshal([1]string{"success"})
}

// Pending is the ["pending", message] response/outcome for an unimplemented step.
type Pending struct {
	Message string
}

func (Pending) isResponse()      {}
func (Pending) isInvokeOutcome() {}

// MarshalJSON renders Pending as ["pending", message].
func (p Pending) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{"pending", p.Message})
}

// Fail is the ["fail", {"message":..., "exception":...}] response/outcome for
// a failed step, a destructure error, or a caught panic.
type Fail struct {
	Message   string
	Exception string
}

func (Fail) isResponse()      {}
func (Fail) isInvokeOutcome() {}

type failBody struct {
	Message   string `json:"message"`
	Exception string `json:"exception"`
}

// MarshalJSON renders Fail as ["fail", {"message":..., "exception":...}].
func (f Fail) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{"fail", failBody{Message: f.Message, Exception: f.Exception}})
}

// WithPayload is the ["success", payload] shape used for snippet text and for
// step-match lists (possibly empty). It is never a valid InvokeOutcome: a step
// body cannot itself return a step-match list.
type WithPayload struct {
	Payload interface{}
}

func (WithPayload) isResponse() {}

// MarshalJSON renders WithPayload as ["success", payload].
func (w WithPayload) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{"success", w.Payload})
}

// EncodeResponse serializes any Response to its wire-protocol JSON array form.
func EncodeResponse(r Response) ([]byte, error) {
	return json.Marshal(r)
}

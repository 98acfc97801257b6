package grooveshark

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Params holds the named arguments of a remote method. Keys are
// case-sensitive and must match the service's names exactly.
type Params map[string]any

// Envelope is the request body sent for every call. Field order is fixed
// by the struct; map keys inside Parameters are emitted sorted.
type Envelope struct {
	Method     string `json:"method"`
	Parameters Params `json:"parameters"`
	Header     Header `json:"header"`
}

// Header identifies the caller. SessionID is nil until a session exists
// and is serialized as JSON null.
type Header struct {
	WSKey     string  `json:"wsKey"`
	SessionID *string `json:"sessionID"`
}

// newEnvelope builds the envelope for method. A nil params map is sent
// as an empty object.
func newEnvelope(method string, params Params, wsKey, sessionID string) Envelope {
	if params == nil {
		params = Params{}
	}
	env := Envelope{
		Method:     method,
		Parameters: params,
		Header:     Header{WSKey: wsKey},
	}
	if sessionID != "" {
		env.Header.SessionID = &sessionID
	}
	return env
}

// Marshal serializes the envelope. The output is deterministic: the same
// envelope always yields the same bytes, with no HTML escaping and no
// trailing newline.
func (e Envelope) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(e); err != nil {
		return nil, fmt.Errorf("failed to encode %s envelope: %w", e.Method, err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

package template

import (
	"fmt"
	"strconv"
)

// --- Buttons ---

// Button sub_types accepted by the Cloud API.
const (
	SubTypeURL        = "url"
	SubTypeQuickReply = "quick_reply"
)

// ButtonParameter is one button sub-parameter: either a url suffix appended
// to the template-defined prefix, or a developer payload echoed back when
// the button is tapped. Exactly one of URL/Payload is set, per Type.
type ButtonParameter struct {
	Type    string `json:"type"`
	URL     string `json:"url,omitempty"`
	Payload string `json:"payload,omitempty"`
}

func NewURLButton(url string) (ButtonParameter, error) {
	if url == "" {
		return ButtonParameter{}, ErrURLRequired
	}
	return ButtonParameter{Type: "url", URL: url}, nil
}

func NewPayloadButton(payload string) (ButtonParameter, error) {
	if payload == "" {
		return ButtonParameter{}, ErrPayloadRequired
	}
	return ButtonParameter{Type: "payload", Payload: payload}, nil
}

// ButtonComponent is one interactive button slot. Index is serialized as a
// string even though the API position is numeric.
type ButtonComponent struct {
	Type       string            `json:"type"`
	SubType    string            `json:"sub_type"`
	Index      string            `json:"index"`
	Parameters []ButtonParameter `json:"parameters"`
}

// NewButton builds a button component at the given position. index must be
// within 0-2, subType must be SubTypeURL or SubTypeQuickReply, and at least
// one parameter is required. A url parameter under quick_reply, or a
// payload parameter under url, fails the cross-field check.
func NewButton(index int, subType string, params ...ButtonParameter) (*ButtonComponent, error) {
	if index < 0 || index > 2 {
		return nil, fmt.Errorf("%w: got %d", ErrIndexOutOfRange, index)
	}
	if subType != SubTypeURL && subType != SubTypeQuickReply {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidSubType, subType)
	}
	if len(params) == 0 {
		return nil, ErrNoButtonParameters
	}
	for _, p := range params {
		if subType == SubTypeQuickReply && p.Type == "url" {
			return nil, fmt.Errorf("%w: url parameter in quick_reply button", ErrSubTypeMismatch)
		}
		if subType == SubTypeURL && p.Type == "payload" {
			return nil, fmt.Errorf("%w: payload parameter in url button", ErrSubTypeMismatch)
		}
	}
	return &ButtonComponent{
		Type:       "button",
		SubType:    subType,
		Index:      strconv.Itoa(index),
		Parameters: params,
	}, nil
}

func (*ButtonComponent) componentType() string { return "button" }

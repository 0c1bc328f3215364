package api

import (
	"errors"
	"fmt"

	"template-gateway/internal/template"
)

// Declarative compose request: a JSON description of a template message
// that is mapped onto the core constructors. Every validation rule lives
// in the core; this layer only translates shapes.

type ComposeRequest struct {
	Name       string          `json:"name" binding:"required"`
	Language   string          `json:"language" binding:"required"`
	Components []ComponentSpec `json:"components"`
}

type ComponentSpec struct {
	Type       string          `json:"type"` // header | body | button
	SubType    string          `json:"sub_type,omitempty"`
	Index      *int            `json:"index,omitempty"`
	Parameters []ParameterSpec `json:"parameters,omitempty"`
}

type ParameterSpec struct {
	Type string `json:"type"` // text | currency | date_time | image | document | video | url | payload

	Text string `json:"text,omitempty"`

	// Pointer so that a legitimate zero amount is distinguishable from an
	// absent one.
	Amount1000    *int   `json:"amount_1000,omitempty"`
	Code          string `json:"code,omitempty"`
	FallbackValue string `json:"fallback_value,omitempty"`

	ID       string `json:"id,omitempty"`
	Link     string `json:"link,omitempty"`
	Filename string `json:"filename,omitempty"`

	URL     string `json:"url,omitempty"`
	Payload string `json:"payload,omitempty"`
}

func buildTemplate(req ComposeRequest) (*template.Template, error) {
	components := make([]template.Component, 0, len(req.Components))
	for i, spec := range req.Components {
		c, err := buildComponent(spec)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		components = append(components, c)
	}
	return template.New(req.Name, req.Language, components...)
}

func buildComponent(spec ComponentSpec) (template.Component, error) {
	switch spec.Type {
	case "header":
		values, err := buildValues(spec.Parameters)
		if err != nil {
			return nil, err
		}
		return template.NewHeader(values...)
	case "body":
		values, err := buildValues(spec.Parameters)
		if err != nil {
			return nil, err
		}
		return template.NewBody(values...)
	case "button":
		if spec.Index == nil {
			return nil, errors.New("button index is required")
		}
		params := make([]template.ButtonParameter, 0, len(spec.Parameters))
		for _, p := range spec.Parameters {
			bp, err := buildButtonParameter(p)
			if err != nil {
				return nil, err
			}
			params = append(params, bp)
		}
		return template.NewButton(*spec.Index, spec.SubType, params...)
	default:
		return nil, fmt.Errorf("unknown component type %q", spec.Type)
	}
}

func buildValues(specs []ParameterSpec) ([]template.ParameterValue, error) {
	values := make([]template.ParameterValue, 0, len(specs))
	for _, spec := range specs {
		v, err := buildValue(spec)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func buildValue(spec ParameterSpec) (template.ParameterValue, error) {
	switch spec.Type {
	case "text":
		return template.NewText(spec.Text)
	case "currency":
		if spec.Amount1000 == nil {
			return nil, errors.New("currency amount_1000 is required")
		}
		return template.NewCurrency(*spec.Amount1000, spec.Code, spec.FallbackValue)
	case "date_time":
		return template.NewDateTime(spec.FallbackValue)
	case "image":
		ref, byID := mediaRef(spec)
		return template.NewImage(ref, byID)
	case "document":
		ref, byID := mediaRef(spec)
		return template.NewDocument(ref, byID, spec.Filename)
	case "video":
		ref, byID := mediaRef(spec)
		return template.NewVideo(ref, byID)
	default:
		return nil, fmt.Errorf("unknown parameter type %q", spec.Type)
	}
}

func buildButtonParameter(spec ParameterSpec) (template.ButtonParameter, error) {
	switch spec.Type {
	case "url":
		return template.NewURLButton(spec.URL)
	case "payload":
		return template.NewPayloadButton(spec.Payload)
	default:
		return template.ButtonParameter{}, fmt.Errorf("unknown button parameter type %q", spec.Type)
	}
}

func mediaRef(spec ParameterSpec) (ref string, byID bool) {
	if spec.ID != "" {
		return spec.ID, true
	}
	return spec.Link, false
}

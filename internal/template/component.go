package template

// --- Components ---

// Component is one structural section of a template: header, body or button.
type Component interface {
	componentType() string
}

type HeaderComponent struct {
	Type       string      `json:"type"`
	Parameters []Parameter `json:"parameters,omitempty"`
}

// NewHeader builds a header component. Arguments may be raw leaf values or
// already-built Parameters; built Parameters are passed through as-is, so
// nothing gets wrapped twice. Zero arguments is valid (static header).
func NewHeader(values ...ParameterValue) (*HeaderComponent, error) {
	h := &HeaderComponent{Type: "header"}
	for _, v := range values {
		if p, ok := v.(Parameter); ok {
			h.Parameters = append(h.Parameters, p)
			continue
		}
		p, err := NewParameter(v)
		if err != nil {
			return nil, err
		}
		h.Parameters = append(h.Parameters, p)
	}
	return h, nil
}

func (*HeaderComponent) componentType() string { return "header" }

type BodyComponent struct {
	Type       string      `json:"type"`
	Parameters []Parameter `json:"parameters,omitempty"`
}

// NewBody builds a body component, wrapping every argument in a Parameter.
// Zero arguments is valid (static body).
func NewBody(values ...ParameterValue) (*BodyComponent, error) {
	b := &BodyComponent{Type: "body"}
	for _, v := range values {
		p, err := NewParameter(v)
		if err != nil {
			return nil, err
		}
		b.Parameters = append(b.Parameters, p)
	}
	return b, nil
}

func (*BodyComponent) componentType() string { return "body" }

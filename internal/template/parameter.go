package template

// --- Leaf Value Kinds ---

// ParameterValue is implemented by every value a header or body parameter
// can wrap. The kind discriminator lives in the type system instead of a
// data field, so it never shows up in serialized output.
type ParameterValue interface {
	parameterType() string
}

// Text is a positional text substitution. The platform limits header text
// to 60 characters and body text to 1024; those limits are enforced
// remotely, not here.
type Text struct {
	Body string `json:"body"`
}

func NewText(body string) (*Text, error) {
	if body == "" {
		return nil, ErrBodyRequired
	}
	return &Text{Body: body}, nil
}

func (*Text) parameterType() string { return "text" }

// Currency is a localizable currency value. Amount1000 is the amount
// scaled by 1000; zero is a valid amount and is always serialized.
type Currency struct {
	FallbackValue string `json:"fallback_value"`
	Code          string `json:"code"`
	Amount1000    int    `json:"amount_1000"`
}

func NewCurrency(amount1000 int, code, fallbackValue string) (*Currency, error) {
	if code == "" {
		return nil, ErrCurrencyCodeRequired
	}
	if fallbackValue == "" {
		return nil, ErrFallbackValueRequired
	}
	return &Currency{
		FallbackValue: fallbackValue,
		Code:          code,
		Amount1000:    amount1000,
	}, nil
}

func (*Currency) parameterType() string { return "currency" }

// DateTime is a date/time substitution. The platform never localizes it;
// the fallback value is displayed verbatim.
type DateTime struct {
	FallbackValue string `json:"fallback_value"`
}

func NewDateTime(fallbackValue string) (*DateTime, error) {
	if fallbackValue == "" {
		return nil, ErrFallbackValueRequired
	}
	return &DateTime{FallbackValue: fallbackValue}, nil
}

func (*DateTime) parameterType() string { return "date_time" }

// Media references are either an uploaded media ID or a hosted HTTPS link,
// never both.

type Image struct {
	ID   string `json:"id,omitempty"`
	Link string `json:"link,omitempty"`
}

// NewImage builds an image reference. ref is a media ID when byID is set,
// otherwise a link.
func NewImage(ref string, byID bool) (*Image, error) {
	if ref == "" {
		return nil, ErrMediaRefRequired
	}
	if byID {
		return &Image{ID: ref}, nil
	}
	return &Image{Link: ref}, nil
}

func (*Image) parameterType() string { return "image" }

type Video struct {
	ID   string `json:"id,omitempty"`
	Link string `json:"link,omitempty"`
}

func NewVideo(ref string, byID bool) (*Video, error) {
	if ref == "" {
		return nil, ErrMediaRefRequired
	}
	if byID {
		return &Video{ID: ref}, nil
	}
	return &Video{Link: ref}, nil
}

func (*Video) parameterType() string { return "video" }

// Document references may carry a display filename. Only PDF documents are
// accepted in template headers; the platform enforces that, not this package.
type Document struct {
	ID       string `json:"id,omitempty"`
	Link     string `json:"link,omitempty"`
	Filename string `json:"filename,omitempty"`
}

func NewDocument(ref string, byID bool, filename string) (*Document, error) {
	if ref == "" {
		return nil, ErrMediaRefRequired
	}
	d := &Document{Filename: filename}
	if byID {
		d.ID = ref
	} else {
		d.Link = ref
	}
	return d, nil
}

func (*Document) parameterType() string { return "document" }

// --- Parameter Wrapper ---

// Parameter is the uniform {type, <payload>} shape consumed by header and
// body components. Exactly one payload field is set, named after the kind —
// except text, where the leaf's body is flattened into a bare string
// rather than nested under an object. That asymmetry is the platform's
// schema, not ours.
type Parameter struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	Currency *Currency `json:"currency,omitempty"`
	DateTime *DateTime `json:"date_time,omitempty"`
	Image    *Image    `json:"image,omitempty"`
	Document *Document `json:"document,omitempty"`
	Video    *Video    `json:"video,omitempty"`
}

func (p Parameter) parameterType() string { return p.Type }

// NewParameter normalizes a leaf value into a Parameter. The mapping from
// leaf kind to payload field is exhaustive; the caller's value is never
// mutated. Passing an already-built Parameter returns it unchanged.
func NewParameter(v ParameterValue) (Parameter, error) {
	switch v := v.(type) {
	case nil:
		return Parameter{}, ErrValueRequired
	case Parameter:
		return v, nil
	case *Text:
		if v == nil {
			return Parameter{}, ErrValueRequired
		}
		// The one hardcoded rename: body becomes a flat "text" field.
		return Parameter{Type: "text", Text: v.Body}, nil
	case *Currency:
		if v == nil {
			return Parameter{}, ErrValueRequired
		}
		return Parameter{Type: "currency", Currency: v}, nil
	case *DateTime:
		if v == nil {
			return Parameter{}, ErrValueRequired
		}
		return Parameter{Type: "date_time", DateTime: v}, nil
	case *Image:
		if v == nil {
			return Parameter{}, ErrValueRequired
		}
		return Parameter{Type: "image", Image: v}, nil
	case *Document:
		if v == nil {
			return Parameter{}, ErrValueRequired
		}
		return Parameter{Type: "document", Document: v}, nil
	case *Video:
		if v == nil {
			return Parameter{}, ErrValueRequired
		}
		return Parameter{Type: "video", Video: v}, nil
	default:
		return Parameter{}, ErrUnsupportedValue
	}
}

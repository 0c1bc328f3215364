package template

import "errors"

// Construction-time validation failures. All constructors in this package
// either return a fully built value or one of these (wrapped with context);
// nothing partially built ever escapes.
var (
	ErrNameRequired     = errors.New("template name is required")
	ErrLanguageRequired = errors.New("template language is required")
	ErrCodeRequired     = errors.New("language code is required")

	ErrValueRequired    = errors.New("parameter value is required")
	ErrUnsupportedValue = errors.New("unsupported parameter value")

	ErrBodyRequired          = errors.New("text body is required")
	ErrFallbackValueRequired = errors.New("fallback_value is required")
	ErrCurrencyCodeRequired  = errors.New("currency code is required")
	ErrMediaRefRequired      = errors.New("media id or link is required")

	ErrURLRequired     = errors.New("button url is required")
	ErrPayloadRequired = errors.New("button payload is required")

	ErrIndexOutOfRange      = errors.New("button index must be between 0 and 2")
	ErrInvalidSubType       = errors.New("button sub_type must be url or quick_reply")
	ErrNoButtonParameters   = errors.New("button requires at least one parameter")
	ErrSubTypeMismatch      = errors.New("button parameter type does not match sub_type")
	ErrDuplicateButtonIndex = errors.New("duplicate button index")
)

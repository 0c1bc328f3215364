package template

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewText(t *testing.T) {
	txt, err := NewText("Hello John")
	require.NoError(t, err)
	require.Equal(t, "Hello John", txt.Body)

	_, err = NewText("")
	require.ErrorIs(t, err, ErrBodyRequired)
}

func TestNewCurrency(t *testing.T) {
	cur, err := NewCurrency(149900, "USD", "$149.90")
	require.NoError(t, err)
	require.Equal(t, 149900, cur.Amount1000)
	require.Equal(t, "USD", cur.Code)
	require.Equal(t, "$149.90", cur.FallbackValue)

	_, err = NewCurrency(100, "", "$0.10")
	require.ErrorIs(t, err, ErrCurrencyCodeRequired)

	_, err = NewCurrency(100, "USD", "")
	require.ErrorIs(t, err, ErrFallbackValueRequired)
}

func TestNewCurrencyZeroAmountIsValid(t *testing.T) {
	cur, err := NewCurrency(0, "EUR", "0,00 €")
	require.NoError(t, err)

	p, err := NewParameter(cur)
	require.NoError(t, err)

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	currency, ok := out["currency"].(map[string]any)
	require.True(t, ok, "currency payload missing")
	// Zero must survive serialization, not be dropped as absent.
	require.Equal(t, float64(0), currency["amount_1000"])
}

func TestNewDateTime(t *testing.T) {
	dt, err := NewDateTime("February 25, 1977")
	require.NoError(t, err)
	require.Equal(t, "February 25, 1977", dt.FallbackValue)

	_, err = NewDateTime("")
	require.ErrorIs(t, err, ErrFallbackValueRequired)
}

func TestNewMediaReferences(t *testing.T) {
	img, err := NewImage("https://example.com/pic.jpg", false)
	require.NoError(t, err)
	require.Equal(t, "https://example.com/pic.jpg", img.Link)
	require.Empty(t, img.ID)

	img, err = NewImage("44551", true)
	require.NoError(t, err)
	require.Equal(t, "44551", img.ID)
	require.Empty(t, img.Link)

	_, err = NewImage("", false)
	require.ErrorIs(t, err, ErrMediaRefRequired)

	doc, err := NewDocument("https://example.com/order.pdf", false, "order.pdf")
	require.NoError(t, err)
	require.Equal(t, "order.pdf", doc.Filename)

	_, err = NewVideo("", true)
	require.ErrorIs(t, err, ErrMediaRefRequired)
}

func TestNewParameterTextRename(t *testing.T) {
	txt, err := NewText("Hello")
	require.NoError(t, err)

	p, err := NewParameter(txt)
	require.NoError(t, err)
	require.Equal(t, "text", p.Type)
	require.Equal(t, "Hello", p.Text)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	// The text payload is a flat string field, not a nested object.
	require.JSONEq(t, `{"type":"text","text":"Hello"}`, string(data))
}

func TestNewParameterCurrencyShape(t *testing.T) {
	cur, err := NewCurrency(149900, "USD", "$149.90")
	require.NoError(t, err)

	p, err := NewParameter(cur)
	require.NoError(t, err)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	require.JSONEq(t,
		`{"type":"currency","currency":{"fallback_value":"$149.90","code":"USD","amount_1000":149900}}`,
		string(data))
}

func TestNewParameterRejectsNil(t *testing.T) {
	_, err := NewParameter(nil)
	require.ErrorIs(t, err, ErrValueRequired)
}

func TestNewParameterRejectsTypedNil(t *testing.T) {
	var txt *Text
	_, err := NewParameter(txt)
	require.ErrorIs(t, err, ErrValueRequired)

	var cur *Currency
	_, err = NewParameter(cur)
	require.ErrorIs(t, err, ErrValueRequired)

	var doc *Document
	_, err = NewParameter(doc)
	require.ErrorIs(t, err, ErrValueRequired)
}

func TestNewParameterDoesNotMutateLeaf(t *testing.T) {
	cur, err := NewCurrency(500, "GBP", "£0.50")
	require.NoError(t, err)

	_, err = NewParameter(cur)
	require.NoError(t, err)

	require.Equal(t, 500, cur.Amount1000)
	require.Equal(t, "GBP", cur.Code)
	require.Equal(t, "£0.50", cur.FallbackValue)
}

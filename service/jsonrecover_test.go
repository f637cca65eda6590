package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/susemi/yearend-why/dto"
)

func TestRecoverJSONCleanInput(t *testing.T) {
	raw := `{"summary": {"headline": "요약"}, "tax_tips": ["tip1", "tip2"]}`

	obj, err := RecoverJSON(raw)
	require.NoError(t, err)

	var direct map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &direct))
	assert.Equal(t, direct, obj)
}

func TestRecoverJSONProseWrapped(t *testing.T) {
	raw := "Sure! Here is the JSON: {\"summary\": {\"headline\": \"ok\"}, \"tax_tips\": []}\n\nLet me know if you need more."

	obj, err := RecoverJSON(raw)
	require.NoError(t, err)

	summary, ok := obj["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ok", summary["headline"])
}

func TestRecoverJSONTrailingCommas(t *testing.T) {
	raw := `{"credit_card": 100, "missing_fields": ["rent",],}`

	obj, err := RecoverJSON(raw)
	require.NoError(t, err)

	assert.Equal(t, float64(100), obj["credit_card"])
	assert.Equal(t, []any{"rent"}, obj["missing_fields"])
}

func TestRecoverJSONBlankLineNoise(t *testing.T) {
	raw := "{\n\"credit_card\": 100,\n\n\n\"debit_card\": 200,\n}"

	obj, err := RecoverJSON(raw)
	require.NoError(t, err)

	assert.Equal(t, float64(100), obj["credit_card"])
	assert.Equal(t, float64(200), obj["debit_card"])
}

func TestRecoverJSONNoObject(t *testing.T) {
	raw := "I could not produce any structured output, sorry."

	obj, err := RecoverJSON(raw)
	assert.Nil(t, obj)

	var unparseable *dto.UnparseableError
	require.ErrorAs(t, err, &unparseable)
	assert.Equal(t, raw, unparseable.Raw)
}

func TestRecoverJSONStillBrokenAfterRepair(t *testing.T) {
	raw := "prefix {\"credit_card\": } suffix"

	_, err := RecoverJSON(raw)

	var unparseable *dto.UnparseableError
	require.ErrorAs(t, err, &unparseable)
	assert.Contains(t, unparseable.Raw, "prefix")
}

package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/bnema/xiboic/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTargetID(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantSet     bool
		wantNumeric bool
		wantJSON    string
	}{
		{name: "empty", input: "", wantSet: false, wantJSON: "null"},
		{name: "whitespace", input: "  ", wantSet: false, wantJSON: "null"},
		{name: "integer", input: "42", wantSet: true, wantNumeric: true, wantJSON: "42"},
		{name: "negative integer", input: "-7", wantSet: true, wantNumeric: true, wantJSON: "-7"},
		{name: "string", input: "widget-9", wantSet: true, wantJSON: `"widget-9"`},
		{name: "float stays string", input: "1.5", wantSet: true, wantJSON: `"1.5"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := entity.ParseTargetID(tt.input)
			assert.Equal(t, tt.wantSet, id.IsSet())
			assert.Equal(t, tt.wantNumeric, id.IsNumeric())

			data, err := json.Marshal(id)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantJSON, string(data))
		})
	}
}

func TestTargetID_StringConstructorKeepsDigitsAsString(t *testing.T) {
	data, err := json.Marshal(entity.TargetIDFromString("42"))
	require.NoError(t, err)
	assert.Equal(t, `"42"`, string(data))
}

func TestTargetID_UnmarshalJSON(t *testing.T) {
	var payload struct {
		ID entity.TargetID `json:"id"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"id":42}`), &payload))
	assert.True(t, payload.ID.IsNumeric())
	assert.Equal(t, "42", payload.ID.String())

	require.NoError(t, json.Unmarshal([]byte(`{"id":"popup-123"}`), &payload))
	assert.False(t, payload.ID.IsNumeric())
	assert.Equal(t, "popup-123", payload.ID.String())

	require.NoError(t, json.Unmarshal([]byte(`{"id":null}`), &payload))
	assert.False(t, payload.ID.IsSet())

	err := json.Unmarshal([]byte(`{"id":true}`), &payload)
	assert.Error(t, err)
}

func TestResolveTargetID(t *testing.T) {
	fallback := entity.TargetIDFromInt(7)
	explicit := entity.TargetIDFromInt(42)
	unset := entity.TargetID{}

	assert.Equal(t, explicit, entity.ResolveTargetID(&explicit, fallback))
	assert.Equal(t, fallback, entity.ResolveTargetID(nil, fallback))
	assert.Equal(t, fallback, entity.ResolveTargetID(&unset, fallback))
	assert.False(t, entity.ResolveTargetID(nil, unset).IsSet())
}

package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "test-verdict",
	Description: "test schema",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"action": map[string]any{
				"type": "string",
				"enum": []any{"FOLLOW_UP", "HINT", "CONCLUDE"},
			},
			"score": map[string]any{
				"type":    "integer",
				"minimum": 1,
				"maximum": 5,
			},
		},
		"required":             []any{"action", "score"},
		"additionalProperties": false,
	},
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"action":"CONCLUDE","score":4}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}
}

func TestValidateResponse_NoSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Errorf("schemaless validation should pass, got %v", err)
	}
}

func TestValidateResponse_Malformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", `액션: CONCLUDE`},
		{"wrong enum", `{"action":"SHRUG","score":3}`},
		{"score out of range", `{"action":"HINT","score":9}`},
		{"missing field", `{"action":"HINT"}`},
		{"extra field", `{"action":"HINT","score":3,"mood":"great"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateResponse(testSchema, json.RawMessage(tc.raw))
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Errorf("got %v, want ErrInvalidResponse", err)
			}
		})
	}
}

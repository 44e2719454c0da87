package jsontext

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepair(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "trailing comma in object",
			input: `{"a":1,}`,
			want:  `{"a":1}`,
		},
		{
			name:  "trailing comma in array",
			input: `[1,2,3,]`,
			want:  `[1,2,3]`,
		},
		{
			name:  "trailing comma before newline",
			input: "{\n  \"a\": 1,\n}",
			want:  "{\n  \"a\": 1\n}",
		},
		{
			name:  "single quoted strings",
			input: `{'a': 'b'}`,
			want:  `{"a": "b"}`,
		},
		{
			name:  "escaped single quote unescaped",
			input: `{'key': 'it\'s fine'}`,
			want:  `{"key": "it's fine"}`,
		},
		{
			name:  "inner double quote escaped",
			input: `{'say': 'he said "hi"'}`,
			want:  `{"say": "he said \"hi\""}`,
		},
		{
			name:  "comma and bracket inside double quoted string untouched",
			input: `{"a": "x, ]"}`,
			want:  `{"a": "x, ]"}`,
		},
		{
			name:  "comma and brace inside single quoted string survives conversion",
			input: `{'a': 'x, }'}`,
			want:  `{"a": "x, }"}`,
		},
		{
			name:  "single quote inside double quoted string untouched",
			input: `{"a": "it's"}`,
			want:  `{"a": "it's"}`,
		},
		{
			name:  "line comment stripped",
			input: "{\n  \"a\": 1 // count\n}",
			want:  "{\n  \"a\": 1 \n}",
		},
		{
			name:  "block comment stripped",
			input: `{"a": /* default */ 1}`,
			want:  `{"a":  1}`,
		},
		{
			name:  "slashes inside string untouched",
			input: `{"url": "http://example.com"}`,
			want:  `{"url": "http://example.com"}`,
		},
		{
			name:  "slashes inside single quoted string untouched",
			input: `{'url': 'http://example.com'}`,
			want:  `{"url": "http://example.com"}`,
		},
		{
			name:  "comment then trailing comma",
			input: "[1, 2, // last\n]",
			want:  "[1, 2 \n]",
		},
		{
			name:  "nested trailing commas",
			input: `{"a": [1, 2,], "b": {"c": 3,},}`,
			want:  `{"a": [1, 2], "b": {"c": 3}}`,
		},
		{
			name:  "unterminated single quote left unterminated",
			input: `{'a`,
			want:  `{"a`,
		},
		{
			name:  "valid input unchanged",
			input: `{"a": [1, 2], "b": null}`,
			want:  `{"a": [1, 2], "b": null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Repair(tt.input))
		})
	}
}

func TestRepairProducesParseableJSON(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`{'a': 'b', 'n': [1, 2, 3,],}`,
		"// header\n{\"a\": 1,}\n",
		`{'deep': {'x': ['y',],},}`,
	}

	for _, input := range inputs {
		assert.True(t, json.Valid([]byte(Repair(input))), "input %q", input)
	}
}

func TestRepairIsIdempotentOnRepairedText(t *testing.T) {
	t.Parallel()

	input := `{'a': [1, 2,], // note
	'b': 'he said "ok"'}`

	once := Repair(input)
	assert.Equal(t, once, Repair(once))
}

package jsontext_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docfmt/pkg/jsontext"
)

func TestFormatPreservesKeyOrder(t *testing.T) {
	t.Parallel()

	got, d := jsontext.Format([]byte(`{"b": 1, "a": 2, "zz": 3}`), jsontext.Options{})
	require.Nil(t, d)

	want := `{
  "b": 1,
  "a": 2,
  "zz": 3
}
`
	assert.Equal(t, want, string(got))
}

func TestFormatNested(t *testing.T) {
	t.Parallel()

	got, d := jsontext.Format([]byte(`{"a": {"b": [1, 2, {}], "c": []}}`), jsontext.Options{})
	require.Nil(t, d)

	want := `{
  "a": {
    "b": [
      1,
      2,
      {}
    ],
    "c": []
  }
}
`
	assert.Equal(t, want, string(got))
}

func TestFormatBareScalars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: `42`, want: "42\n"},
		{input: `"x"`, want: "\"x\"\n"},
		{input: `true`, want: "true\n"},
		{input: `null`, want: "null\n"},
		{input: `1.25e3`, want: "1.25e3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, d := jsontext.Format([]byte(tt.input), jsontext.Options{})
			require.Nil(t, d)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestFormatIdempotent(t *testing.T) {
	t.Parallel()

	input := []byte(`{'b': [1, 2, 3,], 'a': {'nested': 'x, ]'},}`)

	once, d := jsontext.Format(input, jsontext.Options{})
	require.Nil(t, d)

	twice, d := jsontext.Format(once, jsontext.Options{})
	require.Nil(t, d)

	assert.Equal(t, string(once), string(twice))
}

func TestFormatRoundTrip(t *testing.T) {
	t.Parallel()

	input := []byte(`{"name": "Ada", "tags": ["a", "b"], "n": 3, "ok": true, "none": null}`)

	formatted, d := jsontext.Format(input, jsontext.Options{})
	require.Nil(t, d)

	var original, reparsed any
	require.NoError(t, json.Unmarshal(input, &original))
	require.NoError(t, json.Unmarshal(formatted, &reparsed))
	assert.Equal(t, original, reparsed)
}

func TestFormatStringLiteralSafety(t *testing.T) {
	t.Parallel()

	got, d := jsontext.Format([]byte(`{"a": "x, ]"}`), jsontext.Options{})
	require.Nil(t, d)
	assert.Contains(t, string(got), `"x, ]"`)
}

func TestFormatCustomIndent(t *testing.T) {
	t.Parallel()

	got, d := jsontext.Format([]byte(`{"a": 1}`), jsontext.Options{Indent: 4})
	require.Nil(t, d)
	assert.Equal(t, "{\n    \"a\": 1\n}\n", string(got))
}

func TestFormatRepairsCommonMistakes(t *testing.T) {
	t.Parallel()

	got, d := jsontext.Format([]byte(`{'a': 'b'}`), jsontext.Options{})
	require.Nil(t, d)
	assert.Equal(t, "{\n  \"a\": \"b\"\n}\n", string(got))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid object", input: `{"a": 1}`, wantErr: false},
		{name: "valid after repair", input: `{"a": 1,}`, wantErr: false},
		{name: "commented jsonc", input: "{\n  // id\n  \"a\": 1\n}", wantErr: false},
		{name: "bare scalar", input: `42`, wantErr: false},
		{name: "missing value", input: `{"a":}`, wantErr: true},
		{name: "unterminated string", input: `{"a": "b`, wantErr: true},
		{name: "unbalanced brace", input: `{"a": 1`, wantErr: true},
		{name: "two top-level values", input: `{} {}`, wantErr: true},
		{name: "not json at all", input: `hello world`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := jsontext.Validate([]byte(tt.input))
			if tt.wantErr {
				require.NotNil(t, d)
				assert.GreaterOrEqual(t, d.Line, 1)
				assert.GreaterOrEqual(t, d.Column, 1)
				assert.NotEmpty(t, d.Message)
			} else {
				assert.Nil(t, d)
			}
		})
	}
}

func TestValidateEmptyInput(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "   ", "\n\n\t"} {
		d := jsontext.Validate([]byte(input))
		require.NotNil(t, d, "input %q", input)
		assert.Equal(t, 1, d.Line)
		assert.Equal(t, 1, d.Column)
		assert.Equal(t, "no content to parse", d.Message)
	}
}

func TestValidateReportsRepairedCoordinates(t *testing.T) {
	t.Parallel()

	// The unquoted token survives repair; the diagnostic points into the
	// repaired text on line 2, column 8, under the first bad byte.
	d := jsontext.Validate([]byte("{\n  \"a\": oops\n}"))
	require.NotNil(t, d)
	assert.Equal(t, 2, d.Line)
	assert.Equal(t, 8, d.Column)
}

func TestValidatePointsAtOffendingByte(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantLine int
		wantCol  int
		wantMsg  string
	}{
		{
			name:     "unquoted value after repair",
			input:    `{"a": oops,}`,
			wantLine: 1,
			wantCol:  7,
			wantMsg:  "invalid character 'o'",
		},
		{
			name:     "missing value",
			input:    `{"a":}`,
			wantLine: 1,
			wantCol:  6,
			wantMsg:  "invalid character '}'",
		},
		{
			name:     "second top-level value",
			input:    `{} []`,
			wantLine: 1,
			wantCol:  4,
			wantMsg:  "after top-level value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := jsontext.Validate([]byte(tt.input))
			require.NotNil(t, d)
			assert.Equal(t, tt.wantLine, d.Line)
			assert.Equal(t, tt.wantCol, d.Column)
			assert.Contains(t, d.Message, tt.wantMsg)
		})
	}
}

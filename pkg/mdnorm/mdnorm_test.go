package mdnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docfmt/pkg/mdnorm"
)

func TestNormalizeHeadings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "missing space after marker",
			input: "#Title\nbody\n",
			want:  "# Title\n\nbody\n",
		},
		{
			name:  "extra spaces collapse",
			input: "##  Sub\n",
			want:  "## Sub\n",
		},
		{
			name:  "blank line inserted before and after",
			input: "intro\n# Title\nbody\n",
			want:  "intro\n\n# Title\n\nbody\n",
		},
		{
			name:  "existing blanks collapse to one",
			input: "intro\n\n\n\n# Title\n\n\nbody\n",
			want:  "intro\n\n# Title\n\nbody\n",
		},
		{
			name:  "heading at document start gets no leading blank",
			input: "# Title\nbody\n",
			want:  "# Title\n\nbody\n",
		},
		{
			name:  "heading at document end gets no trailing blank",
			input: "body\n#End\n",
			want:  "body\n\n# End\n",
		},
		{
			name:  "consecutive headings",
			input: "# A\n## B\n",
			want:  "# A\n\n## B\n",
		},
		{
			name:  "seven hashes is not a heading",
			input: "#######not a heading\n",
			want:  "#######not a heading\n",
		},
		{
			name:  "deepest level still normalized",
			input: "######Six\n",
			want:  "###### Six\n",
		},
		{
			name:  "trailing whitespace trimmed",
			input: "# Title   \nbody  \n",
			want:  "# Title\n\nbody\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mdnorm.Normalize([]byte(tt.input), mdnorm.Options{})
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mdnorm.Normalize(nil, mdnorm.Options{}))
	assert.Empty(t, mdnorm.Normalize([]byte(""), mdnorm.Options{}))
	assert.Empty(t, mdnorm.Normalize([]byte("\n\n\n"), mdnorm.Options{}))
}

func TestNormalizeTableReflow(t *testing.T) {
	t.Parallel()

	input := "| Name|Age|\n|--|--|\n|Alice|30|\n|Bob| 25|\n"
	want := "| Name  | Age |\n" +
		"| ----- | --- |\n" +
		"| Alice | 30  |\n" +
		"| Bob   | 25  |\n"

	got := mdnorm.Normalize([]byte(input), mdnorm.Options{})
	assert.Equal(t, want, string(got))
}

func TestNormalizeTableReflowIdempotent(t *testing.T) {
	t.Parallel()

	input := []byte("|Name|Age|\n|:--|--:|\n|Alice|30|\n")

	once := mdnorm.Normalize(input, mdnorm.Options{})
	twice := mdnorm.Normalize(once, mdnorm.Options{})
	assert.Equal(t, string(once), string(twice))
}

func TestNormalizePreservesAlignmentMarkers(t *testing.T) {
	t.Parallel()

	input := "|Left|Center|Right|\n|:---|:---:|---:|\n|a|b|c|\n"
	want := "| Left | Center | Right |\n" +
		"| :--- | :----: | ----: |\n" +
		"| a    | b      | c     |\n"

	got := mdnorm.Normalize([]byte(input), mdnorm.Options{})
	assert.Equal(t, want, string(got))
}

func TestNormalizeLeavesMalformedTableAlone(t *testing.T) {
	t.Parallel()

	input := "|A|B|\n|--|--|\n|1|2|3|\n"

	got := mdnorm.Normalize([]byte(input), mdnorm.Options{})
	assert.Equal(t, input, string(got))
}

func TestNormalizeMinColumnWidth(t *testing.T) {
	t.Parallel()

	input := "|A|B|\n|-|-|\n|1|2|\n"
	want := "| A   | B   |\n| --- | --- |\n| 1   | 2   |\n"

	got := mdnorm.Normalize([]byte(input), mdnorm.Options{})
	assert.Equal(t, want, string(got))
}

func TestNormalizeSkipsFencedCodeBlocks(t *testing.T) {
	t.Parallel()

	input := "```\n#not a heading\n|a|b|\n```\n#Real\n"
	want := "```\n#not a heading\n|a|b|\n```\n\n# Real\n"

	got := mdnorm.Normalize([]byte(input), mdnorm.Options{})
	assert.Equal(t, want, string(got))
}

func TestNormalizeTableFollowedByText(t *testing.T) {
	t.Parallel()

	input := "|A|B|\n|---|---|\n|1|2|\nplain text after\n"
	want := "| A   | B   |\n| --- | --- |\n| 1   | 2   |\nplain text after\n"

	got := mdnorm.Normalize([]byte(input), mdnorm.Options{})
	assert.Equal(t, want, string(got))
}

func TestNormalizeIdempotentOnWholeDocument(t *testing.T) {
	t.Parallel()

	input := []byte("#Top\ntext\n\n|A|B|\n|--|--|\n|one|two|\n\n##  Next\nmore\n")

	once := mdnorm.Normalize(input, mdnorm.Options{})
	twice := mdnorm.Normalize(once, mdnorm.Options{})
	assert.Equal(t, string(once), string(twice))
}

func TestValidateTables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantLines []int
	}{
		{
			name:      "well formed table",
			input:     "|Name|Age|\n|--|--|\n|Alice|30|\n",
			wantLines: nil,
		},
		{
			name:      "data row cell count mismatch",
			input:     "|Name|Age|\n|--|--|\n|Alice|30|40|\n",
			wantLines: []int{3},
		},
		{
			name:      "separator cell count mismatch",
			input:     "|Name|Age|\n|--|--|--|\n|Alice|30|\n",
			wantLines: []int{2},
		},
		{
			name:      "mismatch cites first offending row",
			input:     "|A|B|\n|--|--|\n|1|2|\n|1|2|3|\n|4|5|6|\n",
			wantLines: []int{4},
		},
		{
			name:      "two tables each checked",
			input:     "|A|B|\n|--|--|\n|1|2|3|\n\n|C|D|\n|--|--|\n|x|\n",
			wantLines: []int{3, 7},
		},
		{
			name:      "headings are not validation failures",
			input:     "#bad heading\n####### also bad\n",
			wantLines: nil,
		},
		{
			name:      "table inside fence ignored",
			input:     "```\n|A|B|\n|--|--|\n|1|2|3|\n```\n",
			wantLines: nil,
		},
		{
			name:      "no tables at all",
			input:     "just some text\n",
			wantLines: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := mdnorm.ValidateTables([]byte(tt.input))
			require.Len(t, diags, len(tt.wantLines))
			for i, wantLine := range tt.wantLines {
				assert.Equal(t, wantLine, diags[i].Line)
				assert.NotEmpty(t, diags[i].Message)
			}
		})
	}
}

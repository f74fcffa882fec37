package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSuite_ValidFile(t *testing.T) {
	suite, err := LoadSuite("testdata/scenarios/isvalid.yaml")
	require.NoError(t, err)

	assert.Equal(t, "isvalid", suite.Name)
	assert.NotEmpty(t, suite.Description)
	assert.Len(t, suite.Cases, 30)

	first := suite.Cases[0]
	assert.Equal(t, "a=0;b=3", first.Set)
	assert.Equal(t, "a=0,1&b=4", first.Filter)
	require.NotNil(t, first.Expect)
	assert.False(t, *first.Expect)
	assert.Equal(t, []bool{true, false}, first.Clauses)
}

func TestLoadSuite_MissingFile(t *testing.T) {
	_, err := LoadSuite(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read suite file")
}

func TestLoadSuite_FromTempDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: tiny
description: one case
cases:
  - name: one
    set: "a=1"
    filter: "a=1"
    expect: true
`), 0o644))

	suite, err := LoadSuite(path)
	require.NoError(t, err)
	assert.Len(t, suite.Cases, 1)
}

func TestParseSuite_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "unknown field",
			yaml: "name: x\ndescription: d\ncases:\n  - name: a\n    expected: true\n",
			want: "failed to parse YAML",
		},
		{
			name: "missing name",
			yaml: "description: d\ncases:\n  - name: a\n    expect: true\n",
			want: "name is required",
		},
		{
			name: "missing description",
			yaml: "name: x\ncases:\n  - name: a\n    expect: true\n",
			want: "description is required",
		},
		{
			name: "no cases",
			yaml: "name: x\ndescription: d\n",
			want: "cases list is required",
		},
		{
			name: "case without name",
			yaml: "name: x\ndescription: d\ncases:\n  - expect: true\n",
			want: "cases[0]: name is required",
		},
		{
			name: "duplicate case",
			yaml: "name: x\ndescription: d\ncases:\n  - name: a\n    expect: true\n  - name: a\n    expect: false\n",
			want: `cases[1]: duplicate name "a"`,
		},
		{
			name: "no expectation",
			yaml: "name: x\ndescription: d\ncases:\n  - name: a\n    filter: a=1\n",
			want: "one of expect or expect_error is required",
		},
		{
			name: "both expectations",
			yaml: "name: x\ndescription: d\ncases:\n  - name: a\n    expect: true\n    expect_error: boom\n",
			want: "mutually exclusive",
		},
		{
			name: "clauses with expected error",
			yaml: "name: x\ndescription: d\ncases:\n  - name: a\n    expect_error: boom\n    clauses: [true]\n",
			want: "need a filter that parses",
		},
		{
			name: "negative epsilon",
			yaml: "name: x\ndescription: d\nepsilon: -1\ncases:\n  - name: a\n    expect: true\n",
			want: "epsilon must be non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSuite([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

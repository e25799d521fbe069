package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		fm      string
		body    string
		had     bool
		wantErr error
	}{
		{name: "no frontmatter", input: "# Title\n", body: "# Title\n"},
		{name: "lf", input: "---\ntitle: A\n---\n# Body\n", fm: "title: A\n", body: "# Body\n", had: true},
		{name: "crlf", input: "---\r\ntitle: A\r\n---\r\nbody", fm: "title: A\r\n", body: "body", had: true},
		{name: "empty block", input: "---\n---\nbody", fm: "", body: "body", had: true},
		{name: "closing at eof", input: "---\ntitle: A\n---", fm: "title: A\n", body: "", had: true},
		{name: "dashes inside value", input: "---\ntitle: a\n---b\n---\nx", fm: "title: a\n---b\n", body: "x", had: true},
		{name: "missing close", input: "---\ntitle: A\n# Body\n", wantErr: ErrMissingClosingDelimiter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body, had, err := Split([]byte(tt.input))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.had, had)
			assert.Equal(t, tt.fm, string(fm))
			assert.Equal(t, tt.body, string(body))
		})
	}
}

func TestParse(t *testing.T) {
	fields, body, err := Parse([]byte("---\ntitle: \" Hooks \"\norder: 3\n---\ntext"))
	require.NoError(t, err)
	assert.Equal(t, "Hooks", String(fields, "title"))
	assert.Equal(t, "", String(fields, "order"))
	assert.Equal(t, "", String(fields, "missing"))
	assert.Equal(t, "text", string(body))

	fields, body, err = Parse([]byte("plain"))
	require.NoError(t, err)
	assert.Empty(t, fields)
	assert.Equal(t, "plain", string(body))

	_, _, err = Parse([]byte("---\n: [\n---\n"))
	assert.Error(t, err)
}

package interactive

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineAsker_Ask(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "answer", input: "Bar\n", want: "Bar"},
		{name: "blank accepts default", input: "\n", want: ""},
		{name: "whitespace trimmed", input: "  Bar  \r\n", want: "Bar"},
		{name: "unterminated last line", input: "Bar", want: "Bar"},
		{name: "closed input", input: "", wantErr: ErrInputClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			asker := NewLineAsker(strings.NewReader(tt.input), &out)

			got, err := asker.Ask("Project name", "Foo")

			assert.Equal(t, "Project name: (Foo) ", out.String())
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

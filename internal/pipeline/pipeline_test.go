package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = `This PR adds the deployment settings.

` + "```ENV" + `
# deployment settings
PORT=3000
not a valid line
DEBUG=true
API_KEY="secret-key-123"
EMPTY_VALUE=
` + "```" + `

Text after the block is ignored.
` + "```ENV" + `
IGNORED=yes
` + "```" + `
`

func TestRunFormats(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{
			format: "json",
			want:   `{"PORT":"3000","DEBUG":"true","API_KEY":"secret-key-123","EMPTY_VALUE":""}`,
		},
		{
			format: "env",
			want:   "PORT=3000\nDEBUG=true\nAPI_KEY=secret-key-123\nEMPTY_VALUE=",
		},
		{
			format: "dotenv",
			want:   "PORT=3000\nDEBUG=true\nAPI_KEY=secret-key-123\nEMPTY_VALUE=",
		},
		{
			format: "shell",
			want:   "export PORT=3000\nexport DEBUG=true\nexport API_KEY=secret-key-123\nexport EMPTY_VALUE=",
		},
		{
			format: "yaml",
			want:   "PORT: \"3000\"\nDEBUG: \"true\"\nAPI_KEY: secret-key-123\nEMPTY_VALUE: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := Run(sampleInput, tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Every format carries exactly the valid pairs: comments, blanks, and
// the malformed line are dropped, nothing else is.
func TestRunEntryCount(t *testing.T) {
	for _, format := range []string{"env", "shell", "yaml"} {
		out, err := Run(sampleInput, format)
		require.NoError(t, err)
		assert.Len(t, strings.Split(out, "\n"), 4, format)
	}
}

func TestRunAbsentBlock(t *testing.T) {
	input := "A description with no fenced block."

	for format, want := range map[string]string{
		"json":   "{}",
		"yaml":   "{}",
		"env":    "",
		"dotenv": "",
		"shell":  "",
	} {
		got, err := Run(input, format)
		require.NoError(t, err, format)
		assert.Equal(t, want, got, format)
	}
}

func TestRunEmptyBlock(t *testing.T) {
	input := "```ENV\n```"

	got, err := Run(input, "json")
	require.NoError(t, err)
	assert.Equal(t, "{}", got)

	got, err = Run(input, "env")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

// recordingHandler collects slog record messages for assertions.
type recordingHandler struct {
	messages *[]string
}

func (h recordingHandler) Enabled(context.Context, slog.Level) bool { return true }
func (h recordingHandler) WithAttrs([]slog.Attr) slog.Handler       { return h }
func (h recordingHandler) WithGroup(string) slog.Handler            { return h }

func (h recordingHandler) Handle(_ context.Context, r slog.Record) error {
	*h.messages = append(*h.messages, r.Message)
	return nil
}

// captureLogs routes the default logger into a message slice for the
// duration of the test.
func captureLogs(t *testing.T) *[]string {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	messages := &[]string{}
	slog.SetDefault(slog.New(recordingHandler{messages: messages}))
	return messages
}

// An empty block and an absent block produce identical stdout but must
// leave distinguishable traces in the diagnostic stream.
func TestRunEmptyVersusAbsentTraces(t *testing.T) {
	messages := captureLogs(t)

	_, err := Run("```ENV\n```", "json")
	require.NoError(t, err)
	assert.Contains(t, *messages, "found ENV block with zero variables")
	assert.NotContains(t, *messages, "no ENV block found, emitting empty result")

	*messages = nil
	_, err = Run("no block here", "json")
	require.NoError(t, err)
	assert.Contains(t, *messages, "no ENV block found, emitting empty result")
	assert.NotContains(t, *messages, "found ENV block with zero variables")
}

// Malformed lines surface as warnings without failing the run.
func TestRunMalformedLineWarns(t *testing.T) {
	messages := captureLogs(t)

	out, err := Run("```ENV\nPORT=3000\nnot a valid line\n```", "env")
	require.NoError(t, err)
	assert.Equal(t, "PORT=3000", out)
	assert.Contains(t, *messages, "skipping malformed line")
}

func TestRunUnclosedBlockIsAbsent(t *testing.T) {
	got, err := Run("```ENV\nPORT=3000\n", "json")
	require.NoError(t, err)
	assert.Equal(t, "{}", got)
}

func TestRunUnknownFormat(t *testing.T) {
	_, err := Run(sampleInput, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
	assert.Contains(t, err.Error(), "json")
}

// env output fed back through the pipeline inside a fresh fence
// reproduces itself.
func TestRunEnvRoundTrip(t *testing.T) {
	first, err := Run(sampleInput, "env")
	require.NoError(t, err)

	refed := "```ENV\n" + first + "\n```"
	second, err := Run(refed, "env")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRunIdempotent(t *testing.T) {
	for _, format := range []string{"json", "env", "shell", "yaml"} {
		a, err := Run(sampleInput, format)
		require.NoError(t, err)
		b, err := Run(sampleInput, format)
		require.NoError(t, err)
		assert.Equal(t, a, b, format)
	}
}

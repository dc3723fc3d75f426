package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := map[string]Mode{
		"":         ModeAuto,
		"auto":     ModeAuto,
		"text":     ModeText,
		"markdown": ModeMarkdown,
		"md":       ModeMarkdown,
		"json":     ModeJSON,
		"html":     ModeAuto,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseMode(in), in)
	}
}

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		mode  Mode
		isTTY bool
		want  Mode
	}{
		{ModeAuto, true, ModeText},
		{ModeAuto, false, ModeMarkdown},
		{ModeJSON, true, ModeJSON},
		{ModeText, false, ModeText},
		{"", false, ModeMarkdown},
	}
	for _, tt := range tests {
		r := NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, tt.isTTY, tt.mode)
		assert.Equal(t, tt.want, r.EffectiveMode(), "mode %q tty %v", tt.mode, tt.isTTY)
	}
}

func TestNewRenderer_BufferIsNotTerminal(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeAuto)
	assert.False(t, r.IsTTY())
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestRenderer_Messages(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	r := NewRendererWithTTY(out, errOut, false, ModeMarkdown)

	r.Success("all good")
	r.Warning("careful")
	r.Error("broken")
	r.Printf("%d items\n", 3)

	assert.Equal(t, "all good\n3 items\n", out.String())
	assert.Equal(t, "warning: careful\nerror: broken\n", errOut.String())
}

func TestRenderer_JSONSuppressesSuccess(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeJSON)
	r.Success("quiet")
	require.NoError(t, r.JSON(CheckSummary{Errors: 2}))

	var got CheckSummary
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 2, got.Errors)
}

func TestRenderer_Table(t *testing.T) {
	t.Run("markdown", func(t *testing.T) {
		out := &bytes.Buffer{}
		r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeMarkdown)
		r.Table([]string{"ID", "Severity"}, [][]string{{"EN06", "warning"}})
		assert.Contains(t, out.String(), "| EN06 | warning |")
	})

	t.Run("text", func(t *testing.T) {
		out := &bytes.Buffer{}
		r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeText)
		r.Table([]string{"ID"}, [][]string{{"ST01"}})
		assert.Contains(t, out.String(), "ST01")
		assert.Contains(t, out.String(), "+")
	})
}

func TestPlainStyles_NoEscapes(t *testing.T) {
	s := PlainStyles()
	assert.Equal(t, "x", s.Error.Render("x"))
	assert.Equal(t, "x", s.Header1.Render("x"))
}

func TestRenderer_HeaderAndStatus(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeMarkdown)
	r.Header(2, "Snapshots")
	r.StatusLine("snapshots/color.yaml", "success", "created")

	assert.Equal(t, "## Snapshots\n\n- snapshots/color.yaml (created)\n", out.String())
}

package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_WritesServiceAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "wheelspin", false)

	l.Debug().Msg("hidden")
	l.Info().Str("wheel_id", "w1").Msg("spin recorded")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "spin recorded")
	assert.Contains(t, out, "service:wheelspin")
	assert.Contains(t, out, "wheel_id:w1")
}

func TestNew_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "wheelspin", true)

	l.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

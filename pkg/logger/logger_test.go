package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})

	Debugf("hidden %d", 1)
	assert.Empty(t, buf.String())

	SetVerbose(true)
	Debugf("shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")

	buf.Reset()
	Printf("scanned %s", "/Applications")
	assert.Contains(t, buf.String(), "level=info")
	assert.Contains(t, buf.String(), "scanned /Applications")
}

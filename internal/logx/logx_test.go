package logx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelsAndSink(t *testing.T) {
	Reset()
	var sink bytes.Buffer
	SetOutput(&sink)
	SetLevel(Warn)
	defer func() {
		SetOutput(nil)
		SetLevel(Info)
		Reset()
	}()

	Infof("dropped %d", 1)
	Warnf("kept %s", "warn")
	Errorf("kept %s", "error")

	lines := Lines()
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "WARN  kept warn")
	assert.Contains(t, lines[1], "ERROR kept error")
	assert.Equal(t, 2, strings.Count(sink.String(), "\n"))
}

func TestBufferIsBounded(t *testing.T) {
	Reset()
	defer Reset()

	for i := 0; i < maxLines+20; i++ {
		Infof("line %d", i)
	}
	lines := Lines()
	assert.Len(t, lines, maxLines)
	assert.True(t, strings.HasSuffix(lines[0], "line 20"))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Error, ParseLevel(" error "))
	assert.Equal(t, Info, ParseLevel("nonsense"))
}

package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleLogger_FormatsKeyValues(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewWriterLogger(&out, &errOut)

	l.Info("chat criado", "id", "abc", "status", 201)
	l.Error("falha", "error", "boom")

	assert.Contains(t, out.String(), "INFO: ")
	assert.Contains(t, out.String(), "chat criado id=abc status=201")
	assert.Contains(t, errOut.String(), "ERROR: ")
	assert.Contains(t, errOut.String(), "falha error=boom")
}

func TestSimpleLogger_OddKeyValues(t *testing.T) {
	var out bytes.Buffer
	l := NewWriterLogger(&out, &out)

	l.Warn("aviso", "sozinho")
	assert.Contains(t, out.String(), "aviso sozinho")
}

func TestSimpleLogger_DebugDisabled(t *testing.T) {
	var out bytes.Buffer
	l := NewWriterLogger(&out, &out)
	l.debug = false

	l.Debug("não aparece")
	assert.Empty(t, out.String())
}

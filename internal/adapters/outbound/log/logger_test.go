package log

import (
	"context"
	"io"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger_Initialize(t *testing.T) {
	init := InitLogger{}

	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[*log.Logger]()
	assert.NoError(t, err)
}

func TestOutputWriter(t *testing.T) {
	tests := map[string]struct {
		output    string
		expected  io.Writer
		expectErr bool
	}{
		"default": {output: "", expected: os.Stdout},
		"stdout":  {output: "stdout", expected: os.Stdout},
		"stderr":  {output: "stderr", expected: os.Stderr},
		"discard": {output: "discard", expected: io.Discard},
		"unknown": {output: "syslog", expectErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w, err := outputWriter(tt.output)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, w)
		})
	}
}

func TestNewLogger(t *testing.T) {
	tests := map[string]struct {
		debug        bool
		expectSource bool
	}{
		"default": {debug: false, expectSource: false},
		"debug":   {debug: true, expectSource: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out := &strings.Builder{}
			logger := NewLogger(out, tt.debug)

			logger.Printf("Bridge: connected")

			assert.Contains(t, out.String(), "Bridge: connected")
			assert.Equal(t, tt.expectSource, strings.Contains(out.String(), "logger_test.go"))
		})
	}
}

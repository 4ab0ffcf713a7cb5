package log

import (
	"context"
	"io"
	"log"
	"os"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger_Initialize(t *testing.T) {
	init := InitLogger{Output: "discard"}

	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	logger, err := depend.Resolve[*log.Logger]()
	assert.NoError(t, err)
	assert.Equal(t, io.Discard, logger.Writer())
}

func TestInitLogger_writer(t *testing.T) {
	tests := map[string]struct {
		output string
		want   io.Writer
	}{
		"default-stdout": {output: "", want: os.Stdout},
		"stdout":         {output: "stdout", want: os.Stdout},
		"stderr":         {output: "stderr", want: os.Stderr},
		"discard":        {output: "discard", want: io.Discard},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, InitLogger{Output: tt.output}.writer())
		})
	}
}

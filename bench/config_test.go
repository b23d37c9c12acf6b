package bench

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 256, cfg.Bytes)
	assert.Equal(t, "testfile", cfg.Path)
	assert.Equal(t, 1000, cfg.Ops)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"defaults", DefaultConfig(), nil},
		{"one byte", Config{Bytes: 1, Path: "f", Ops: 1}, nil},
		{"max bytes", Config{Bytes: MaxBytes, Path: "f", Ops: 1}, nil},
		{"over max", Config{Bytes: MaxBytes + 1, Path: "f", Ops: 1}, ErrBytesTooLarge},
		{"way over max", Config{Bytes: 999999, Path: "f", Ops: 10}, ErrBytesTooLarge},
		{"zero bytes", Config{Bytes: 0, Path: "f", Ops: 1}, ErrIllegalBytes},
		{"negative bytes", Config{Bytes: -1, Path: "f", Ops: 1}, ErrIllegalBytes},
		{"zero ops", Config{Bytes: 256, Path: "f", Ops: 0}, ErrIllegalOps},
		{"negative ops", Config{Bytes: 256, Path: "f", Ops: -5}, ErrIllegalOps},
		{"empty path", Config{Bytes: 256, Path: "", Ops: 1}, ErrEmptyPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.True(t, errors.Is(err, tt.wantErr),
				"got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestBytesTooLargeNamesLimit(t *testing.T) {
	msg := ErrBytesTooLarge.Error()

	assert.True(t, strings.Contains(msg, strconv.Itoa(MaxBytes)), msg)
	assert.Equal(t, "max -b option 102400", msg)
}

package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "Test1 OK",
			args: []string{"cmd", "-a", "https://erp.example", "-p", "50", "-t", "30", "-d", "creds.db"},
			expected: &Config{
				APIBaseURL:     "https://erp.example",
				PageSize:       50,
				RequestTimeout: 30 * time.Second,
				CredentialsDB:  "creds.db",
			},
		},
		{
			name:        "Test2 incorrect timeout",
			args:        []string{"cmd", "-a", "https://erp.example", "-t", "abc"},
			expectPanic: true,
			expected:    &Config{},
		},
		{
			name:        "Test3 incorrect page size",
			args:        []string{"cmd", "-p", "many"},
			expectPanic: true,
			expected:    &Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}

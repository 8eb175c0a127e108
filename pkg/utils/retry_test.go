package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	permanent := errors.New("permanent")
	temporary := errors.New("temporary")

	testCases := []struct {
		name      string
		failures  []error
		stopOn    []error
		wantCalls int
		wantErr   error
	}{
		{
			name:      "success on first attempt",
			wantCalls: 1,
		},
		{
			name:      "success after temporary failures",
			failures:  []error{temporary, temporary},
			wantCalls: 3,
		},
		{
			name:      "gives up after max attempts",
			failures:  []error{temporary, temporary, temporary, temporary},
			wantCalls: 3,
			wantErr:   temporary,
		},
		{
			name:      "stops on permanent error",
			failures:  []error{permanent, temporary},
			stopOn:    []error{permanent},
			wantCalls: 1,
			wantErr:   permanent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			fn := func() error {
				calls++
				if calls <= len(tc.failures) {
					return tc.failures[calls-1]
				}
				return nil
			}

			cfg := RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, Multiplier: 2}
			err := Retry(cfg, fn, tc.stopOn...)

			assert.Equal(t, tc.wantCalls, calls)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

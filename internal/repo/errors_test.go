package repo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		wantRejected bool
	}{
		{name: "nil", err: nil},
		{name: "not a postgres error", err: errors.New("connection reset")},
		{name: "numeric overflow", err: &pq.Error{Code: "22003"}, wantRejected: true},
		{name: "check violation", err: &pq.Error{Code: codeCheckViolation}, wantRejected: true},
		{name: "wrapped unique violation", err: fmt.Errorf("insert order: %w", &pq.Error{Code: "23505"}), wantRejected: true},
		{name: "serialization failure", err: &pq.Error{Code: "40001"}},
		{name: "too many connections", err: &pq.Error{Code: "53300"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(tc.err)
			if tc.err == nil {
				assert.NoError(t, got)
				return
			}
			assert.Equal(t, tc.wantRejected, errors.Is(got, entities.ErrDataRejected))
			assert.Equal(t, pqCode(tc.err), pqCode(got))
		})
	}
}

func TestClassify_KeepsCodeChecks(t *testing.T) {
	err := classify(&pq.Error{Code: codeForeignKey})
	assert.ErrorIs(t, err, entities.ErrDataRejected)
	assert.True(t, isForeignKeyViolation(err))
	assert.False(t, isCheckViolation(err))
}

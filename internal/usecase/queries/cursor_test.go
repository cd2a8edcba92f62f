//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/aljonb/sched/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor(t *testing.T) {
	t.Run("round trips at microsecond precision", func(t *testing.T) {
		start := time.Date(2025, 3, 3, 9, 30, 0, 123456789, time.UTC)
		id := uuid.New()

		gotStart, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(start, id))
		require.NoError(t, err)
		assert.True(t, start.Truncate(time.Microsecond).Equal(gotStart))
		assert.Equal(t, id, gotID)
	})

	id := uuid.New()
	encode := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }
	testCases := []struct {
		name   string
		cursor string
	}{
		{name: "empty", cursor: ""},
		{name: "not base64", cursor: "###"},
		{name: "plain timestamp and id", cursor: "1741000000000000000-" + id.String()},
		{name: "unknown version", cursor: encode("v9:1741000000000000:" + id.String())},
		{name: "bad timestamp", cursor: encode("a1:soon:" + id.String())},
		{name: "bad id", cursor: encode("a1:1741000000000000:nope")},
		{name: "extra field", cursor: encode("a1:1741000000000000:" + id.String() + ":x")},
	}
	for _, tc := range testCases {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tc.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-3))
	assert.Equal(t, 50, queries.ValidateLimit(50))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}

package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewRecordID_TimeOrdered(t *testing.T) {
	first := NewRecordID()
	second := NewRecordID()

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	require.Equal(t, uuid.Version(7), parsed.Version())
	require.NotEqual(t, first, second)
	require.Less(t, first, second)
}

func TestRequestID(t *testing.T) {
	const upstream = "3f2b8c1e-4d5a-4b6c-9e7f-0a1b2c3d4e5f"

	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{name: "upstream_uuid_kept", header: upstream, keep: true},
		{name: "missing", header: ""},
		{name: "not_a_uuid", header: "<script>alert(1)</script>"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RequestID(tc.header)
			if tc.keep {
				require.Equal(t, upstream, got)
				return
			}
			_, err := uuid.Parse(got)
			require.NoError(t, err)
			require.NotEqual(t, tc.header, got)
		})
	}
}

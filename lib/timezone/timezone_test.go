package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTrailingDay(t *testing.T) {
	now := time.Date(2024, time.January, 8, 10, 0, 0, 0, Location)
	start, end := TrailingDay(now)

	require.Equal(t, time.Date(2024, time.January, 7, 10, 0, 0, 0, Location), start)
	require.Equal(t, now, end)
}

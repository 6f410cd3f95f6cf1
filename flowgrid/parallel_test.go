package flowgrid_test

import (
	"context"
	"errors"
	"testing"

	"github.com/avkoehl/streamkit/flowgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelSegmentsPreservesOrder(t *testing.T) {
	results, err := flowgrid.ParallelSegments(context.Background(), 50, func(_ context.Context, i int) (int, error) {
		return i * i, nil
	})
	require.NoError(t, err)
	for i, v := range results {
		assert.Equal(t, i*i, v)
	}
}

func TestParallelSegmentsPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	_, err := flowgrid.ParallelSegments(context.Background(), 10, func(_ context.Context, i int) (int, error) {
		if i == 5 {
			return 0, boom
		}
		return i, nil
	})
	assert.ErrorIs(t, err, boom)
}

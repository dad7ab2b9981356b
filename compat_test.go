package ksuid

import (
	"testing"
	"time"

	segment "github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Identifiers must be interchangeable with github.com/segmentio/ksuid, which
// uses the same layout, epoch and alphabet.

func TestCompatEncode(t *testing.T) {
	for i := 0; i < 500; i++ {
		theirs := segment.New()
		ours, err := FromBytes(theirs.Bytes())
		require.NoError(t, err)

		assert.Equal(t, theirs.String(), ours.String())
		assert.Equal(t, theirs.Time().Unix(), ours.Timestamp().Unix())
		assert.Equal(t, theirs.Timestamp(), ours.RawTimestamp())
		assert.Equal(t, theirs.Payload(), ours.Payload())
	}
}

func TestCompatDecode(t *testing.T) {
	for i := 0; i < 500; i++ {
		ours := New()

		theirs, err := segment.Parse(ours.String())
		require.NoError(t, err)
		assert.Equal(t, ours.Bytes(), theirs.Bytes())
	}
}

func TestCompatBoundaries(t *testing.T) {
	assert.Equal(t, segment.Nil.String(), Nil.String())
	assert.Equal(t, segment.Max.String(), Max.String())

	ts := time.Unix(1621627443, 0)
	theirs, err := segment.FromParts(ts, make([]byte, 16))
	require.NoError(t, err)

	ours, err := FromParts(ts, make([]byte, 16))
	require.NoError(t, err)
	assert.Equal(t, theirs.String(), ours.String())
}

func TestCompatOrdering(t *testing.T) {
	a, b := New(), New()
	assert.Equal(t, segment.Compare(segment.KSUID(a), segment.KSUID(b)), Compare(a, b))
}

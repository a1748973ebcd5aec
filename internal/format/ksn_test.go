package format

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSoundTracks(t *testing.T) {
	b := make([]byte, 0x40)
	off := 4
	copy(b[off:], SoundHeaderSignature[:])
	for i := 0; i < SoundTrackCount; i++ {
		PutU32(b, off+SoundTrackSizesOffset+4*i, uint32(i*10))
	}

	tracks, err := SoundTracks(b, off)
	require.NoError(t, err)
	require.Equal(t, [SoundTrackCount]uint32{0, 10, 20, 30, 40, 50}, tracks)
	require.True(t, HasAudio(tracks))
	require.False(t, HasAudio([SoundTrackCount]uint32{}))

	_, err = SoundTracks(b[:off+0x18], off)
	require.True(t, errors.Is(err, ErrOutOfBounds))
}

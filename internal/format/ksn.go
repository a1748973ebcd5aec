package format

import (
	"fmt"

	"github.com/joshuapare/kwzverify/internal/buf"
)

// SoundTracks reads the six u32 track size words of the KSN section at off.
func SoundTracks(b []byte, off int) ([SoundTrackCount]uint32, error) {
	var tracks [SoundTrackCount]uint32
	for i := range tracks {
		v, err := buf.U32LE(b, off+SoundTrackSizesOffset+4*i)
		if err != nil {
			return tracks, fmt.Errorf("ksn track %d: %w", i, err)
		}
		tracks[i] = v
	}
	return tracks, nil
}

// HasAudio reports whether any track size is non-zero.
func HasAudio(tracks [SoundTrackCount]uint32) bool {
	for _, t := range tracks {
		if t != 0 {
			return true
		}
	}
	return false
}

package audio

import (
	"encoding/binary"
	"math"
)

// FloatToInt16 converts samples in [-1, 1] to signed 16-bit PCM. Values
// outside the range are clipped and NaN becomes silence.
func FloatToInt16(samples []float64) []int16 {
	out := make([]int16, len(samples))

	for i, s := range samples {
		switch {
		case math.IsNaN(s):
			s = 0
		case s > 1:
			s = 1
		case s < -1:
			s = -1
		}

		out[i] = int16(math.Round(s * math.MaxInt16))
	}

	return out
}

// Int16ToBytes converts samples to S16LE (signed 16-bit little-endian) bytes.
func Int16ToBytes(samples []int16) []byte {
	if len(samples) == 0 {
		return nil
	}

	data := make([]byte, len(samples)*2)

	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(s))
	}

	return data
}

// This file is part of bignum.
//
// bignum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// bignum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with bignum.  If not, see <https://www.gnu.org/licenses/>.

// Package sonify renders a BigInt as audible tones, one per decimal
// digit (most significant digit first), so its magnitude can be
// listened to rather than read -- a novelty on top of the bigint core
// in the spirit of the teacher's own gui/sdlaudio TV-audio mixer, here
// driving a standalone go-audio/audio buffer instead of a live mixer.
package sonify

import (
	"fmt"
	"math"

	"github.com/go-audio/audio"
	"github.com/jetsetilly/bignum/bigint"
)

const (
	// SampleRate is the sample rate of the rendered buffer.
	SampleRate = 44100

	// toneDuration is how long each digit's tone lasts.
	toneDuration = 120 // milliseconds

	// baseFrequency is the tone for digit 0; each subsequent digit
	// steps up by semitoneRatio, so the sequence of tones rises and
	// falls the way the digits themselves do.
	baseFrequency = 220.0 // A3
	semitoneRatio = 1.0594630943592953
)

// digitFrequency returns the tone frequency for a single BCD digit
// (0-9), one equal-tempered semitone per unit of digit value above
// baseFrequency.
func digitFrequency(digit byte) float64 {
	return baseFrequency * math.Pow(semitoneRatio, float64(digit))
}

// Render returns an audio.IntBuffer containing one sine tone per
// decimal digit of x (most significant first), each toneDuration
// milliseconds long, separated by a brief silence. The sign is not
// sonified; callers that care about it can inspect x.Sign() directly.
func Render(x *bigint.BigInt) (*audio.IntBuffer, error) {
	decimal := x.String()
	start := 0
	if len(decimal) > 0 && (decimal[0] == '-' || decimal[0] == '+') {
		start = 1
	}

	samplesPerTone := SampleRate * toneDuration / 1000
	gapSamples := samplesPerTone / 8

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: SampleRate},
		SourceBitDepth: 16,
	}

	for i := start; i < len(decimal); i++ {
		c := decimal[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("sonify: unexpected character %q in %q", c, decimal)
		}
		freq := digitFrequency(c - '0')
		for s := 0; s < samplesPerTone; s++ {
			t := float64(s) / float64(SampleRate)
			v := math.Sin(2 * math.Pi * freq * t)
			buf.Data = append(buf.Data, int(v*float64(math.MaxInt16)*0.6))
		}
		for s := 0; s < gapSamples; s++ {
			buf.Data = append(buf.Data, 0)
		}
	}

	return buf, nil
}

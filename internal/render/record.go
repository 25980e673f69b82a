package render

import (
	"encoding/binary"
	"math"

	"lava-lamp/internal/lava"
)

// RecordFloats is the number of float32 values per packed ball: position and
// radius followed by RGBA color.
const RecordFloats = 8

// RecordBytes is the size of one packed ball.
const RecordBytes = RecordFloats * 4

// Pack writes up to lava.MaxBalls records into dst and returns how many were
// written. dst must hold RecordFloats values per ball; extra balls that do
// not fit are dropped.
func Pack(dst []float32, balls []lava.RenderData) int {
	n := min(len(balls), lava.MaxBalls, len(dst)/RecordFloats)
	for i := 0; i < n; i++ {
		b := balls[i]
		o := i * RecordFloats
		copy(dst[o:o+4], b.Position[:])
		copy(dst[o+4:o+8], b.Color[:])
	}
	return n
}

// PackBytes packs the records as little-endian float32s, the layout expected
// by GPU buffer uploads.
func PackBytes(balls []lava.RenderData) []byte {
	floats := make([]float32, min(len(balls), lava.MaxBalls)*RecordFloats)
	n := Pack(floats, balls)
	out := make([]byte, n*RecordBytes)
	for i, f := range floats[:n*RecordFloats] {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(f))
	}
	return out
}

// Uniforms splits the records into the position and color arrays used by the
// shader, each padded to lava.MaxBalls vec4s.
func Uniforms(balls []lava.RenderData) (positions, colors []float32, count int) {
	positions = make([]float32, lava.MaxBalls*4)
	colors = make([]float32, lava.MaxBalls*4)
	count = min(len(balls), lava.MaxBalls)
	for i := 0; i < count; i++ {
		copy(positions[i*4:i*4+4], balls[i].Position[:])
		copy(colors[i*4:i*4+4], balls[i].Color[:])
	}
	return positions, colors, count
}

// Package wavefile reads and writes uncompressed PCM WAV containers at
// arbitrary bit depths.
//
// A container is opened either for sequential reading (Open, OpenBytes)
// or for sequential writing with a frame count declared up front (New).
// Samples are stored on disk packed little-endian at byte granularity,
// from 1 to 8 bytes per sample, and are exchanged with the caller as
// native ints, int64s, or normalized float64s, in interleaved or planar
// buffer shapes:
//
//   - ReadFrames / WriteFrames ([]int)
//   - ReadFramesInt64 / WriteFramesInt64 ([]int64)
//   - ReadFramesFloat / WriteFramesFloat ([]float64)
//   - ...Planar variants ([][]T, one slice per channel)
//
// Only compression code 1 (linear PCM) is supported; any other payload
// is rejected at open time. Handles are not safe for concurrent use.
package wavefile

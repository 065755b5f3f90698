// Package bitstream implements MSB-first bit packing over 32-bit word buffers.
//
// Writer appends fixed-width fields and Elias gamma/delta codes into a caller-owned
// []uint32. Reader replays them. Both sides work on whole words: bit 31 of word 0 is the
// first bit of the stream, and Flush pads the last partial word with zero bits.
//
// Neither side ever touches memory outside the slice it was given. A Writer that runs
// out of room records errs.ErrCapacityExceeded and drops further words. A Reader that
// runs past its input yields zero bits and reports Overrun, so a decoder driven by a
// corrupted count still terminates without reading past len(in).
//
// # Basic Usage
//
//	w := bitstream.NewWriter(out)
//	w.WriteBits(5, 3)
//	w.WriteGamma(1000)
//	if err := w.Flush(); err != nil {
//		return err
//	}
//
//	r := bitstream.NewReader(out[:w.Size()])
//	v := r.ReadBits(3)     // 5
//	g := r.ReadGamma()     // 1000
//	if err := r.Err(); err != nil {
//		return err
//	}
//
// Writers and Readers are not safe for concurrent use.
package bitstream

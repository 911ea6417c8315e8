// Package archive wraps a finalized wire payload in an optional compression
// envelope. It sits strictly above the wire format: the wire format itself
// never carries compression framing, so a Decoder can always parse a
// payload's header without knowing anything about how (or whether) it was
// compressed on disk or over the network.
//
// An archive is one tag byte (the format.CompressionType) followed by the
// codec's compressed output. Pack chooses a codec and produces that framed
// blob; Unpack reads the tag and reverses it, handing back the original
// finalized wire payload unchanged.
package archive

import (
	"time"

	"github.com/arloliu/recio/compress"
	"github.com/arloliu/recio/errs"
	"github.com/arloliu/recio/format"
)

// Pack compresses payload (a finalized wire.Encoder output) with codec and
// prepends a one-byte compression tag. The returned CompressionStats lets
// callers log or export the codec's effectiveness on this payload.
func Pack(payload []byte, codec format.CompressionType) ([]byte, compress.CompressionStats, error) {
	c, err := compress.GetCodec(codec)
	if err != nil {
		return nil, compress.CompressionStats{}, err
	}

	start := time.Now()
	compressed, err := c.Compress(payload)
	elapsed := time.Since(start)
	if err != nil {
		return nil, compress.CompressionStats{}, err
	}

	stats := compress.CompressionStats{
		Algorithm:         codec,
		OriginalSize:      int64(len(payload)),
		CompressedSize:    int64(len(compressed)),
		CompressionTimeNs: elapsed.Nanoseconds(),
	}
	stats.Ratio = stats.CompressionRatio()

	out := make([]byte, 0, len(compressed)+1)
	out = append(out, byte(codec))
	out = append(out, compressed...)

	return out, stats, nil
}

// Unpack reads the leading compression tag from archived and reverses it,
// returning the original finalized wire payload alongside the
// CompressionStats for the reversed operation (OriginalSize/CompressedSize
// refer to the decompressed/compressed sizes respectively, matching Pack's
// convention).
func Unpack(archived []byte) ([]byte, compress.CompressionStats, error) {
	if len(archived) < 1 {
		return nil, compress.CompressionStats{}, errs.ErrInvalidLength
	}

	tag := format.CompressionType(archived[0])

	c, err := compress.GetCodec(tag)
	if err != nil {
		return nil, compress.CompressionStats{}, errs.ErrUnknownCompression
	}

	start := time.Now()
	payload, err := c.Decompress(archived[1:])
	elapsed := time.Since(start)
	if err != nil {
		return nil, compress.CompressionStats{}, err
	}

	stats := compress.CompressionStats{
		Algorithm:           tag,
		OriginalSize:        int64(len(payload)),
		CompressedSize:      int64(len(archived) - 1),
		DecompressionTimeNs: elapsed.Nanoseconds(),
	}
	stats.Ratio = stats.CompressionRatio()

	return payload, stats, nil
}

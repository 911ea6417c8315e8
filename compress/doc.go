// Package compress provides compression and decompression codecs for recio
// archive payloads.
//
// # Overview
//
// A finalized wire payload (header + Fixed region + VarIndex region + Data
// region) compresses unevenly: the header and VarIndex are small, dense
// integers with little redundancy, while the Data region's var1/var2
// segments (names, tags, nested records) often repeat enough to compress
// well. This package supplies one codec per tradeoff so the archive
// package can pick one without caring about the implementation:
//
//   - None: no compression (fastest, largest)
//   - Zstd: best compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fastest decompression, moderate compression
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Choosing a codec
//
// | Workload                          | Recommended | Reason                         |
// |------------------------------------|-------------|--------------------------------|
// | Storage-constrained / cold archive | Zstd        | Best compression ratio          |
// | Write-heavy, latency-sensitive     | S2          | Balanced speed and compression  |
// | Read-heavy, latency-sensitive      | LZ4         | Fastest decompression           |
// | CPU-constrained                    | None        | No compression overhead         |
//
// # Memory and thread safety
//
// All codecs are stateless and safe for concurrent use. The LZ4 codec and
// the pure-Go Zstd codec reuse their working state through package-level
// sync.Pools declared in this package; S2 and None keep no pooled state. Zstd carries the largest working set
// (encoder/decoder state in the low megabytes); S2 and LZ4 stay in the
// tens to low hundreds of kilobytes; None has no overhead.
//
// # Errors
//
// Compress can fail on oversized input or allocation failure. Decompress
// can additionally fail on corrupted input, a format mismatch (data
// compressed with a different codec than the one decompressing it), or a
// decompressed size that exceeds the codec's internal limit.
//
// # Integration with the archive package
//
// archive wraps a finalized wire payload with a single leading tag byte
// identifying the codec used:
//
//	packed, stats, _ := archive.Pack(payload, format.CompressionZstd)
//	original, algo, _ := archive.Unpack(packed)
//
// Unpack reads the tag byte, looks up the matching codec via GetCodec, and
// reverses the compression before handing back the original wire payload.
//
// # Adding a codec
//
// Implement Codec, add a format.CompressionType constant for it, and add
// it to the builtinCodecs map in codec.go so GetCodec (and therefore
// archive.Pack/Unpack) can reach it.
//
// # Examples
//
// The benchmarks in codec_bench_test.go compare the codecs side by side.
package compress

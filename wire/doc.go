// Package wire implements the binary payload format described in the core
// specification: an 8-byte header followed by three regions — Fixed,
// VarIndex and Data.
//
//	offset  size      content
//	0       4         total_len           (u32 LE)
//	4       4         var_index_offset    (u32 LE)
//	8       F         fixed region        (F = var_index_offset - 8)
//	8+F     4*N       var index           (N x u32 LE, absolute payload offsets)
//	8+F+4N  D         data region         (D = total_len - (8+F+4N))
//
// Encoder accumulates the three growing segments (fixed, var_lengths, data)
// in the order fields are pushed and assembles the header and VarIndex on
// Finalize. Decoder parses and validates the header up front and then hands
// back borrowed slices into the caller's buffer as fields are read in
// declared order.
//
// The header and VarIndex integers are always little-endian, regardless of
// the Order used for Fixed-region field data — this decouples structural
// decoding (can I find the regions at all?) from the field-content endian
// policy a particular record chooses. See Order for the three-way field
// endian choice.
package wire

package wire

import "math"

// HeaderSize is the fixed byte length of the payload header
// (total_len + var_index_offset, both u32 LE).
const HeaderSize = 8

// varEntrySize is the byte width of a single VarIndex entry (u32 LE).
const varEntrySize = 4

// maxOffset is the largest value representable in a 32-bit payload offset.
const maxOffset = math.MaxUint32

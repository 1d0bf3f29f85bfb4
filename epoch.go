package archetype

// Epoch is a monotonically non-decreasing counter stamped into column and
// row version slots. Zero is the sentinel meaning "never written".
type Epoch uint64

// CHUNK_LEN is the fixed span of rows summarized by one chunk version. It is
// an internal granularity for change-tracking skips and is not addressable
// by callers.
const CHUNK_LEN = 256

// chunkOf returns the index of the chunk containing row i.
func chunkOf(i int) int {
	return i >> 8
}

// chunksCount returns ceil(entities / CHUNK_LEN), the number of chunk-version
// slots needed to cover entities rows.
//
// The source this core is modeled on computes this with
// `entities + (CHUNK_LEN - 1) / CHUNK_LEN`, which due to operator precedence
// is actually `entities + 0`. That expression is almost certainly a bug in
// the original; this implementation uses the mathematically correct
// ceiling division so that growth across a chunk boundary (e.g. capacity 255
// to 257) reallocates the chunk-version array exactly when it must.
func chunksCount(entities int) int {
	return (entities + CHUNK_LEN - 1) / CHUNK_LEN
}

// firstOfChunk returns the chunk index and true if row idx is the first row
// of its chunk, else (0, false).
func firstOfChunk(idx int) (int, bool) {
	if idx%CHUNK_LEN == 0 {
		return chunkOf(idx), true
	}
	return 0, false
}

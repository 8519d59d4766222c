// Package codec converts container snapshots to and from the opaque blobs
// stored in owner documents.
//
// A blob is base64 text so it can live inside a YAML scalar. The decoded
// payload is versioned JSON that records the container size and every
// occupied slot by index. Decoding never drops data silently: an empty blob
// means "no data", anything unreadable is [ErrCorruptBlob].
package codec

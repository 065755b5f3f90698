// Package blob stores many posting lists in a single self-describing byte blob.
//
// Every list is a strictly increasing sequence of document IDs. The encoder keeps the
// first ID in the list's index entry and hands the remaining values to one integer codec
// from the codec package: d-gaps (id - prev - 1) for most codecs, the IDs themselves for
// binary interpolative coding. The codec streams are concatenated into one word payload
// which can be compressed as a whole and is protected by an xxHash64 checksum.
//
// # Encoding Workflow
//
//	encoder, err := blob.NewPostingEncoder(
//	    blob.WithCodec(format.CodecVSEncodingOP),
//	    blob.WithPayloadCompression(format.CompressionZstd),
//	)
//
//	// one list at a time
//	err = encoder.AddList([]uint32{3, 7, 8, 21})
//
//	// or many lists encoded in parallel, appended in input order
//	err = encoder.AddLists(ctx, lists)
//
//	posting, err := encoder.Finish()
//	data := posting.Bytes()
//
// # Decoding Workflow
//
//	decoder, err := blob.NewPostingDecoder(data)
//
//	list, err := decoder.List(2)
//
//	for i, list := range decoder.All() {
//	    ...
//	}
//
// # Thread Safety
//
// PostingEncoder is NOT thread-safe; AddLists parallelizes internally. A PostingDecoder
// is read-only after construction and List may be called from multiple goroutines.
package blob

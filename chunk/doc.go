// Package chunk splits a sequence into consecutive fixed-size groups without
// materialising it.
//
// A [Chunker] pulls from its source only as groups are requested: each call
// to [Chunker.Next] reads exactly size elements, fewer for the last group.
//
//	c, err := chunk.New(rows, 100)
//	if err != nil {
//	    return err
//	}
//	defer c.Stop()
//	for group := range c.All() {
//	    insert(group)
//	}
//
// A Chunker is single-pass and forward-only. It must be driven by a single
// goroutine, and a consumer that abandons it before exhaustion must call
// [Chunker.Stop] to release the source. To start over, build a new Chunker
// over the original source.
package chunk

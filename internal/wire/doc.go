// Package wire implements the compact selector decoding and bounded reply
// encoding used by the SenseLink endpoint layer.
//
// Requests carry small decimal selectors: a positional device index in the
// request body, or a category code in a query of the fixed "class" key.
// Replies are written into a caller-supplied buffer of fixed capacity.
//
// # Decoding
//
// Decoders perform syntactic extraction only. They enforce the shape of the
// input (digit count, query length) and produce an unsigned integer; whether
// that integer references anything is the dispatcher's concern.
//
// # Encoding
//
// Every encoder is all-or-nothing: the required length is computed before a
// single byte is written, and a reply that cannot fit in full leaves the
// buffer untouched and returns ErrBufferTooSmall. A truncated record never
// reaches the wire.
package wire

// Package wire owns the closed set of wire types and their byte encodings.
//
// Ownership boundary:
// - fixed-width integers, sentinel bytes, booleans, length-prefixed text
// - length-prefixed lists, money mappings, player records
// - the chip aggregate (sum on encode, greedy breakdown on decode)
//
// Nested message lists are framed by package protocol; this package only
// supplies their count prefix.
//
// All multi-byte integers are big-endian.
package wire

// Package huffman builds Huffman codes for the characters of a text, encodes
// the text as a string of '0' and '1' digits, and decodes it again.
//
// The pipeline is Analyze (text → FrequencyMap), Build (FrequencyMap → Tree),
// DeriveCodes (Tree → CodeMap), Encode (text + CodeMap → bits), and Decode
// (bits + Tree → text).  Encoding ties the steps together for one text.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman

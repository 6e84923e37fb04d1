// Package wire encodes and decodes the tagged byte stream: one code byte
// per value, followed by a payload whose shape the code determines.
//
// Writer and Reader operate on in-memory buffers and are not safe for
// concurrent use.
package wire

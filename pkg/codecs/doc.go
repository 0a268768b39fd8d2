// Package codecs selects and exposes the wire-format codecs that translate
// payloads into the document model. The Registry negotiates a codec from a
// response's Content-Type header; the corejson subpackage implements the
// Core JSON document format, and JSONCodec handles plain JSON data.
package codecs

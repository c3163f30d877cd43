// Package content implements the owned rich-text document model used by
// draftail.
//
// A Document is an ordered list of blocks. Each block holds ordered inline
// ranges; a range is a text span with a set of inline style tags and at most
// one entity reference. Entities live in the document's entity table and are
// referenced by key.
//
// Documents are values: every operation in this module returns a new
// Document and never mutates its input. Use Clone before mutating a document
// obtained from elsewhere.
package content

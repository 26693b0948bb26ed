// Package arrowio sums Apache Arrow record batches.
//
// Arrow null bitmaps map directly onto column validity, so records convert
// to column tables without sentinel values. Converted columns share the
// record's value buffers: keep the record alive while the table is in use.
package arrowio

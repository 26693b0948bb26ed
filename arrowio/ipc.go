package arrowio

import (
	"errors"
	"fmt"
	"io"

	"github.com/apache/arrow/go/v7/arrow"
	"github.com/apache/arrow/go/v7/arrow/ipc"
	"github.com/apache/arrow/go/v7/arrow/memory"
)

// ErrBatchCount is returned by ReadRecord for a stream that does not hold
// exactly one record batch.
var ErrBatchCount = errors.New("expected a single record batch")

// WriteRecord writes rec to w as an Arrow IPC stream.
func WriteRecord(w io.Writer, rec arrow.Record) error {
	iw := ipc.NewWriter(w, ipc.WithSchema(rec.Schema()))
	if err := iw.Write(rec); err != nil {
		_ = iw.Close()
		return fmt.Errorf("write record: %w", err)
	}
	return iw.Close()
}

// ReadRecord reads the single record batch of an Arrow IPC stream. The
// caller owns the returned record.
func ReadRecord(r io.Reader, mem memory.Allocator) (arrow.Record, error) {
	rdr, err := ipc.NewReader(r, ipc.WithAllocator(mem))
	if err != nil {
		return nil, fmt.Errorf("open stream: %w", err)
	}
	defer rdr.Release()

	var rec arrow.Record
	for rdr.Next() {
		if rec != nil {
			rec.Release()
			return nil, ErrBatchCount
		}
		rec = rdr.Record()
		rec.Retain()
	}
	if err := rdr.Err(); err != nil {
		if rec != nil {
			rec.Release()
		}
		return nil, fmt.Errorf("read stream: %w", err)
	}
	if rec == nil {
		return nil, ErrBatchCount
	}
	return rec, nil
}

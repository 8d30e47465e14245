package utils

import "io"

type flushableWriter interface {
	Flush() error
}

// FlushingWriter forwards writes to the wrapped writer and flushes it after
// each write when the writer supports flushing, so progress lines appear
// before the next git invocation blocks on the network.
type FlushingWriter struct {
	writer io.Writer
}

// NewFlushingWriter wraps the provided writer.
func NewFlushingWriter(writer io.Writer) *FlushingWriter {
	return &FlushingWriter{writer: writer}
}

// Write delegates to the wrapped writer and flushes it when possible.
func (flushingWriter *FlushingWriter) Write(data []byte) (int, error) {
	bytesWritten, writeError := flushingWriter.writer.Write(data)
	if writeError != nil {
		return bytesWritten, writeError
	}

	if flushable, supportsFlush := flushingWriter.writer.(flushableWriter); supportsFlush {
		if flushError := flushable.Flush(); flushError != nil {
			return bytesWritten, flushError
		}
	}

	return bytesWritten, nil
}

package logger

import (
	"bufio"
	"bytes"
	"io"
	"sync"
	"time"
)

// BufferedWriter batches log lines in memory and flushes them when the buffer
// fills, when the flush interval elapses, or immediately when an error or
// fatal line is written.
type BufferedWriter struct {
	bufWriter     *bufio.Writer
	mu            sync.Mutex
	flushInterval time.Duration
	stopChan      chan struct{}
	wg            sync.WaitGroup
}

// NewBufferedWriter creates a BufferedWriter backed by w.
func NewBufferedWriter(w io.Writer, flushInterval time.Duration) *BufferedWriter {
	bw := &BufferedWriter{
		bufWriter:     bufio.NewWriterSize(w, 256*1024),
		flushInterval: flushInterval,
		stopChan:      make(chan struct{}),
	}

	bw.wg.Add(1)
	go bw.runFlusher()

	return bw
}

// Write implements io.Writer
func (bw *BufferedWriter) Write(p []byte) (n int, err error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	// Zerolog JSON format carries the level inline; error and fatal lines
	// must reach the sink before a potential exit.
	isError := bytes.Contains(p, []byte(`"level":"error"`)) ||
		bytes.Contains(p, []byte(`"level":"fatal"`))

	n, err = bw.bufWriter.Write(p)
	if isError {
		_ = bw.bufWriter.Flush()
	}
	return n, err
}

// Sync flushes the buffer
func (bw *BufferedWriter) Sync() error {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	return bw.bufWriter.Flush()
}

// Close flushes and stops the background flusher
func (bw *BufferedWriter) Close() error {
	close(bw.stopChan)
	bw.wg.Wait()
	return bw.Sync()
}

func (bw *BufferedWriter) runFlusher() {
	defer bw.wg.Done()
	ticker := time.NewTicker(bw.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_ = bw.Sync()
		case <-bw.stopChan:
			return
		}
	}
}

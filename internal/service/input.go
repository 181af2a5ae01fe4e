package service

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
)

type inputLine struct {
	text string
	err  error
}

// LineReader hands out lines of one input stream to any number of agents, so two humans sharing a terminal
// read from the same buffer. Lines are read by a background goroutine that stops on Close; a read already
// blocked in the underlying reader finishes first.
type LineReader struct {
	scanner *bufio.Scanner

	startOnce sync.Once
	closeOnce sync.Once
	lines     chan inputLine
	done      chan struct{}
}

func NewLineReader(in io.Reader) *LineReader {
	return &LineReader{
		scanner: bufio.NewScanner(in),
		lines:   make(chan inputLine),
		done:    make(chan struct{}),
	}
}

func (that *LineReader) readLines() {
	defer close(that.lines)

	for that.scanner.Scan() {
		if !that.send(inputLine{text: that.scanner.Text()}) {
			return
		}
	}

	err := that.scanner.Err()
	if err == nil {
		err = io.EOF
	}
	that.send(inputLine{err: err})
}

func (that *LineReader) send(line inputLine) bool {
	select {
	case that.lines <- line:
		return true
	case <-that.done:
		return false
	}
}

// ReadLine - waits for the next line, for ctx to be done or for the reader to be closed.
func (that *LineReader) ReadLine(ctx context.Context) (string, error) {
	that.startOnce.Do(func() {
		go that.readLines()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-that.done:
		return "", fmt.Errorf("failed to read line: %w", io.ErrClosedPipe)
	case line, ok := <-that.lines:
		if !ok {
			return "", fmt.Errorf("failed to read line: %w", io.EOF)
		}
		if line.err != nil {
			return "", fmt.Errorf("failed to read line: %w", line.err)
		}
		return line.text, nil
	}
}

// Close stops the background goroutine. It is safe to call more than once.
func (that *LineReader) Close() {
	that.closeOnce.Do(func() {
		close(that.done)
	})
}

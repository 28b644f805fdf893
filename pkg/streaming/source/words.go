package source

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// wordSource implements Source by tokenizing a reader into
// whitespace-separated words.
type wordSource struct {
	scanner *bufio.Scanner
	closer  io.Closer
}

// Words creates a Source that yields whitespace-separated words read from r.
// If r implements io.Closer it is closed with the source.
func Words(r io.Reader) Source[string] {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	ws := &wordSource{scanner: scanner}
	if c, ok := r.(io.Closer); ok {
		ws.closer = c
	}
	return ws
}

// WordsOf creates a Source that yields the whitespace-separated words of text.
func WordsOf(text string) Source[string] {
	return Words(strings.NewReader(text))
}

// Lines creates a Source that yields lines read from r, without trailing
// newlines. If r implements io.Closer it is closed with the source.
func Lines(r io.Reader) Source[string] {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)

	ls := &wordSource{scanner: scanner}
	if c, ok := r.(io.Closer); ok {
		ls.closer = c
	}
	return ls
}

func (s *wordSource) Next(ctx context.Context) (string, bool, error) {
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	default:
	}

	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", false, err
		}
		return "", false, nil
	}
	return s.scanner.Text(), true, nil
}

func (s *wordSource) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

package readers

import (
	"bufio"
	"io"
	"log/slog"
	"strings"
)

// lineSource hands out one line at a time. An empty read ends the input:
// either true EOF or a line with nothing before its terminator, so a blank
// line stops the load exactly like the end of the file. Once ended it stays
// ended.
type lineSource struct {
	r    *bufio.Reader
	log  *slog.Logger
	num  int
	done bool
	err  error
}

func newLineSource(r io.Reader, log *slog.Logger) *lineSource {
	return &lineSource{
		r:   bufio.NewReader(r),
		log: log,
	}
}

func (src *lineSource) next() (line string, ok bool) {
	if src.done {
		return
	}
	line, err := src.r.ReadString('\n')
	if err != nil && err != io.EOF {
		src.err = err
		src.done = true
		return "", false
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if len(line) == 0 {
		src.done = true
		return "", false
	}
	src.num++
	return line, true
}

// truncated records a segment that ran out of lines before its count
func (src *lineSource) truncated(kind string, got, want int) {
	src.log.Debug("segment ended early",
		"kind", kind, "rows", got, "declared", want, "line", src.num)
}

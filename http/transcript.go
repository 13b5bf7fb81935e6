package http

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Transcript prints the raw lines of every connection to a console. Line
// terminators are shown as a literal \r\n. Write errors are ignored.
type Transcript struct {
	w io.Writer
}

func NewTranscript(w io.Writer) *Transcript {
	return &Transcript{w: w}
}

func (t *Transcript) Connection(peer string) {
	if t == nil || t.w == nil {
		return
	}
	fmt.Fprintf(t.w, "New connection from: %s\n\n", peer)
	fmt.Fprint(t.w, "    Received input:\n\n")
}

func (t *Transcript) Received(line string) {
	if t == nil || t.w == nil {
		return
	}
	fmt.Fprintf(t.w, "        %s\\r\\n\n", line)
}

func (t *Transcript) Writing(res Response) {
	if t == nil || t.w == nil {
		return
	}
	fmt.Fprint(t.w, "\n    Writing output:\n\n")

	scanner := bufio.NewScanner(bytes.NewReader(res.raw))
	scanner.Buffer(make([]byte, 0, 4096), len(res.raw)+1)
	for scanner.Scan() {
		fmt.Fprintf(t.w, "        %s\\r\\n\n", scanner.Text())
	}
	fmt.Fprintln(t.w)
}

// Copyright © 2021-2026 The Gomon Project.

package message

import (
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/zosmac/gocore"
)

type (
	// writer wraps os.Stdout.
	writer struct{}

	// Encoder writes messages as a stream of JSON objects.
	Encoder struct {
		mu  sync.Mutex
		enc *json.Encoder
	}
)

// Write enables writer to conform to io.Writer, indirection allows os.Stdout to be replaced.
func (writer) Write(buf []byte) (int, error) { return os.Stdout.Write(buf) }

// NewEncoder configures an encoder writing to w, or to standard output if w is nil.
func NewEncoder(w io.Writer) *Encoder {
	if w == nil {
		w = writer{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if flags.pretty {
		enc.SetIndent("", "  ")
	}
	return &Encoder{enc: enc}
}

// Encode writes a message. Monitors may encode concurrently.
func (e *Encoder) Encode(m Content) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.enc.Encode(m); err != nil {
		return gocore.Error("Encode", err, map[string]string{
			"message": m.ID(),
		})
	}
	return nil
}

package main

import "github.com/go-inkml/inkml/pkg/log"

// ClipboardWriter abstracts pushing emitted bytes to a system clipboard
// with MIME type "InkML Format". A real clipboard integration is out of
// scope for this codec (spec.md §6); logWriter is the only implementation
// shipped, so the CLI has somewhere to plug one in without depending on a
// platform clipboard library it doesn't otherwise need.
type ClipboardWriter interface {
	WriteClipboard(mimeType string, data []byte) error
}

type logWriter struct{}

func (logWriter) WriteClipboard(mimeType string, data []byte) error {
	log.Info.Printf("clipboard write skipped (%s, %d bytes): no clipboard backend configured", mimeType, len(data))
	return nil
}

var defaultClipboard ClipboardWriter = logWriter{}

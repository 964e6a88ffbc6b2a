// Package api lets you integrate the codec's operations into your Go
// backend.
//
// There are two api layers supporting every operation:
//  1. The file based layer (used by the cli)
//  2. The io.Reader/io.Writer based layer for backend integration.
//
// For the read path there are two functions:
//
//	func ParseFile(inFile string, conf *config.Configuration) (*model.ParserResult, error)
//	func Parse(r io.Reader, conf *config.Configuration) (*model.ParserResult, error)
//
// and likewise for ParseFormatted and Write. Every function accepts a
// *config.Configuration; a nil conf falls back to
// config.NewDefaultConfiguration().
package api

import (
	"io"
	"os"

	"github.com/go-inkml/inkml/pkg/inkml/canon"
	"github.com/go-inkml/inkml/pkg/inkml/config"
	"github.com/go-inkml/inkml/pkg/inkml/emit"
	"github.com/go-inkml/inkml/pkg/inkml/model"
	"github.com/go-inkml/inkml/pkg/inkml/parse"
	"github.com/go-inkml/inkml/pkg/log"
)

// Parse reads r as an InkML-dialect document and returns its raw parser
// result: every trace record alongside the context and brush tables it
// references.
func Parse(r io.Reader, conf *config.Configuration) (*model.ParserResult, error) {
	return parse.Parse(r, conf)
}

// ParseFile opens inFile and parses it.
func ParseFile(inFile string, conf *config.Configuration) (*model.ParserResult, error) {
	f, err := os.Open(inFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f, conf)
}

// ParseFormatted parses r and resolves every trace against its context and
// brush, returning one canonical stroke per trace record.
func ParseFormatted(r io.Reader, conf *config.Configuration) ([]model.StrokeWithBrush, error) {
	result, err := Parse(r, conf)
	if err != nil {
		return nil, err
	}
	return canon.Canonicalize(result)
}

// ParseFormattedFile opens inFile and parses it into canonical strokes.
func ParseFormattedFile(inFile string, conf *config.Configuration) ([]model.StrokeWithBrush, error) {
	f, err := os.Open(inFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseFormatted(f, conf)
}

// Write renders strokes as an InkML-dialect document and writes it to w.
func Write(strokes []model.StrokeWithBrush, w io.Writer, conf *config.Configuration) error {
	bytes, err := emit.Write(strokes, conf)
	if err != nil {
		return err
	}
	_, err = w.Write(bytes)
	return err
}

// WriteFile renders strokes and writes them to outFile, creating or
// truncating it.
func WriteFile(strokes []model.StrokeWithBrush, outFile string, conf *config.Configuration) (err error) {
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			f.Close()
			os.Remove(outFile)
			return
		}
		err = f.Close()
	}()

	log.Debug.Printf("writing %s", outFile)
	return Write(strokes, f, conf)
}

// Package pipeline is the submission-handling collaborator around the
// analyzer core: it reads ritual documents from disk, enforces the ingress
// limits, parses the .grc and HTML formats, runs validation through the
// result cache, and renders reports. The core itself never performs I/O.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Ingress rejection errors. These belong to the boundary: the analyzers
// themselves accept any string.
var (
	ErrTooLarge      = errors.New("submission exceeds size limit")
	ErrTooShort      = errors.New("submission body below minimum length")
	ErrNotUTF8       = errors.New("submission is not valid UTF-8")
	ErrMissingHeader = errors.New("missing '#' title header")
)

// Submission is a decoded ritual document ready for validation
type Submission struct {
	Title     string   // From the .grc header, or the file name
	Bioregion string   // From the .grc header, may be empty
	Sections  []string // Section names from the .grc format
	Body      string   // The text handed to the analyzers
	Format    string   // grc, html, text
	Bytes     int64    // Raw size on disk
}

// Reader loads submissions from disk, enforcing the upstream limits the
// core deliberately does not: a byte cap and a minimum body length.
type Reader struct {
	maxBytes int64
	minChars int
}

// NewReader creates a Reader with the given ingress limits
func NewReader(maxBytes int64, minChars int) *Reader {
	return &Reader{
		maxBytes: maxBytes,
		minChars: minChars,
	}
}

// Read loads and decodes the submission at path. The format is chosen by
// file extension: .grc uses the header convention, .html/.htm has visible
// text extracted, anything else is treated as plain text.
func (r *Reader) Read(path string) (*Submission, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open submission: %w", err)
	}
	defer func() { _ = f.Close() }()

	// Read one byte past the cap so oversized files are detected without
	// buffering them whole.
	data, err := io.ReadAll(io.LimitReader(f, r.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read submission: %w", err)
	}
	if int64(len(data)) > r.maxBytes {
		return nil, fmt.Errorf("%w (%d byte cap)", ErrTooLarge, r.maxBytes)
	}
	if !utf8.Valid(data) {
		return nil, ErrNotUTF8
	}

	sub, err := r.decode(path, string(data))
	if err != nil {
		return nil, err
	}
	sub.Bytes = int64(len(data))

	if utf8.RuneCountInString(sub.Body) < r.minChars {
		return nil, fmt.Errorf("%w (%d character minimum)", ErrTooShort, r.minChars)
	}

	return sub, nil
}

func (r *Reader) decode(path, content string) (*Submission, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".grc":
		return ParseGRC(content)
	case ".html", ".htm":
		body, err := extractVisibleText(content)
		if err != nil {
			return nil, fmt.Errorf("parse html: %w", err)
		}
		return &Submission{
			Title:  titleFromPath(path),
			Body:   body,
			Format: "html",
		}, nil
	default:
		return &Submission{
			Title:  titleFromPath(path),
			Body:   strings.TrimSpace(content),
			Format: "text",
		}, nil
	}
}

// titleFromPath derives a readable title from the file name
func titleFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, "_", " ")
	base = strings.ReplaceAll(base, "-", " ")
	return strings.TrimSpace(base)
}

package pipeline

import (
	"strings"
)

// ParseGRC parses the .grc plain-text convention: a `#`-prefixed
// title/bioregion header followed by `##`-prefixed sections. The header
// carries an optional bioregion identifier after a `|` separator:
//
//	# Cedar Grove Equinox Ceremony | cascadia-north
//	## Opening
//	We gather in the circle ...
//
// Blank lines and leading whitespace before the header are tolerated;
// a document without a `#` header is an ingress error. Section names are
// part of the ritual text and are kept in the body.
func ParseGRC(content string) (*Submission, error) {
	sub := &Submission{Format: "grc"}
	var body []string
	headerSeen := false

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "##"):
			name := strings.TrimSpace(strings.TrimPrefix(trimmed, "##"))
			if name != "" {
				sub.Sections = append(sub.Sections, name)
				body = append(body, name)
			}
		case strings.HasPrefix(trimmed, "#"):
			if headerSeen {
				// Repeated title headers are treated as text.
				body = append(body, strings.TrimSpace(strings.TrimPrefix(trimmed, "#")))
				continue
			}
			headerSeen = true
			header := strings.TrimSpace(strings.TrimPrefix(trimmed, "#"))
			if title, bioregion, ok := strings.Cut(header, "|"); ok {
				sub.Title = strings.TrimSpace(title)
				sub.Bioregion = strings.TrimSpace(bioregion)
			} else {
				sub.Title = header
			}
		case trimmed == "":
			// Skip blank lines.
		default:
			if !headerSeen {
				// Preamble before the header is tolerated but not analyzed.
				continue
			}
			body = append(body, trimmed)
		}
	}

	if !headerSeen {
		return nil, ErrMissingHeader
	}

	sub.Body = strings.Join(body, "\n")
	return sub, nil
}

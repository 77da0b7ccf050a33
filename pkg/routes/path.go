package routes

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	staticSegment = regexp.MustCompile(`^[A-Za-z0-9._~-]+$`)
	paramSegment  = regexp.MustCompile(`^:[A-Za-z_][A-Za-z0-9_]*$`)
)

type segment struct {
	value string
	param bool
}

// parsePath splits a declared path into segments. Top-level paths must be
// absolute; child paths must be relative.
func parsePath(p string, top bool) ([]segment, error) {
	if top {
		if !strings.HasPrefix(p, "/") {
			return nil, fmt.Errorf("%w: top-level path %q must start with /", ErrInvalidPath, p)
		}
		if p == "/" {
			return nil, nil
		}
		p = p[1:]
	} else {
		if p == "" {
			return nil, nil
		}
		if strings.HasPrefix(p, "/") {
			return nil, fmt.Errorf("%w: child path %q must be relative", ErrInvalidPath, p)
		}
	}

	parts := strings.Split(p, "/")
	segs := make([]segment, 0, len(parts))
	for _, part := range parts {
		switch {
		case part == "":
			return nil, fmt.Errorf("%w: empty segment in %q", ErrInvalidPath, p)
		case strings.HasPrefix(part, ":"):
			if !paramSegment.MatchString(part) {
				return nil, fmt.Errorf("%w: malformed parameter %q", ErrInvalidPath, part)
			}
			segs = append(segs, segment{value: part[1:], param: true})
		default:
			if !staticSegment.MatchString(part) {
				return nil, fmt.Errorf("%w: malformed segment %q", ErrInvalidPath, part)
			}
			segs = append(segs, segment{value: part})
		}
	}
	return segs, nil
}

func joinPath(parent, child string) string {
	switch {
	case child == "":
		return parent
	case parent == "" || parent == "/":
		return "/" + strings.TrimPrefix(child, "/")
	default:
		return parent + "/" + child
	}
}

// splitLocation drops any query or fragment and returns the decoded,
// non-empty path segments of location.
func splitLocation(location string) []string {
	if i := strings.IndexAny(location, "?#"); i >= 0 {
		location = location[:i]
	}

	parts := strings.Split(location, "/")
	segs := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		if decoded, err := url.PathUnescape(part); err == nil {
			part = decoded
		}
		segs = append(segs, part)
	}
	return segs
}

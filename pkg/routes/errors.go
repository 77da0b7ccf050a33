package routes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Configuration errors, reported by New.
var (
	ErrMissingName    = errors.New("route name required")
	ErrDuplicateName  = errors.New("duplicate route name")
	ErrInvalidPath    = errors.New("invalid route path")
	ErrDuplicateParam = errors.New("duplicate path parameter")
	ErrUnresolvedView = errors.New("unresolved view reference")
	ErrMissingSlot    = errors.New("layout view has no child slot")
)

// Lookup errors, reported by a built Table.
var (
	ErrNoMatch      = errors.New("no route matches location")
	ErrUnknownRoute = errors.New("unknown route name")
	ErrMissingParam = errors.New("missing route parameter")
)

// Problem is a single configuration defect tied to the route that caused it.
type Problem struct {
	Name string
	Path string
	Err  error
}

func (p *Problem) Error() string {
	return fmt.Sprintf("route %q (path %q): %v", p.Name, p.Path, p.Err)
}

func (p *Problem) Unwrap() error {
	return p.Err
}

// ConfigurationError collects every problem found while building a Table.
// errors.Is matches against each problem's underlying sentinel.
type ConfigurationError struct {
	errs *multierror.Error
}

// Problems returns the collected problems in declaration order.
func (e *ConfigurationError) Problems() []*Problem {
	out := make([]*Problem, 0, len(e.errs.Errors))
	for _, err := range e.errs.Errors {
		var p *Problem
		if errors.As(err, &p) {
			out = append(out, p)
		}
	}
	return out
}

func (e *ConfigurationError) Error() string {
	return "route configuration: " + e.errs.Error()
}

func (e *ConfigurationError) Unwrap() []error {
	return e.errs.WrappedErrors()
}

type collector struct {
	errs *multierror.Error
}

func (c *collector) add(r Route, err error) {
	c.errs = multierror.Append(c.errs, &Problem{Name: r.Name, Path: r.Path, Err: err})
}

func (c *collector) err() error {
	if c.errs == nil {
		return nil
	}
	c.errs.ErrorFormat = formatProblems
	return &ConfigurationError{errs: c.errs}
}

func formatProblems(errs []error) string {
	if len(errs) == 1 {
		return errs[0].Error()
	}
	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = "  * " + err.Error()
	}
	return fmt.Sprintf("%d problems:\n%s", len(errs), strings.Join(lines, "\n"))
}

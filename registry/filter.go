package registry

import (
	"regexp"

	"github.com/grovetools/hookcfg/errors"
)

// Filter applies a hook's files/exclude patterns to candidate paths. The
// parser stores patterns verbatim; Filter is the opt-in compiled form for
// callers that need to evaluate them.
type Filter struct {
	files   *regexp.Regexp
	exclude *regexp.Regexp
}

// CompileFilter compiles a hook's file filter patterns. A hook with neither
// pattern yields a filter that matches every path.
func (h *Hook) CompileFilter() (*Filter, error) {
	f := &Filter{}
	var err error

	if h.Files != "" {
		f.files, err = regexp.Compile(h.Files)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInvalidFieldType, "files pattern is not a valid regular expression").
				WithDetail("hook", h.ID).
				WithDetail("pattern", h.Files)
		}
	}

	if h.Exclude != "" {
		f.exclude, err = regexp.Compile(h.Exclude)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInvalidFieldType, "exclude pattern is not a valid regular expression").
				WithDetail("hook", h.ID).
				WithDetail("pattern", h.Exclude)
		}
	}

	return f, nil
}

// Match reports whether a changed path falls inside the filter.
func (f *Filter) Match(path string) bool {
	if f.files != nil && !f.files.MatchString(path) {
		return false
	}
	if f.exclude != nil && f.exclude.MatchString(path) {
		return false
	}
	return true
}

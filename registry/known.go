package registry

import (
	"fmt"
	"strings"

	"github.com/grovetools/hookcfg/errors"
)

// KnownHooks maps a repository URL to the hook ids it is known to provide.
// Entries are matched case-sensitively after stripping a trailing ".git".
type KnownHooks map[string][]string

// BuiltinKnownHooks covers the tool repositories commonly pinned in Python
// project configurations. It is deliberately incomplete; unknown-hook
// checking is opt-in and callers can supply their own registry.
var BuiltinKnownHooks = KnownHooks{
	"https://github.com/pre-commit/pre-commit-hooks": {
		"trailing-whitespace",
		"end-of-file-fixer",
		"check-yaml",
		"check-added-large-files",
		"check-merge-conflict",
		"debug-statements",
		"double-quote-string-fixer",
		"name-tests-test",
		"requirements-txt-fixer",
		"fix-encoding-pragma",
		"check-docstring-first",
	},
	"https://github.com/asottile/pyupgrade": {
		"pyupgrade",
	},
	"https://github.com/asottile/reorder_python_imports": {
		"reorder-python-imports",
	},
	"https://github.com/psf/black": {
		"black",
		"black-jupyter",
	},
	"https://github.com/PyCQA/flake8": {
		"flake8",
	},
	"https://gitlab.com/pycqa/flake8": {
		"flake8",
	},
	"https://github.com/pre-commit/mirrors-autopep8": {
		"autopep8",
	},
}

// ValidateKnownHooks checks every remote hook id against the given registry.
// Repositories the registry does not know about are skipped; local hooks are
// never checked (their ids are user-defined). Returns an UNKNOWN_HOOK error
// for the first id a known repository does not provide.
func (c *Config) ValidateKnownHooks(known KnownHooks) error {
	for ri := range c.Repos {
		repo := &c.Repos[ri]
		if repo.IsLocal() {
			continue
		}

		ids, ok := known[strings.TrimSuffix(repo.Repo, ".git")]
		if !ok {
			continue
		}

		for hi := range repo.Hooks {
			hook := &repo.Hooks[hi]
			if !containsString(ids, hook.ID) {
				return errors.UnknownHook(repo.Repo, hook.ID).
					WithPath(hookPath(ri, hi) + ".id")
			}
		}
	}
	return nil
}

func hookPath(ri, hi int) string {
	return fmt.Sprintf("repos[%d].hooks[%d]", ri, hi)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

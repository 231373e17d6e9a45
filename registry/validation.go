package registry

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/grovetools/hookcfg/errors"
)

// Git hook stages a hook may declare. Mirrors the stage names the consuming
// engine understands.
var validStages = map[string]bool{
	"pre-commit":         true,
	"pre-merge-commit":   true,
	"pre-push":           true,
	"prepare-commit-msg": true,
	"commit-msg":         true,
	"post-checkout":      true,
	"post-commit":        true,
	"post-merge":         true,
	"post-rewrite":       true,
	"pre-rebase":         true,
	"manual":             true,

	// Legacy aliases still accepted by the engine.
	"commit":       true,
	"merge-commit": true,
	"push":         true,
}

// Validate checks the document invariants: a non-empty repos sequence, a
// pinned revision on every remote source entry, and well-formed hooks. All
// failures surface immediately; there is no partial-success mode.
func (c *Config) Validate() error {
	if len(c.Repos) == 0 {
		return errors.MissingField("repos")
	}

	if err := validateFilter("files", c.Files); err != nil {
		return err
	}
	if err := validateFilter("exclude", c.Exclude); err != nil {
		return err
	}
	for _, stage := range c.DefaultStages {
		if !validStages[stage] {
			return errors.InvalidFieldType("default_stages", "a sequence of git hook stage names").
				WithDetail("stage", stage)
		}
	}

	for ri := range c.Repos {
		repo := &c.Repos[ri]
		if err := validateRepo(ri, repo); err != nil {
			return err
		}
	}

	return nil
}

func validateRepo(index int, repo *Repo) error {
	path := fmt.Sprintf("repos[%d]", index)

	if repo.Repo == "" {
		return errors.MissingField(path + ".repo")
	}

	if !repo.IsLocal() {
		if repo.Rev == "" {
			return errors.MissingField(path + ".rev").
				WithDetail("repo", repo.Repo)
		}
		if !looksLikeRepoURL(repo.Repo) {
			return errors.InvalidFieldType(path+".repo", "a repository URL or the sentinel 'local'").
				WithDetail("repo", repo.Repo)
		}
	}

	if len(repo.Hooks) == 0 {
		return errors.MissingField(path + ".hooks").
			WithDetail("repo", repo.Repo)
	}

	for hi := range repo.Hooks {
		if err := validateHook(path, hi, repo, &repo.Hooks[hi]); err != nil {
			return err
		}
	}

	return nil
}

func validateHook(repoPath string, index int, repo *Repo, hook *Hook) error {
	path := fmt.Sprintf("%s.hooks[%d]", repoPath, index)

	if hook.ID == "" {
		return errors.MissingField(path + ".id").
			WithDetail("repo", repo.Repo)
	}

	// Local hooks define the tool inline; they need a command and a runtime.
	if repo.Repo == LocalRepo {
		if hook.Entry == "" {
			return errors.MissingField(path + ".entry").
				WithDetail("hook", hook.ID)
		}
		if hook.Language == "" {
			return errors.MissingField(path + ".language").
				WithDetail("hook", hook.ID)
		}
	}

	if err := validateFilter(path+".files", hook.Files); err != nil {
		return err
	}
	if err := validateFilter(path+".exclude", hook.Exclude); err != nil {
		return err
	}

	for _, stage := range hook.Stages {
		if !validStages[stage] {
			return errors.InvalidFieldType(path+".stages", "a sequence of git hook stage names").
				WithDetail("hook", hook.ID).
				WithDetail("stage", stage)
		}
	}

	for _, dep := range hook.AdditionalDependencies {
		if strings.TrimSpace(dep) == "" {
			return errors.InvalidFieldType(path+".additional_dependencies", "a sequence of non-empty package identifiers").
				WithDetail("hook", hook.ID)
		}
	}

	return nil
}

// Warnings reports non-fatal findings. Hook ids are scoped to their source
// entry and never globally enforced, so a duplicate id is suspicious but not
// invalid.
func (c *Config) Warnings() []string {
	var warnings []string
	for ri := range c.Repos {
		seen := make(map[string]bool)
		for _, h := range c.Repos[ri].Hooks {
			if seen[h.ID] {
				warnings = append(warnings, fmt.Sprintf("repos[%d]: hook id %q appears more than once", ri, h.ID))
			}
			seen[h.ID] = true
		}
	}
	return warnings
}

// validateFilter checks that a files/exclude pattern, when present, is a
// valid regular expression. The pattern itself stays verbatim in the model;
// compilation here is validation only.
func validateFilter(path, pattern string) error {
	if pattern == "" {
		return nil
	}
	if _, err := regexp.Compile(pattern); err != nil {
		return errors.Wrap(err, errors.ErrCodeInvalidFieldType, fmt.Sprintf("field %s is not a valid regular expression", path)).
			WithPath(path).
			WithDetail("pattern", pattern)
	}
	return nil
}

// looksLikeRepoURL accepts the repository identifier shapes the engine can
// clone: URLs and scp-like git remotes.
func looksLikeRepoURL(repo string) bool {
	if strings.Contains(repo, "://") {
		return true
	}
	// scp-like syntax: git@github.com:org/repo
	if strings.Contains(repo, "@") && strings.Contains(repo, ":") {
		return true
	}
	// Relative or absolute paths to local mirrors are also clonable.
	return strings.HasPrefix(repo, ".") || strings.HasPrefix(repo, "/")
}

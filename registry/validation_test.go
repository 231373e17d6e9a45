package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grovetools/hookcfg/errors"
)

func TestValidateConfig(t *testing.T) {
	// Valid config
	valid := &Config{
		Repos: []Repo{
			{
				Repo: "https://github.com/psf/black",
				Rev:  "23.1.0",
				Hooks: []Hook{
					{ID: "black"},
				},
			},
		},
	}

	assert.NoError(t, valid.Validate())

	// No repos at all
	invalid := &Config{}
	err := invalid.Validate()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeMissingField))

	// Remote repo without rev
	invalid = &Config{
		Repos: []Repo{
			{
				Repo:  "https://github.com/psf/black",
				Hooks: []Hook{{ID: "black"}},
			},
		},
	}
	err = invalid.Validate()
	assert.True(t, errors.Is(err, errors.ErrCodeMissingField))

	// Repo without hooks
	invalid = &Config{
		Repos: []Repo{
			{Repo: "https://github.com/psf/black", Rev: "23.1.0"},
		},
	}
	err = invalid.Validate()
	assert.True(t, errors.Is(err, errors.ErrCodeMissingField))

	// Hook without id
	invalid = &Config{
		Repos: []Repo{
			{
				Repo:  "https://github.com/psf/black",
				Rev:   "23.1.0",
				Hooks: []Hook{{Name: "anonymous"}},
			},
		},
	}
	err = invalid.Validate()
	assert.True(t, errors.Is(err, errors.ErrCodeMissingField))
}

func TestValidateLocalRepo(t *testing.T) {
	// Local repo needs no rev
	valid := &Config{
		Repos: []Repo{
			{
				Repo: LocalRepo,
				Hooks: []Hook{
					{ID: "rst", Entry: "rst-lint --encoding utf-8", Language: "python"},
				},
			},
		},
	}
	assert.NoError(t, valid.Validate())

	// Local hook without entry
	invalid := &Config{
		Repos: []Repo{
			{
				Repo:  LocalRepo,
				Hooks: []Hook{{ID: "rst", Language: "python"}},
			},
		},
	}
	err := invalid.Validate()
	assert.True(t, errors.Is(err, errors.ErrCodeMissingField))

	// Local hook without language
	invalid = &Config{
		Repos: []Repo{
			{
				Repo:  LocalRepo,
				Hooks: []Hook{{ID: "rst", Entry: "rst-lint"}},
			},
		},
	}
	err = invalid.Validate()
	assert.True(t, errors.Is(err, errors.ErrCodeMissingField))
}

func TestValidateErrorPaths(t *testing.T) {
	invalid := &Config{
		Repos: []Repo{
			{
				Repo:  "https://github.com/psf/black",
				Rev:   "23.1.0",
				Hooks: []Hook{{ID: "black"}},
			},
			{
				Repo:  "https://github.com/PyCQA/flake8",
				Hooks: []Hook{{ID: "flake8"}},
			},
		},
	}

	err := invalid.Validate()
	assert.Error(t, err)

	hookErr, ok := err.(*errors.HookError)
	assert.True(t, ok)
	assert.Equal(t, "repos[1].rev", hookErr.Details["path"])
}

func TestDuplicateHookIDsWarnOnly(t *testing.T) {
	cfg := &Config{
		Repos: []Repo{
			{
				Repo: "https://example.com/x",
				Rev:  "v1.0",
				Hooks: []Hook{
					{ID: "foo"},
					{ID: "foo"},
				},
			},
		},
	}

	// Duplicates within an entry are suspicious, never fatal.
	assert.NoError(t, cfg.Validate())

	warnings := cfg.Warnings()
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `"foo"`)
}

func TestValidateFilters(t *testing.T) {
	testCases := []struct {
		name    string
		pattern string
		valid   bool
	}{
		{"empty pattern", "", true},
		{"anchored filename", "^(README.rst)$", true},
		{"extension match", `\.py$`, true},
		{"unclosed group", "^(README.rst$", false},
		{"bad repetition", "*invalid", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{
				Repos: []Repo{
					{
						Repo:  "https://example.com/x",
						Rev:   "v1.0",
						Hooks: []Hook{{ID: "foo", Files: tc.pattern}},
					},
				},
			}
			err := cfg.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, errors.ErrCodeInvalidFieldType))
			}
		})
	}
}

func TestValidateStages(t *testing.T) {
	cfg := &Config{
		Repos: []Repo{
			{
				Repo: "https://example.com/x",
				Rev:  "v1.0",
				Hooks: []Hook{
					{ID: "foo", Stages: []string{"pre-commit", "pre-push"}},
				},
			},
		},
	}
	assert.NoError(t, cfg.Validate())

	cfg.Repos[0].Hooks[0].Stages = []string{"pre-commit", "before-lunch"}
	err := cfg.Validate()
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFieldType))
}

func TestValidateRepoIdentifier(t *testing.T) {
	testCases := []struct {
		name  string
		repo  string
		valid bool
	}{
		{"https URL", "https://github.com/psf/black", true},
		{"ssh URL", "ssh://git@github.com/psf/black", true},
		{"scp-like remote", "git@github.com:psf/black", true},
		{"relative path", "../mirrors/black", true},
		{"absolute path", "/srv/mirrors/black", true},
		{"bare word", "black", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{
				Repos: []Repo{
					{Repo: tc.repo, Rev: "v1.0", Hooks: []Hook{{ID: "foo"}}},
				},
			}
			err := cfg.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, errors.ErrCodeInvalidFieldType))
			}
		})
	}
}

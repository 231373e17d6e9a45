package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grovetools/hookcfg/errors"
)

func TestValidateKnownHooks(t *testing.T) {
	known := KnownHooks{
		"https://github.com/pre-commit/pre-commit-hooks": {
			"trailing-whitespace",
			"check-yaml",
		},
	}

	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name: "all hooks known",
			config: &Config{
				Repos: []Repo{
					{
						Repo: "https://github.com/pre-commit/pre-commit-hooks",
						Rev:  "v4.4.0",
						Hooks: []Hook{
							{ID: "trailing-whitespace"},
							{ID: "check-yaml"},
						},
					},
				},
			},
			wantErr: false,
		},
		{
			name: "unknown hook id in known repo",
			config: &Config{
				Repos: []Repo{
					{
						Repo: "https://github.com/pre-commit/pre-commit-hooks",
						Rev:  "v4.4.0",
						Hooks: []Hook{
							{ID: "trailing-whitepsace"},
						},
					},
				},
			},
			wantErr: true,
		},
		{
			name: "unknown repo is skipped",
			config: &Config{
				Repos: []Repo{
					{
						Repo: "https://github.com/example/obscure-hooks",
						Rev:  "v1.0",
						Hooks: []Hook{
							{ID: "anything-goes"},
						},
					},
				},
			},
			wantErr: false,
		},
		{
			name: "local hooks are never checked",
			config: &Config{
				Repos: []Repo{
					{
						Repo: LocalRepo,
						Hooks: []Hook{
							{ID: "my-custom-hook", Entry: "./check.sh", Language: "script"},
						},
					},
				},
			},
			wantErr: false,
		},
		{
			name: "trailing .git is stripped before lookup",
			config: &Config{
				Repos: []Repo{
					{
						Repo: "https://github.com/pre-commit/pre-commit-hooks.git",
						Rev:  "v4.4.0",
						Hooks: []Hook{
							{ID: "not-a-real-hook"},
						},
					},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.ValidateKnownHooks(known)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, errors.ErrCodeUnknownHook, errors.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateKnownHooksErrorDetails(t *testing.T) {
	cfg := &Config{
		Repos: []Repo{
			{
				Repo: "https://github.com/psf/black",
				Rev:  "23.1.0",
				Hooks: []Hook{
					{ID: "black"},
					{ID: "blacken"},
				},
			},
		},
	}

	err := cfg.ValidateKnownHooks(BuiltinKnownHooks)
	assert.Error(t, err)

	hookErr, ok := err.(*errors.HookError)
	assert.True(t, ok)
	assert.Equal(t, "repos[0].hooks[1].id", hookErr.Details["path"])
	assert.Equal(t, "blacken", hookErr.Details["hook"])
	assert.Equal(t, "https://github.com/psf/black", hookErr.Details["repo"])
}

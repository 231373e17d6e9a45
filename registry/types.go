package registry

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// LocalRepo is the sentinel repository identifier for hooks defined inline
// rather than fetched from a remote repository.
const LocalRepo = "local"

// MetaRepo is the sentinel repository identifier for hooks built into the
// consuming engine itself.
const MetaRepo = "meta"

// Hook defines a single named check or transformation applied to a set of
// files. For remote repos the entry point is defined by the remote tool;
// for local repos Entry and Language define the hook directly.
type Hook struct {
	ID                     string   `yaml:"id" toml:"id" json:"id" jsonschema:"required,description=Stable identifier of the hook within its repository"`
	Name                   string   `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty" jsonschema:"description=Display label (defaults to id)"`
	Entry                  string   `yaml:"entry,omitempty" toml:"entry,omitempty" json:"entry,omitempty" jsonschema:"description=Command to run (local and meta hooks only)"`
	Language               string   `yaml:"language,omitempty" toml:"language,omitempty" json:"language,omitempty" jsonschema:"description=Runtime environment tag for local hooks (e.g. system, python)"`
	LanguageVersion        string   `yaml:"language_version,omitempty" toml:"language_version,omitempty" json:"language_version,omitempty" jsonschema:"description=Version of the language environment to install"`
	Files                  string   `yaml:"files,omitempty" toml:"files,omitempty" json:"files,omitempty" jsonschema:"description=Regular expression restricting which changed paths the hook applies to"`
	Exclude                string   `yaml:"exclude,omitempty" toml:"exclude,omitempty" json:"exclude,omitempty" jsonschema:"description=Regular expression excluding paths matched by files"`
	Types                  []string `yaml:"types,omitempty" toml:"types,omitempty" json:"types,omitempty" jsonschema:"description=File type tags the hook applies to"`
	Stages                 []string `yaml:"stages,omitempty" toml:"stages,omitempty" json:"stages,omitempty" jsonschema:"description=Git hook stages the hook runs in"`
	Args                   []string `yaml:"args,omitempty" toml:"args,omitempty" json:"args,omitempty" jsonschema:"description=Ordered extra arguments passed to the tool invocation"`
	AdditionalDependencies []string `yaml:"additional_dependencies,omitempty" toml:"additional_dependencies,omitempty" json:"additional_dependencies,omitempty" jsonschema:"description=Extra packages the engine must install before invoking this hook"`
	AlwaysRun              bool     `yaml:"always_run,omitempty" toml:"always_run,omitempty" json:"always_run,omitempty" jsonschema:"description=Run even when no files match"`
	Verbose                bool     `yaml:"verbose,omitempty" toml:"verbose,omitempty" json:"verbose,omitempty" jsonschema:"description=Force the hook's output to be shown even on success"`
}

// DisplayName returns the hook's display label, falling back to its id.
func (h *Hook) DisplayName() string {
	if h.Name != "" {
		return h.Name
	}
	return h.ID
}

// IsLocal reports whether the enclosing repository identifier denotes an
// inline-defined hook source.
func IsLocal(repo string) bool {
	return repo == LocalRepo || repo == MetaRepo
}

// Repo references a remote tool repository at a pinned revision, or the
// sentinel "local" denoting inline-defined hooks. Hooks preserve document
// order.
type Repo struct {
	Repo  string `yaml:"repo" toml:"repo" json:"repo" jsonschema:"required,description=Repository URL or the sentinel 'local'"`
	Rev   string `yaml:"rev,omitempty" toml:"rev,omitempty" json:"rev,omitempty" jsonschema:"description=Pinned revision (tag or commit); required unless repo is local"`
	Hooks []Hook `yaml:"hooks" toml:"hooks" json:"hooks" jsonschema:"required,description=Ordered hooks provided by this repository"`
}

// IsLocal reports whether this source entry defines its hooks inline.
func (r *Repo) IsLocal() bool {
	return IsLocal(r.Repo)
}

// Config represents a parsed .pre-commit-config.yaml document. Repos
// preserve document order; order is semantically relevant because the
// consuming engine may execute hooks in declaration order.
type Config struct {
	Repos []Repo `yaml:"repos" toml:"repos" json:"repos" jsonschema:"required,description=Ordered source entries"`

	DefaultStages           []string          `yaml:"default_stages,omitempty" toml:"default_stages,omitempty" json:"default_stages,omitempty" jsonschema:"description=Default stages for hooks that do not declare their own"`
	DefaultLanguageVersion  map[string]string `yaml:"default_language_version,omitempty" toml:"default_language_version,omitempty" json:"default_language_version,omitempty" jsonschema:"description=Default language versions keyed by language"`
	Files                   string            `yaml:"files,omitempty" toml:"files,omitempty" json:"files,omitempty" jsonschema:"description=Global file filter regular expression"`
	Exclude                 string            `yaml:"exclude,omitempty" toml:"exclude,omitempty" json:"exclude,omitempty" jsonschema:"description=Global exclude regular expression"`
	FailFast                bool              `yaml:"fail_fast,omitempty" toml:"fail_fast,omitempty" json:"fail_fast,omitempty" jsonschema:"description=Stop after the first failing hook"`
	MinimumPreCommitVersion string            `yaml:"minimum_pre_commit_version,omitempty" toml:"minimum_pre_commit_version,omitempty" json:"minimum_pre_commit_version,omitempty" jsonschema:"description=Minimum engine version required to run this configuration"`

	// Extensions captures all other top-level keys for extensibility.
	Extensions map[string]interface{} `yaml:",inline" toml:"-" json:"-" jsonschema:"-"`
}

// SetDefaults sets default values for the configuration.
func (c *Config) SetDefaults() {
	for ri := range c.Repos {
		for hi := range c.Repos[ri].Hooks {
			h := &c.Repos[ri].Hooks[hi]
			if h.Name == "" {
				h.Name = h.ID
			}
		}
	}
}

// HookRef pairs a hook with its enclosing source entry.
type HookRef struct {
	Repo *Repo
	Hook *Hook
}

// Pairs returns every (repo, hook) pair in document order. The schema layer
// asserts nothing about execution order; it only preserves declaration order
// for the consuming engine.
func (c *Config) Pairs() []HookRef {
	var pairs []HookRef
	for ri := range c.Repos {
		repo := &c.Repos[ri]
		for hi := range repo.Hooks {
			pairs = append(pairs, HookRef{Repo: repo, Hook: &repo.Hooks[hi]})
		}
	}
	return pairs
}

// UnmarshalExtension decodes a specific extension's configuration from the
// loaded document into the provided target struct. The target must be a
// pointer. This provides a type-safe way for tooling to access custom
// top-level sections (e.g. the "ci" section some services add).
//
// Example:
//
//	var ci CIConfig
//	err := cfg.UnmarshalExtension("ci", &ci)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// It's not an error if the key doesn't exist.
		// The target struct will simply remain zero-valued.
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}

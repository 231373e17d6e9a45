package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/hookcfg/errors"
	"github.com/grovetools/hookcfg/testutil"
)

const sampleConfig = `repos:
-   repo: https://github.com/pre-commit/pre-commit-hooks
    rev: v4.4.0
    hooks:
    -   id: trailing-whitespace
    -   id: end-of-file-fixer
    -   id: check-yaml
    -   id: debug-statements
-   repo: https://github.com/asottile/pyupgrade
    rev: v3.3.1
    hooks:
    -   id: pyupgrade
        args: [--py37-plus]
-   repo: local
    hooks:
    -   id: rst
        name: rst
        entry: rst-lint --encoding utf-8
        files: ^(README.rst)$
        language: python
        additional_dependencies: [pygments, restructuredtext_lint]
`

func TestLoadFromBytes(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if len(cfg.Repos) != 3 {
		t.Fatalf("Expected 3 repos, got %d", len(cfg.Repos))
	}

	first := cfg.Repos[0]
	if first.Repo != "https://github.com/pre-commit/pre-commit-hooks" {
		t.Errorf("Unexpected first repo: %s", first.Repo)
	}
	if first.Rev != "v4.4.0" {
		t.Errorf("Expected rev v4.4.0, got %s", first.Rev)
	}
	if len(first.Hooks) != 4 {
		t.Errorf("Expected 4 hooks in first repo, got %d", len(first.Hooks))
	}

	local := cfg.Repos[2]
	if !local.IsLocal() {
		t.Error("Expected third repo to be local")
	}
	if local.Rev != "" {
		t.Errorf("Local repo should have no rev, got %s", local.Rev)
	}
	hook := local.Hooks[0]
	if hook.Entry != "rst-lint --encoding utf-8" {
		t.Errorf("Unexpected entry: %s", hook.Entry)
	}
	// The filter stays a verbatim string; the parser never compiles it.
	if hook.Files != "^(README.rst)$" {
		t.Errorf("Files filter not preserved verbatim: %s", hook.Files)
	}
	if len(hook.AdditionalDependencies) != 2 || hook.AdditionalDependencies[0] != "pygments" {
		t.Errorf("Unexpected additional_dependencies: %v", hook.AdditionalDependencies)
	}
}

func TestLoadSingleRepo(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`
repos:
- repo: https://example.com/x
  rev: v1.0
  hooks:
  - id: foo
`))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if len(cfg.Repos) != 1 {
		t.Fatalf("Expected 1 repo, got %d", len(cfg.Repos))
	}
	if cfg.Repos[0].Rev != "v1.0" {
		t.Errorf("Expected rev v1.0, got %s", cfg.Repos[0].Rev)
	}
	if len(cfg.Repos[0].Hooks) != 1 || cfg.Repos[0].Hooks[0].ID != "foo" {
		t.Errorf("Unexpected hooks: %+v", cfg.Repos[0].Hooks)
	}
}

func TestLoadLocalRepoWithoutRev(t *testing.T) {
	_, err := LoadFromBytes([]byte(`
repos:
- repo: local
  hooks:
  - id: mycheck
    entry: ./scripts/check.sh
    language: system
`))
	if err != nil {
		t.Fatalf("Local repo without rev should load, got: %v", err)
	}
}

func TestLoadMissingReposKey(t *testing.T) {
	_, err := LoadFromBytes([]byte(`
default_stages: [pre-commit]
`))
	if !errors.Is(err, errors.ErrCodeMissingField) {
		t.Fatalf("Expected MISSING_FIELD for absent repos key, got: %v", err)
	}
}

func TestLoadMalformedDocument(t *testing.T) {
	_, err := LoadFromBytes([]byte("repos: [unclosed"))
	if !errors.Is(err, errors.ErrCodeMalformedDocument) {
		t.Fatalf("Expected MALFORMED_DOCUMENT, got: %v", err)
	}
}

func TestLoadWrongFieldShape(t *testing.T) {
	_, err := LoadFromBytes([]byte(`
repos:
- repo: https://example.com/x
  rev: v1.0
  hooks:
  - id: foo
    args: not-a-sequence
`))
	if !errors.Is(err, errors.ErrCodeInvalidFieldType) {
		t.Fatalf("Expected INVALID_FIELD_TYPE for scalar args, got: %v", err)
	}
}

func TestArgsOrderPreserved(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`
repos:
- repo: https://example.com/x
  rev: v1.0
  hooks:
  - id: foo
    args: [--third=c, --first, -b, a]
`))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	want := []string{"--third=c", "--first", "-b", "a"}
	got := cfg.Repos[0].Hooks[0].Args
	if len(got) != len(want) {
		t.Fatalf("Expected %d args, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("arg %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestEnvVarExpansion(t *testing.T) {
	os.Setenv("HOOKCFG_TEST_REV", "v9.9.9")
	defer os.Unsetenv("HOOKCFG_TEST_REV")

	cfg, err := LoadFromBytes([]byte(`
repos:
- repo: https://example.com/x
  rev: ${HOOKCFG_TEST_REV}
  hooks:
  - id: foo
`))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Repos[0].Rev != "v9.9.9" {
		t.Errorf("Expected expanded rev v9.9.9, got %s", cfg.Repos[0].Rev)
	}
}

func TestEnvVarDefault(t *testing.T) {
	os.Unsetenv("HOOKCFG_TEST_MISSING")

	cfg, err := LoadFromBytes([]byte(`
repos:
- repo: https://example.com/x
  rev: ${HOOKCFG_TEST_MISSING:-v1.2.3}
  hooks:
  - id: foo
`))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Repos[0].Rev != "v1.2.3" {
		t.Errorf("Expected default rev v1.2.3, got %s", cfg.Repos[0].Rev)
	}
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, errors.ErrCodeConfigNotFound) {
		t.Fatalf("Expected CONFIG_NOT_FOUND, got: %v", err)
	}
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	configPath := testutil.WriteConfig(t, root, ".pre-commit-config.yaml", sampleConfig)

	found, err := FindConfigFile(nested)
	if err != nil {
		t.Fatalf("FindConfigFile failed: %v", err)
	}
	if found != configPath {
		t.Errorf("Expected %s, got %s", configPath, found)
	}
}

func TestFindConfigFilePrecedence(t *testing.T) {
	root := t.TempDir()
	testutil.WriteConfig(t, root, ".pre-commit-config.yml", sampleConfig)
	yamlPath := testutil.WriteConfig(t, root, ".pre-commit-config.yaml", sampleConfig)

	found, err := FindConfigFile(root)
	if err != nil {
		t.Fatalf("FindConfigFile failed: %v", err)
	}
	if found != yamlPath {
		t.Errorf("Expected .yaml to take precedence, got %s", found)
	}
}

func TestLoadFromGitRepo(t *testing.T) {
	testutil.RequireGit(t)

	root := t.TempDir()
	testutil.InitGitRepo(t, root)
	testutil.WriteConfig(t, root, ".pre-commit-config.yaml", sampleConfig)

	nested := filepath.Join(root, "src", "pkg")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(nested)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if len(cfg.Pairs()) != 6 {
		t.Errorf("Expected 6 hooks, got %d", len(cfg.Pairs()))
	}
}

func TestFindConfigFileNotFound(t *testing.T) {
	_, err := FindConfigFile(t.TempDir())
	if !errors.Is(err, errors.ErrCodeConfigNotFound) {
		t.Fatalf("Expected CONFIG_NOT_FOUND, got: %v", err)
	}
}

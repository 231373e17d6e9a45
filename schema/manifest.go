package schema

// ExtensionSchemaURLs maps tolerated top-level extension keys to the
// canonical URL of their JSON schema. Hosted services layer extra sections
// onto hook registry documents (e.g. pre-commit.ci adds a "ci" block); this
// manifest lets strict validation compose those schemas in instead of
// rejecting the keys outright.
var ExtensionSchemaURLs = map[string]string{
	"ci": "https://json.schemastore.org/pre-commit-ci.json",
}

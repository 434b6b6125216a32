package domain

// languageExecutors maps a declared language to its sandbox executor id.
// Unknown languages are rejected before any network call.
var languageExecutors = map[string]int{
	"python":     92,
	"java":       91,
	"javascript": 93,
	"cpp":        54,
	"c++":        54,
	"go":         95,
	"rust":       73,
}

// ExecutorID returns the sandbox executor id mapped to language.
func ExecutorID(language string) (int, bool) {
	id, ok := languageExecutors[language]
	return id, ok
}

// SupportedLanguages lists every language with a mapped executor.
func SupportedLanguages() []string {
	languages := make([]string, 0, len(languageExecutors))
	for lang := range languageExecutors {
		languages = append(languages, lang)
	}
	return languages
}

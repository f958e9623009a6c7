package lang

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/bethropolis/tidejump/internal/logger"
)

var (
	// Global language registry
	registry struct {
		sync.RWMutex
		languages     []*Language
		extToLanguage map[string]*Language
		nameToLang    map[string]*Language
	}

	// One-time initialization
	initOnce sync.Once
)

// Initialize ensures the registry is ready for use
func Initialize() {
	initOnce.Do(func() {
		registry.extToLanguage = make(map[string]*Language)
		registry.nameToLang = make(map[string]*Language)
		registry.languages = make([]*Language, 0)
		logger.DebugTagf("lang", "Language registry initialized")
	})
}

// Register adds a language to the registry
func Register(lang *Language) {
	Initialize()

	registry.Lock()
	defer registry.Unlock()

	registry.languages = append(registry.languages, lang)
	registry.nameToLang[strings.ToLower(lang.Name)] = lang

	for _, ext := range lang.Extensions {
		lowerExt := strings.ToLower(ext)
		if existing, ok := registry.extToLanguage[lowerExt]; ok {
			logger.Warnf("Extension %s already registered to %s, overriding with %s",
				lowerExt, existing.Name, lang.Name)
		}
		registry.extToLanguage[lowerExt] = lang
	}

	logger.DebugTagf("lang", "Registered language: %s with extensions: %v", lang.Name, lang.Extensions)
}

// GetForFile returns the language for a given file path, or nil.
func GetForFile(filePath string) *Language {
	Initialize()

	registry.RLock()
	defer registry.RUnlock()

	return registry.extToLanguage[strings.ToLower(filepath.Ext(filePath))]
}

// GetByName looks a language up by its case-insensitive display name.
func GetByName(name string) *Language {
	Initialize()

	registry.RLock()
	defer registry.RUnlock()

	return registry.nameToLang[strings.ToLower(name)]
}

// GetAll returns all registered languages
func GetAll() []*Language {
	Initialize()

	registry.RLock()
	defer registry.RUnlock()

	result := make([]*Language, len(registry.languages))
	copy(result, registry.languages)
	return result
}

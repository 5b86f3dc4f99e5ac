package translator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/pkg/translator"
)

func TestInitTranslator_LoadsMessages(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.toml"), []byte(`taskNotFound = "Task not found."`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr.toml"), []byte(`taskNotFound = "Tâche introuvable."`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte(`not a translation`), 0o644))

	translator.InitTranslator(translator.Config{
		TranslationFolder:  dir,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	msg, err := i18n.NewLocalizer(translator.Translator, translator.LanguageFr).
		Localize(&i18n.LocalizeConfig{MessageID: "taskNotFound"})
	require.NoError(t, err)
	assert.Equal(t, "Tâche introuvable.", msg)
}

func TestInitTranslator_ShippedFiles(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "translation",
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	for _, lang := range []string{translator.LanguageEn, translator.LanguageFr} {
		msg, err := i18n.NewLocalizer(translator.Translator, lang).
			Localize(&i18n.LocalizeConfig{MessageID: "adminRequired"})
		require.NoError(t, err, lang)
		assert.NotEmpty(t, msg)
	}
}

func TestInitTranslator_InvalidFolder(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "/path/does/not/exist",
		SupportedLanguages: []string{translator.LanguageEn},
	})
	assert.NotNil(t, translator.Translator)
}

func TestMatchLanguage(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  t.TempDir(),
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	tests := map[string]string{
		"":                  translator.LanguageEn,
		"fr":                translator.LanguageFr,
		"fr-CA,fr;q=0.9":    translator.LanguageFr,
		"de-DE,en;q=0.5":    translator.LanguageEn,
		"ja":                translator.LanguageEn,
		"not a header;;q=x": translator.LanguageEn,
	}
	for header, want := range tests {
		assert.Equal(t, want, translator.MatchLanguage(header), header)
	}
}

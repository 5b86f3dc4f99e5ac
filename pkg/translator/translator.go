package translator

import (
	"os"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string // first entry is the fallback
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

var (
	supported = []language.Tag{language.English}
	matcher   = language.NewMatcher(supported)
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	setSupportedLanguages(cfg.SupportedLanguages)

	lstFiles, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() || filepath.Ext(f.Name()) != ".toml" {
			continue
		}

		if _, err := Translator.LoadMessageFile(filepath.Join(cfg.TranslationFolder, f.Name())); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

func setSupportedLanguages(langs []string) {
	tags := make([]language.Tag, 0, len(langs))
	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			zap.L().Warn("ignoring unsupported language", zap.String("lang", lang), zap.Error(err))
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		tags = []language.Tag{language.English}
	}
	supported = tags
	matcher = language.NewMatcher(tags)
}

// MatchLanguage resolves an Accept-Language header to the closest supported
// base language, e.g. "fr-CA,fr;q=0.9" -> "fr".
func MatchLanguage(header string) string {
	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return baseOf(supported[0])
	}
	_, index, _ := matcher.Match(desired...)
	return baseOf(supported[index])
}

func baseOf(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

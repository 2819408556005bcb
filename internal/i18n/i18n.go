// Package i18n provides localized labels and messages for the dashboard.
// Translations are embedded YAML files loaded into a go-i18n bundle.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/j-veylop/bike-rental-dashboard-tui/internal/models"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// DefaultLang is used when no language was initialized.
const DefaultLang = "id"

var (
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
)

// Init loads the embedded locales and selects lang. Unknown languages fall
// back to Indonesian.
func Init(lang string) {
	b := i18n.NewBundle(language.Indonesian)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		b.MustParseMessageFileBytes(data, f.Name())
	}

	matched := match(b, lang)

	mu.Lock()
	bundle = b
	localizer = i18n.NewLocalizer(b, matched)
	current = matched
	mu.Unlock()
}

func match(b *i18n.Bundle, lang string) string {
	tags := b.LanguageTags()
	matcher := language.NewMatcher(tags)
	_, idx, conf := matcher.Match(language.Make(lang))
	if conf == language.No {
		return DefaultLang
	}
	base, _ := tags[idx].Base()
	return base.String()
}

// Lang returns the active language code.
func Lang() string {
	mu.RLock()
	defer mu.RUnlock()
	if current == "" {
		return DefaultLang
	}
	return current
}

// Available returns the codes of all embedded languages, sorted.
func Available() []string {
	ensure()
	mu.RLock()
	defer mu.RUnlock()

	var langs []string
	for _, tag := range bundle.LanguageTags() {
		langs = append(langs, tag.String())
	}
	sort.Strings(langs)
	return langs
}

func ensure() {
	mu.RLock()
	ready := localizer != nil
	mu.RUnlock()
	if !ready {
		Init(DefaultLang)
	}
}

// T translates messageID. A single map argument is used as template data;
// other arguments are applied with fmt.Sprintf. Unknown IDs return the ID.
func T(messageID string, args ...any) string {
	ensure()
	mu.RLock()
	l := localizer
	mu.RUnlock()

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}

	msg, err := l.Localize(cfg)
	if err != nil {
		return messageID
	}
	if len(args) > 0 && strings.Contains(msg, "%") {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// Weather returns the label of a weather situation on the weather chart.
func Weather(w models.WeatherSituation) string {
	return T("weather." + w.Key())
}

// CrossWeather returns the label of a weather category on the time/weather
// cross-tab.
func CrossWeather(w models.WeatherSituation) string {
	return T("crosstab.weather." + w.Key())
}

// TimeOfDay returns the label of a time-of-day category.
func TimeOfDay(t models.TimeOfDay) string {
	return T("time." + t.Key())
}

// Weekday returns the name of a weekday, 0 being Sunday.
func Weekday(d int) string {
	return T(fmt.Sprintf("weekday.%d", d))
}

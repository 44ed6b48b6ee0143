package pagecontroller

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

var (
	supportedLocales = []language.Tag{language.Indonesian, language.AmericanEnglish, language.BritishEnglish}
	localeMatcher    = language.NewMatcher(supportedLocales)

	indonesianMonths = [...]string{
		"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember",
	}
)

// DateFormatter renders publication dates in a long, locale specific form:
// "15 Januari 2024" for id, "January 15, 2024" for en-US, "15 January 2024" for en-GB.
type DateFormatter struct {
	tag language.Tag
	loc *time.Location
}

// NewDateFormatter matches locale against the supported locales, falling back
// to Indonesian. A nil loc formats in UTC.
func NewDateFormatter(locale string, loc *time.Location) DateFormatter {
	if loc == nil {
		loc = time.UTC
	}
	tag := language.Indonesian
	if parsed, err := language.Parse(locale); err == nil {
		_, idx, conf := localeMatcher.Match(parsed)
		if conf != language.No {
			tag = supportedLocales[idx]
		}
	}
	return DateFormatter{tag: tag, loc: loc}
}

func (f DateFormatter) Format(t time.Time) string {
	t = t.In(f.loc)
	switch f.tag {
	case language.AmericanEnglish:
		return t.Format("January 02, 2006")
	case language.BritishEnglish:
		return t.Format("02 January 2006")
	default:
		return fmt.Sprintf("%02d %s %d", t.Day(), indonesianMonths[t.Month()-1], t.Year())
	}
}

func (f DateFormatter) Locale() string {
	return f.tag.String()
}

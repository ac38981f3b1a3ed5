package cashbook

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
)

// Locale holds the number conventions used to read and write prices.
type Locale struct {
	Tag     language.Tag
	Decimal rune // decimal separator
	Group   rune // digit grouping separator
}

// English is the default locale.
var English = Locale{Tag: language.English, Decimal: '.', Group: ','}

// supported locales, the first one is the fallback.
var locales = []Locale{
	English,
	{Tag: language.Korean, Decimal: '.', Group: ','},
	{Tag: language.Japanese, Decimal: '.', Group: ','},
	{Tag: language.Chinese, Decimal: '.', Group: ','},
	{Tag: language.French, Decimal: ',', Group: ' '},
	{Tag: language.German, Decimal: ',', Group: '.'},
	{Tag: language.Spanish, Decimal: ',', Group: '.'},
	{Tag: language.Italian, Decimal: ',', Group: '.'},
	{Tag: language.Portuguese, Decimal: ',', Group: '.'},
	{Tag: language.Dutch, Decimal: ',', Group: '.'},
	{Tag: language.Russian, Decimal: ',', Group: ' '},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = l.Tag
	}
	return language.NewMatcher(tags)
}()

// LocaleFor returns the supported locale closest to name, which is either a
// BCP 47 tag ("de-CH") or a POSIX locale ("ko_KR.UTF-8"). Unknown or invalid
// names give English.
func LocaleFor(name string) Locale {
	// drop the POSIX codeset and modifier.
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return English
	}
	_, index, conf := matcher.Match(tag)
	if conf == language.No {
		return English
	}
	return locales[index]
}

func (l Locale) String() string { return l.Tag.String() }

// isGroup reports whether r is a grouping separator of l. Any space is
// accepted when l groups digits with a space.
func (l Locale) isGroup(r rune) bool {
	return r == l.Group || unicode.Is(unicode.Zs, l.Group) && unicode.Is(unicode.Zs, r)
}

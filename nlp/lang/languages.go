package lang

import (
	"fmt"
	"strings"
)

// Language ties together the codes used to locate a language's data:
// the UD file prefix (usually ISO 639-1), the UniMorph folder (ISO 639-3)
// and the English name used for the UD folder and the rule registry.
type Language struct {
	UD   string
	UM   string
	Name string
}

func (l Language) String() string {
	return l.Name
}

// IsZero is true for the anonymous language used when converting a file
// whose language is unknown.
func (l Language) IsZero() bool {
	return l == Language{}
}

var Languages = []Language{
	{"ar", "ara", "Arabic"},
	{"eu", "eus", "Basque"},
	{"bg", "bul", "Bulgarian"},
	{"ca", "cat", "Catalan"},
	{"cs", "ces", "Czech"},
	{"da", "dan", "Danish"},
	{"nl", "nld", "Dutch"},
	{"en", "eng", "English"},
	{"et", "est", "Estonian"},
	{"fi", "fin", "Finnish"},
	{"fr", "fra", "French"},
	{"de", "deu", "German"},
	{"he", "heb", "Hebrew"},
	{"hi", "hin", "Hindi"},
	{"hu", "hun", "Hungarian"},
	{"ga", "gle", "Irish"},
	{"it", "ita", "Italian"},
	{"la", "lat", "Latin"},
	{"lv", "lav", "Latvian"},
	{"lt", "lit", "Lithuanian"},
	{"no_bokmaal", "nob", "Norwegian-Bokmaal"},
	{"no_nynorsk", "nno", "Norwegian-Nynorsk"},
	{"fa", "fas", "Persian"},
	{"pl", "pol", "Polish"},
	{"pt", "por", "Portuguese"},
	{"ro", "ron", "Romanian"},
	{"ru", "rus", "Russian"},
	{"sl", "slv", "Slovenian"},
	{"es", "spa", "Spanish"},
	{"sv", "swe", "Swedish"},
	{"tr", "tur", "Turkish"},
	{"uk", "ukr", "Ukrainian"},
	{"ur", "urd", "Urdu"},
}

// LookupLanguage finds a language by its UD code, UniMorph code or name.
func LookupLanguage(needle string) (Language, error) {
	for _, l := range Languages {
		if needle == l.UD {
			return l, nil
		}
	}
	for _, l := range Languages {
		if needle == l.UM || strings.EqualFold(needle, l.Name) {
			return l, nil
		}
	}
	return Language{}, fmt.Errorf("unknown language %q", needle)
}

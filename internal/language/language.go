package language

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

type entry struct {
	code2   string // ISO 639-1
	code3   string // ISO 639-2/T
	alt3    string // ISO 639-2/B where it differs
	display string
	word    string
}

var languages = []entry{
	{"en", "eng", "", "English", "english"},
	{"uk", "ukr", "", "Ukrainian", "ukrainian"},
	{"ru", "rus", "", "Russian", "russian"},
	{"ja", "jpn", "", "Japanese", "japanese"},
	{"ko", "kor", "", "Korean", "korean"},
	{"zh", "zho", "chi", "Chinese", "chinese"},
	{"fr", "fra", "fre", "French", "french"},
	{"de", "deu", "ger", "German", "german"},
	{"es", "spa", "", "Spanish", "spanish"},
	{"it", "ita", "", "Italian", "italian"},
	{"pl", "pol", "", "Polish", "polish"},
	{"pt", "por", "", "Portuguese", "portuguese"},
	{"nl", "nld", "dut", "Dutch", "dutch"},
	{"be", "bel", "", "Belarusian", "belarusian"},
	{"kk", "kaz", "", "Kazakh", "kazakh"},
}

var byKey map[string]*entry

func init() {
	byKey = make(map[string]*entry, len(languages)*4)
	for i := range languages {
		e := &languages[i]
		byKey[e.code2] = e
		byKey[e.code3] = e
		byKey[e.word] = e
		if e.alt3 != "" {
			byKey[e.alt3] = e
		}
	}
}

// DisplayName returns a human-readable name for code. Unknown codes come back
// uppercased and blank input reads "Unknown".
func DisplayName(code string) string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return "Unknown"
	}
	if e, ok := byKey[strings.ToLower(trimmed)]; ok {
		return e.display
	}
	if tag, err := language.Parse(trimmed); err == nil {
		if name := display.English.Tags().Name(tag); name != "" {
			return name
		}
	}
	return strings.ToUpper(trimmed)
}

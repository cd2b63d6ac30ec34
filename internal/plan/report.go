package plan

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	reportRuleHalf = 32
	reportRule     = 75
)

// String renders the operator report printed at startup.
func (p *Plan) String() string {
	var b strings.Builder
	half := strings.Repeat("_", reportRuleHalf)
	fmt.Fprintf(&b, "%s ARGUMENTS %s\n", half, half)
	for i, input := range p.inputs {
		fmt.Fprintf(&b, "Input #%04d: %s\n", i+1, input)
	}
	if p.dummy {
		b.WriteString("Dummy mode!\n")
		return b.String()
	}
	fmt.Fprintf(&b, "Stream HEVC: %s\n", p.video)
	fmt.Fprintf(&b, "Streams ENG: %s\n", quoteList(specStrings(p.english)))
	fmt.Fprintf(&b, "Streams UKR: %s\n", quoteList(specStrings(p.ukrainian)))
	fmt.Fprintf(&b, "Streams RUS: %s\n", quoteList(specStrings(p.russian)))
	fmt.Fprintf(&b, "Streams OTH: %s\n", quoteList(specStrings(p.other)))
	fmt.Fprintf(&b, "Streams SUB: %s\n", quoteList(specStrings(p.subtitles)))
	fmt.Fprintf(&b, "Track names: %s\n", quoteList(p.trackNames))
	fmt.Fprintf(&b, "Language   : %s\n", p.language)
	fmt.Fprintf(&b, "Output file: %s\n", p.title)
	fmt.Fprintf(&b, "Output path: %s\n", p.outputPath)
	b.WriteString(strings.Repeat("_", reportRule))
	b.WriteByte('\n')
	return b.String()
}

func quoteList(values []string) string {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, strconv.Quote(v))
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func specStrings(specs []Specifier) []string {
	out := make([]string, 0, len(specs))
	for _, s := range specs {
		out = append(out, string(s))
	}
	return out
}

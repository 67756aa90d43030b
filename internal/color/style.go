package color

import "fmt"

// Style names one SGR styling pair.
type Style int

const (
	Reset Style = iota
	Bold
	Dim
	Italic
	Underline
	Inverse
	Hidden
	Strikethrough
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	Gray
	BgBlack
	BgRed
	BgGreen
	BgYellow
	BgBlue
	BgMagenta
	BgCyan
	BgWhite
	BlackBright
	RedBright
	GreenBright
	YellowBright
	BlueBright
	MagentaBright
	CyanBright
	WhiteBright
	BgBlackBright
	BgRedBright
	BgGreenBright
	BgYellowBright
	BgBlueBright
	BgMagentaBright
	BgCyanBright
	BgWhiteBright

	numStyles
)

type definition struct {
	name    string
	open    int
	close   int
	replace string
}

// definitions is indexed by Style. The array length makes a missing entry a
// compile error.
var definitions = [numStyles]definition{
	Reset:         {"reset", 0, 0, ""},
	Bold:          {"bold", 1, 22, "\x1b[22m\x1b[1m"},
	Dim:           {"dim", 2, 22, "\x1b[22m\x1b[2m"},
	Italic:        {"italic", 3, 23, ""},
	Underline:     {"underline", 4, 24, ""},
	Inverse:       {"inverse", 7, 27, ""},
	Hidden:        {"hidden", 8, 28, ""},
	Strikethrough: {"strikethrough", 9, 29, ""},

	Black:   {"black", 30, 39, ""},
	Red:     {"red", 31, 39, ""},
	Green:   {"green", 32, 39, ""},
	Yellow:  {"yellow", 33, 39, ""},
	Blue:    {"blue", 34, 39, ""},
	Magenta: {"magenta", 35, 39, ""},
	Cyan:    {"cyan", 36, 39, ""},
	White:   {"white", 37, 39, ""},
	Gray:    {"gray", 90, 39, ""},

	BgBlack:   {"bgBlack", 40, 49, ""},
	BgRed:     {"bgRed", 41, 49, ""},
	BgGreen:   {"bgGreen", 42, 49, ""},
	BgYellow:  {"bgYellow", 43, 49, ""},
	BgBlue:    {"bgBlue", 44, 49, ""},
	BgMagenta: {"bgMagenta", 45, 49, ""},
	BgCyan:    {"bgCyan", 46, 49, ""},
	BgWhite:   {"bgWhite", 47, 49, ""},

	BlackBright:   {"blackBright", 90, 39, ""},
	RedBright:     {"redBright", 91, 39, ""},
	GreenBright:   {"greenBright", 92, 39, ""},
	YellowBright:  {"yellowBright", 93, 39, ""},
	BlueBright:    {"blueBright", 94, 39, ""},
	MagentaBright: {"magentaBright", 95, 39, ""},
	CyanBright:    {"cyanBright", 96, 39, ""},
	WhiteBright:   {"whiteBright", 97, 39, ""},

	BgBlackBright:   {"bgBlackBright", 100, 49, ""},
	BgRedBright:     {"bgRedBright", 101, 49, ""},
	BgGreenBright:   {"bgGreenBright", 102, 49, ""},
	BgYellowBright:  {"bgYellowBright", 103, 49, ""},
	BgBlueBright:    {"bgBlueBright", 104, 49, ""},
	BgMagentaBright: {"bgMagentaBright", 105, 49, ""},
	BgCyanBright:    {"bgCyanBright", 106, 49, ""},
	BgWhiteBright:   {"bgWhiteBright", 107, 49, ""},
}

var byName = func() map[string]Style {
	m := make(map[string]Style, numStyles)
	for s, d := range definitions {
		m[d.name] = Style(s)
	}
	return m
}()

// String returns the style name, e.g. "bgRedBright".
func (s Style) String() string {
	if !s.valid() {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return definitions[s].name
}

// Codes returns the SGR open and close codes of s.
func (s Style) Codes() (openCode, closeCode int) {
	if !s.valid() {
		return 0, 0
	}
	d := definitions[s]
	return d.open, d.close
}

func (s Style) valid() bool {
	return s >= 0 && s < numStyles
}

// ParseStyle returns the Style called name.
func ParseStyle(name string) (Style, error) {
	s, ok := byName[name]
	if !ok {
		return 0, fmt.Errorf("unknown style %q", name)
	}
	return s, nil
}

// Styles returns every style in declaration order.
func Styles() []Style {
	all := make([]Style, numStyles)
	for i := range all {
		all[i] = Style(i)
	}
	return all
}

// Package color provides ANSI SGR styling for terminal output.
//
// Styles are composed so that nesting does not bleed: when a styled string
// is embedded in another, the outer style is re-opened after the inner one
// closes. A Table built with New(false) returns its input unstyled, so
// callers need not guard their output.
//
//	styles := color.Default()
//	fmt.Println(styles.Apply(color.Bold, styles.Apply(color.Red, "x")+"y"))
//
// Default detects support once per process. To decide from a specific
// environment, capture it and pass the result to New:
//
//	styles := color.New(color.Detect(platform.Capture(os.Args[1:])))
package color

package dbg

import (
	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
)

// Colors can be switched off for output that isn't a terminal.
var colors = aurora.NewAurora(true)

func SetColors(enabled bool) {
	colors = aurora.NewAurora(enabled)
}

// Found is for things that were found, such as an intersection point.
func Found(s string) string {
	return colors.Green(s).String()
}

// Missing is for things that were looked for but not found.
func Missing(s string) string {
	return colors.Red(s).String()
}

// Dump pretty prints any value, for --debug output.
func Dump(v interface{}) string {
	return pretty.Sprint(v)
}

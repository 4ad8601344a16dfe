// diary/utils/color/color.go
package color

import (
	"github.com/fatih/color"

	"mooddiary/diary/mood"
)

var (
	infoColor    = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)

	levelColors = map[mood.Level]*color.Color{
		mood.Low:    color.New(color.FgBlue),
		mood.Medium: color.New(color.FgYellow),
		mood.High:   color.New(color.FgGreen, color.Bold),
	}
)

// Disable turns colouring off for every helper, e.g. when output is piped.
func Disable() {
	color.NoColor = true
}

func ColorInfo(s string) string {
	return infoColor.Sprint(s)
}

func ColorWarning(s string) string {
	return warningColor.Sprint(s)
}

func ColorError(s string) string {
	return errorColor.Sprint(s)
}

// ColorMood paints s in the colour of the given mood level. Unknown levels
// are returned unchanged.
func ColorMood(level mood.Level, s string) string {
	c, ok := levelColors[level]
	if !ok {
		return s
	}
	return c.Sprint(s)
}

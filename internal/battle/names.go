package battle

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// displayName turns a db symbol into a message name: "solar_beam" -> "Solar Beam".
// A Caser is stateful, so one is created per call: battles run on several goroutines.
func displayName(symbol string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(symbol, "_", " "))
}

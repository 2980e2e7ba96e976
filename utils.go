package wavepick

import (
	"fmt"
	"regexp"
)

var jsonNumbers = regexp.MustCompile(`\s*([0-9]+),\s+([0-9]+)(,)?`)
var jsonBrackets = regexp.MustCompile(`\[(([0-9]+,)+[0-9]+)\s+\](,?)(\s+)`)

// SanitizeJsonArrayLineBreaks collapses encoding/json's MarshalIndent
// line-per-element output for plain integer arrays back onto a single
// line, exactly as the teacher's formatter/main.go and
// utils.go#SanitizeJsonArrayLineBreaks do for route/price arrays in a
// solved instance — here applied to the Orders/Corridors index arrays.
func SanitizeJsonArrayLineBreaks(json string) string {
	res := fmt.Sprintf("%s", json)
	for jsonNumbers.MatchString(res) {
		res = jsonNumbers.ReplaceAllString(res, "$1,$2$3")
	}
	for jsonBrackets.MatchString(res) {
		res = jsonBrackets.ReplaceAllString(res, "[$1]$3$4")
	}
	return res
}

// SPDX-License-Identifier: MIT

package render

import (
	"strconv"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// funcMap is sprig's text functions plus Python literal helpers.
func funcMap() template.FuncMap {
	fm := sprig.TxtFuncMap()
	fm["pystr"] = pyString
	fm["pybool"] = pyBool
	return fm
}

// pyString renders s as a Python string literal. Multi-line markup keeps its
// shape in a triple-quoted literal when that is lossless.
func pyString(s string) string {
	if strings.Contains(s, "\n") &&
		!strings.Contains(s, `"""`) &&
		!strings.Contains(s, `\`) &&
		!strings.HasSuffix(s, `"`) &&
		isPrintable(s) {
		return `"""` + s + `"""`
	}
	return strconv.Quote(s)
}

func isPrintable(s string) bool {
	for _, r := range s {
		if r == '\n' || r == '\t' {
			continue
		}
		if !strconv.IsPrint(r) {
			return false
		}
	}
	return true
}

func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// SPDX-License-Identifier: MIT

package format

import "regexp"

var (
	nameRE    = regexp.MustCompile(`^[_a-zA-Z][_a-zA-Z0-9]{0,31}$`)
	lmNameRE  = regexp.MustCompile(`^[_a-zA-Z0-9]{1,31}$`)
	strTypeRE = regexp.MustCompile(`^str[0-9]+$`)
)

var reserved = map[string]struct{}{
	"_all": {}, "_b": {}, "byte": {}, "_coef": {}, "_cons": {},
	"double": {}, "float": {}, "if": {}, "in": {}, "int": {}, "long": {},
	"_n": {}, "_N": {}, "_pi": {}, "_pred": {}, "_rc": {}, "_skip": {},
	"using": {}, "with": {},
}

// IsName reports a legal identifier: a letter or underscore followed by at
// most 31 letters, digits or underscores.
func IsName(name string) bool { return nameRE.MatchString(name) }

// IsVarName is IsName minus reserved words and storage-type names (strN).
func IsVarName(name string) bool {
	if _, ok := reserved[name]; ok || strTypeRE.MatchString(name) {
		return false
	}

	return IsName(name)
}

// IsLMName reports a legal local-macro name (1..31 word characters).
func IsLMName(name string) bool { return lmNameRE.MatchString(name) }

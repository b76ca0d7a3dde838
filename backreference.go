package fluentrx

import (
	"strconv"
)

// BackReferences appends references to text matched by earlier groups.
// Whether the referenced group exists is for the consuming engine to
// decide.
type BackReferences struct {
	*Builder
}

// RefersToUnnamedGroup matches the text captured by the numbered group n
// (1-based). Emits \n.
//
// Example:
//
//	b := fluentrx.New()
//	b.Groups().Capture(fluentrx.New().Word())
//	b.BackReferences().RefersToUnnamedGroup(1) // (\w)\1
func (r *BackReferences) RefersToUnnamedGroup(n int) *Quantifiers {
	return r.appendAtom(`\` + strconv.Itoa(n))
}

// RefersToNamedGroup matches the text captured by the named group.
// Emits \k<name>.
func (r *BackReferences) RefersToNamedGroup(name string) *Quantifiers {
	return r.appendAtom(`\k<` + name + `>`)
}

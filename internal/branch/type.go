// Package branch defines the branch type discriminator that gates image name mapping.
package branch

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Type classifies a git branch. Its textual form is the upper-case name.
type Type string

const (
	Master      Type = "MASTER"
	Support     Type = "SUPPORT"
	Release     Type = "RELEASE"
	Hotfix      Type = "HOTFIX"
	Bugfix      Type = "BUGFIX"
	Development Type = "DEVELOPMENT"
	Other       Type = "OTHER"
)

// Types lists every known branch type.
var Types = []Type{Master, Support, Release, Hotfix, Bugfix, Development, Other}

// ErrUnknownType is returned by ParseType for names that are not a known Type.
var ErrUnknownType = errors.New("unknown branch type")

func (t Type) String() string {
	return string(t)
}

// Valid reports whether t is one of Types.
func (t Type) Valid() bool {
	for _, k := range Types {
		if t == k {
			return true
		}
	}
	return false
}

// ParseType parses a branch type name case-insensitively.
func ParseType(s string) (Type, error) {
	// cases.Caser is stateful, so a fresh one is used per call.
	t := Type(cases.Upper(language.Und).String(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnknownType, s, strings.Join(Names(), ", "))
	}
	return t, nil
}

// Names returns the textual forms of Types.
func Names() []string {
	names := make([]string, 0, len(Types))
	for _, t := range Types {
		names = append(names, t.String())
	}
	return names
}

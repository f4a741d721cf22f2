package detect

import (
	"go/types"
	"strings"

	"shape-generator/internal/common"
)

// CallForm tells which syntax an operation is available in.
type CallForm int

const (
	CallNone   CallForm = iota // neither form type-checks
	CallMember                 // v0.name(args...)
	CallFree                   // name(v0, args...)
)

// String returns a human-readable form name.
func (f CallForm) String() string {
	switch f {
	case CallNone:
		return "none"
	case CallMember:
		return "member"
	case CallFree:
		return "free"
	default:
		return common.UnknownStr
	}
}

// Member returns the probe expression calling method name on v0.
func Member(name string, args ...string) string {
	return VarName(0) + "." + name + "(" + strings.Join(args, ", ") + ")"
}

// Free returns the probe expression calling function name with v0 first.
func Free(name string, args ...string) string {
	return name + "(" + strings.Join(append([]string{VarName(0)}, args...), ", ") + ")"
}

// ResolveCall reports the form in which name(v0, args...) is callable for
// ts. The member form is preferred when both type-check.
func (p *Prober) ResolveCall(name string, args []string, ts ...types.Type) CallForm {
	if p.Detected(Member(name, args...), ts...) {
		return CallMember
	}

	if p.Detected(Free(name, args...), ts...) {
		return CallFree
	}

	return CallNone
}

// DetectedCall reports whether name is callable on v0, as a method or as a
// free function of the candidate's package, without arguments.
func (p *Prober) DetectedCall(name string, ts ...types.Type) bool {
	return p.ResolveCall(name, nil, ts...) != CallNone
}

// Uniform returns the call expression for the detected form, or "" when
// neither form type-checks.
func (p *Prober) Uniform(name string, args []string, ts ...types.Type) string {
	switch p.ResolveCall(name, args, ts...) {
	case CallMember:
		return Member(name, args...)
	case CallFree:
		return Free(name, args...)
	default:
		return ""
	}
}

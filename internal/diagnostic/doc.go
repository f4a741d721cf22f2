// Package diagnostic provides structured errors, warnings and notes about
// the shapes resolved for analyzed types.
//
// Every diagnostic carries a stable code so that reports can be filtered
// and tests can assert on the kind of problem rather than its wording.
// Error diagnostics block generation; warnings and infos are reported only.
package diagnostic

// Package plan provides the resolution pipeline that produces a Plan
// consumed by code generation.
//
// Resolution pipeline:
//  1. Analyze packages → type graph
//  2. Load YAML (optional) → validate
//  3. For each exported type, concurrently per package:
//     - Probe the arity; overflow and union ambiguity are errors
//     - Pick the serial, tuple and range shapes without instantiating
//     - Force resolution for required types
//     - Check generated names against declared members
//  4. Emit diagnostics (forbidden types, collisions, unmatched required types)
package plan

// Package orchestrator coordinates the greeting pipeline: template
// resolution through a locale catalog, first-name extraction, directive
// interpolation, and dispatch to a registered presentation renderer. It
// applies sensible defaults (builtin catalog, plain renderer) while remaining
// open to dependency injection for advanced callers.
package orchestrator

// Package hook runs the start-up hook end to end: it enforces the
// working-directory precondition, loads the rule document, decides which
// phases apply (install only on first launch, pre_start on every
// launch), dispatches each target file to its format adapter, and takes
// care of the one-time glue around the install phase (external
// initialization command, installation marker, EULA relocation).
//
// Error policy follows the container contract: a broken rule document,
// a wrong working directory, a failed install command, or an I/O error
// on a target file aborts the run with a non-zero exit; a bad parser tag
// or an empty rule set only skips that entry.
package hook

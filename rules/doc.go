// Package rules is the registry of identifier rules available to the linter,
// the configuration loader and the command-line tools.
//
// A rule is registered under its name with a [Factory] that turns the
// ESLint-style option list from a configuration file into a ready [Rule].
// [Default] holds the built-in rules; currently that is affixed-ids.
package rules

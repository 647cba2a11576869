// Package naming converts identifier words between case styles.
//
// It is used to propose a conforming spelling for identifiers that fail the
// camelCase base style. Only the underscore separates words, since it is
// the only separator a JavaScript identifier can contain.
package naming

// Package config loads rule configuration files.
//
// The format mirrors the "rules" section of an ESLint configuration. Each
// rule maps to a severity, or to a list whose first element is the severity
// and whose remaining elements are the rule's options:
//
//	rules:
//	  affixed-ids:
//	    - error
//	    - allowedPrefixes: [opt_]
//	      allowedSuffixes:
//	        - pattern: "_[0-9]+"
//
// Severities are off, warn and error, or 0, 1 and 2. Files are YAML or
// JSON; unknown top-level keys are rejected. [Find] locates .idstyle.yaml,
// .idstyle.yml or .idstyle.json by walking up from a directory.
package config

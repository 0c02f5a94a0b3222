package util

import (
	"os"
	"regexp"
	"strings"
)

var VariableDetection = regexp.MustCompile(`(?i)\$([a-z0-9_]+)|\${([a-z0-9_]+)(([^a-z0-9_]+)(.*?))?}`)

// Performs environment substitution on the source string.
// Supports $VAR, or ${VAR} optionally with the -, :-, +, :+ modifiers.
// Ignores other (or invalid) modifiers, substituting as if they weren't there.
func SubEnv(environment map[string]string, source string) string {
	for {
		matches := VariableDetection.FindStringSubmatch(source)

		if matches == nil {
			break
		}

		switch {
		case matches[2] == "":
			source = strings.ReplaceAll(source, matches[0], environment[matches[1]])
		default:
			env := environment[matches[2]]

			switch matches[4] {
			case "-", ":-":
				if env == "" {
					env = matches[5]
				}
			case "+", ":+":
				if env != "" {
					env = matches[5]
				}
			}

			source = strings.ReplaceAll(source, matches[0], env)
		}
	}

	return source
}

// EnvMap turns KEY=VALUE pairs (as returned by os.Environ) into a map.
func EnvMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))

	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}

	return env
}

// ExpandArgs substitutes environment variables into each argument of a
// configured command line.
func ExpandArgs(args []string) []string {
	env := EnvMap(os.Environ())
	expanded := make([]string, 0, len(args))

	for _, arg := range args {
		expanded = append(expanded, SubEnv(env, arg))
	}

	return expanded
}

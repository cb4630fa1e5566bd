package config

import (
	"bytes"
	"fmt"
	"strconv"
)

// StarterOptions are the answers used to render a starter configuration.
type StarterOptions struct {
	// Root is the depot root template, e.g. "${HOME}/depot".
	Root string
	// Scheme and Host form the base URL for short addresses.
	Scheme string
	Host   string
}

// DefaultStarterOptions returns the answers used by config init --yes.
func DefaultStarterOptions() StarterOptions {
	return StarterOptions{
		Root:   "${HOME}/depot",
		Scheme: "https",
		Host:   "github.com",
	}
}

// Starter renders a commented starter configuration in the given format.
// The result parses with Parse.
func Starter(opts StarterOptions, format Format) []byte {
	var b bytes.Buffer
	if format == FormatYAML {
		fmt.Fprintf(&b, `# depot configuration
core:
  root: %s
parse:
  default:
    scheme: %s
    host: %s
resolve:
  path: ${DEPOT_REMOTE_HOST}${DEPOT_REMOTE_PATH}
subcommands:
  get:
    command: [shell, "git clone ${DEPOT_REMOTE_URL} ${DEPOT_LOCAL_PATH}"]
  create:
    command: [shell, "mkdir -p ${DEPOT_LOCAL_PATH}", "git -C ${DEPOT_LOCAL_PATH} init"]
  move:
    command: [shell, "mkdir -p $(dirname ${DEPOT_LOCAL_PATH})", "mv ${DEPOT_SOURCE_LOCAL_PATH} ${DEPOT_LOCAL_PATH}"]
  list:
    project:
      excludes: ["**/node_modules"]
    fields:
      name: [shell, "basename ${DEPOT_LOCAL_PATH}"]
overloads: []
`, strconv.Quote(opts.Root), strconv.Quote(opts.Scheme), strconv.Quote(opts.Host))
		return b.Bytes()
	}

	fmt.Fprintf(&b, `// depot configuration
{
  "core": {
    // Directory every project lives under.
    "root": %s
  },
  "parse": {
    // Base URL for addresses like "owner/repo".
    "default": { "scheme": %s, "host": %s }
  },
  "resolve": {
    "path": "${DEPOT_REMOTE_HOST}${DEPOT_REMOTE_PATH}"
  },
  "subcommands": {
    "get": {
      "command": ["shell", "git clone ${DEPOT_REMOTE_URL} ${DEPOT_LOCAL_PATH}"]
    },
    "create": {
      "command": ["shell", "mkdir -p ${DEPOT_LOCAL_PATH}", "git -C ${DEPOT_LOCAL_PATH} init"]
    },
    "move": {
      "command": ["shell", "mkdir -p $(dirname ${DEPOT_LOCAL_PATH})", "mv ${DEPOT_SOURCE_LOCAL_PATH} ${DEPOT_LOCAL_PATH}"]
    },
    "list": {
      "project": { "excludes": ["**/node_modules"] },
      "fields": { "name": ["shell", "basename ${DEPOT_LOCAL_PATH}"] }
    }
  },
  "overloads": []
}
`, strconv.Quote(opts.Root), strconv.Quote(opts.Scheme), strconv.Quote(opts.Host))
	return b.Bytes()
}


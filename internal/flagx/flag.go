// Package flagx lets several independent flag sets share one command line.
// Each consumer picks out only the flags it owns before calling flag.Parse,
// so unknown flags belonging to other consumers never cause parse errors.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs returns the subset of args that belongs to the named flags.
// Names are given without dashes; both "-name" and "--name" spellings match,
// as do the "-name=value" and "-name value" forms. A value is only taken from
// the next argument when it does not itself start with a dash.
func FilterArgs(args []string, names []string) []string {
	owned := make(map[string]struct{}, len(names))
	for _, n := range names {
		owned[n] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		name, hasValue, ok := flagName(args[i])
		if !ok {
			continue
		}
		if _, mine := owned[name]; !mine {
			continue
		}

		filtered = append(filtered, args[i])
		if !hasValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// flagName extracts the bare flag name from a single argument.
func flagName(arg string) (name string, hasValue bool, ok bool) {
	if !strings.HasPrefix(arg, "-") || arg == "-" || arg == "--" {
		return "", false, false
	}
	name = strings.TrimLeft(arg, "-")
	if before, _, found := strings.Cut(name, "="); found {
		return before, true, true
	}
	return name, false, true
}

// ConfigFile returns the JSON config path given with -c or -config, or an
// empty string when neither is present.
func ConfigFile(args []string) string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"c", "config"}))

	return path
}

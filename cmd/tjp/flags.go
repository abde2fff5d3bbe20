package main

import (
	"strings"

	"github.com/spf13/pflag"
)

// normalizeFlagName accepts underscores for dashes, so that options can be spelled like the
// configuration keys, e.g., --wire_log.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

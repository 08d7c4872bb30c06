package cliutils

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// MustMarkFlagRequired panics if the call to MarkFlagRequired() fails.
func MustMarkFlagRequired(flags *pflag.FlagSet, name string) {
	if err := cobra.MarkFlagRequired(flags, name); err != nil {
		panic(err)
	}
}

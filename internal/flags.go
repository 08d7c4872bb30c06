package internal

import "github.com/spf13/pflag"

type GlobalFlags struct {
	Verbose      bool
	LogLevel     string
	ManifestPath string
}

func (g *GlobalFlags) AddToFlags(flags *pflag.FlagSet) {
	flags.BoolVarP(&g.Verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVar(&g.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVarP(&g.ManifestPath, "manifest", "m", "custom_components/ems_balcony_solar/manifest.json", "Path to the manifest holding the version field")
}

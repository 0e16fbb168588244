package config

import (
	"github.com/spf13/pflag"
)

func RegisterFlags(flags *pflag.FlagSet, base Config) {
	flags.String("source", base.SourcePath, "Initial source folder")
	flags.String("alias", base.Alias, "Initial folder alias")
	flags.String("theme", base.Theme, "Color theme (dark or light)")
	flags.String("folders", base.FoldersFile, "File listing the already configured folders")
	flags.String("service-url", base.Service.URL, "Remote service URL")
	flags.String("service-user", base.Service.User, "Remote service user")
	flags.Bool("setup-service", false, "Start with the remote service page")
	flags.Bool("mock", false, "Use an in-memory remote service")
	flags.Duration("probe-timeout", base.ProbeTimeout, "Timeout for a single remote folder check")
	flags.String("log-file", base.LogFile, "Log file (the terminal belongs to the wizard)")
	flags.Bool("debug", false, "Enable debug logging")
}

// ApplyFlags overrides base with the flags the user actually set.
func ApplyFlags(flags *pflag.FlagSet, base Config) (Config, error) {
	var err error
	str := func(name string, target *string) {
		if err != nil || !flags.Changed(name) {
			return
		}
		*target, err = flags.GetString(name)
	}
	boolean := func(name string, target *bool) {
		if err != nil || !flags.Changed(name) {
			return
		}
		*target, err = flags.GetBool(name)
	}

	str("source", &base.SourcePath)
	str("alias", &base.Alias)
	str("theme", &base.Theme)
	str("folders", &base.FoldersFile)
	str("service-url", &base.Service.URL)
	str("service-user", &base.Service.User)
	str("log-file", &base.LogFile)
	boolean("setup-service", &base.SetupService)
	boolean("mock", &base.Mock)
	boolean("debug", &base.Debug)
	if err == nil && flags.Changed("probe-timeout") {
		base.ProbeTimeout, err = flags.GetDuration("probe-timeout")
	}
	return base, err
}

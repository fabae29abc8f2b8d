package cmdconfig

import (
	"github.com/spf13/pflag"
)

const (
	VerboseOpt        = "verbose"
	LogFileOpt        = "log-file"
	LogFormatOpt      = "log-format"
	NonInteractiveOpt = "non-interactive"
	ConfigDirOpt      = "config-dir"
	AccessTokenOpt    = "access-token"
	APIHostOpt        = "api-host"
)

// GlobalFlags are common to all commands.
type GlobalFlags struct {
	Verbose        bool   `mapstructure:"verbose"`
	LogFile        string `mapstructure:"log-file"`
	LogFormat      string `mapstructure:"log-format"`
	NonInteractive bool   `mapstructure:"non-interactive"`
	ConfigDir      string `mapstructure:"config-dir"`
	AccessToken    string `mapstructure:"access-token"`
	APIHost        string `mapstructure:"api-host"`
}

// BindPersistentFlags for all commands.
func BindPersistentFlags(flags *pflag.FlagSet) {
	flags.SortFlags = true
	flags.BoolP("help", "h", false, "print help for command")
	flags.BoolP(VerboseOpt, "v", false, "print details")
	flags.StringP(LogFileOpt, "l", "", "path to a log file for details")
	flags.String(LogFormatOpt, "console", "format of stdout and stderr")
	flags.Bool(NonInteractiveOpt, false, "disable interactive dialogs")
	flags.String(ConfigDirOpt, "", "directory with the projects config, default is the user config dir")
	flags.StringP(AccessTokenOpt, "t", "", "access token, default are the application default credentials")
	flags.String(APIHostOpt, "", "remote config API host")
}

func (f GlobalFlags) masked() GlobalFlags {
	if len(f.AccessToken) > 7 {
		f.AccessToken = f.AccessToken[:7] + "*****"
	} else if f.AccessToken != "" {
		f.AccessToken = "*****"
	}
	return f
}

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/keboola/remote-config-modifier/internal/pkg/env"
	"github.com/keboola/remote-config-modifier/internal/pkg/log"
	"github.com/keboola/remote-config-modifier/internal/pkg/project"
	"github.com/keboola/remote-config-modifier/internal/pkg/remote"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/cmd/config"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/cmd/parameter"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/cmdconfig"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dependencies"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dialog"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/helpmsg"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/table"
	"github.com/keboola/remote-config-modifier/internal/pkg/telemetry"
	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
	"github.com/keboola/remote-config-modifier/internal/pkg/version"
)

//nolint:gochecknoinits
func init() {
	// Disable commands auto-sorting
	cobra.EnableCommandSorting = false

	// Add custom template functions
	cobra.AddTemplateFunc(`cmds`, func(root *cobra.Command) string {
		var out strings.Builder

		var maxCmdPathLength int
		visitSubCommands(root, func(cmd *cobra.Command) bool {
			cmdPath := strings.TrimPrefix(cmd.CommandPath(), cmd.Root().Use+` `)
			if len(cmdPath) > maxCmdPathLength {
				maxCmdPathLength = len(cmdPath)
			}
			return true
		})

		tmpl := fmt.Sprintf("  %%-%ds  %%s", maxCmdPathLength)

		visitSubCommands(root, func(cmd *cobra.Command) bool {
			if !cmd.IsAvailableCommand() && cmd.Name() != `help` {
				return false
			}

			// Indent and pad right
			cmdPath := strings.TrimPrefix(cmd.CommandPath(), cmd.Root().Use+` `)
			out.WriteString(strings.TrimRight(fmt.Sprintf(tmpl, cmdPath, cmd.Short), " "))
			out.WriteString("\n")
			return true
		})
		return strings.Trim(out.String(), "\n")
	})
}

type Cmd = cobra.Command

type RootCommand struct {
	*Cmd
	logger      log.Logger
	loggerReady bool
	globalFlags cmdconfig.GlobalFlags
	fs          afero.Fs
	logFile     *log.File
	logFormat   log.LogFormat
	cmdByPath   map[string]*cobra.Command
	aliases     *orderedmap.OrderedMap
}

// NewRootCommand creates parent of all sub-commands.
func NewRootCommand(stdin terminal.FileReader, stdout terminal.FileWriter, stderr io.Writer, osEnvs *env.Map, fs afero.Fs) *RootCommand {
	// Command definition
	root := &RootCommand{
		logger:    log.NewNopLogger(), // temporary logger, we don't have a path to the log file yet
		fs:        fs,
		cmdByPath: make(map[string]*cobra.Command),
		aliases:   orderedmap.New(),
	}
	root.Cmd = &Cmd{
		Use:               "rcm", // name of the binary
		Version:           version.Version(),
		Short:             helpmsg.Read(`app`),
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		SilenceUsage:      true,
		SilenceErrors:     true, // custom error handling, see printError
		RunE: func(cmd *cobra.Command, args []string) (cmdErr error) {
			// Print help if no command specified
			return root.Help()
		},
	}

	// Setup in/out
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	// Setup templates
	root.SetVersionTemplate("{{.Version}}\n")
	root.SetUsageTemplate(helpmsg.Read(`usage`) + "\n")

	// Persistent flags for all sub-commands
	cmdconfig.BindPersistentFlags(root.PersistentFlags())

	// Root command flags
	root.Flags().BoolP("version", "V", false, "print version")

	// Init when flags are parsed
	p := &dependencies.ProviderRef{}
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Load ENVs, OS ENVs take precedence
		envs := osEnvs
		if workingDir, err := os.Getwd(); err == nil {
			envs = env.LoadDotEnv(cmd.Context(), root.logger, osEnvs, root.fs, []string{workingDir})
		}

		// Bind flags - with ENVs from files
		root.globalFlags = cmdconfig.GlobalFlags{}
		if err := cmdconfig.NewBinder(envs, root.logger).Bind(cmd.Context(), cmd.Flags(), &root.globalFlags); err != nil {
			return err
		}

		// Setup logger
		root.setupLogger()

		// Interactive prompt
		prompt := cli.NewPrompt(stdin, stdout, stderr, root.globalFlags.NonInteractive)
		if prompt.IsInteractive() {
			table.FitTerminal(stdout.Fd())
		}

		// Create dependencies provider
		p.Set(dependencies.NewProvider(
			root.logger,
			telemetry.NewNop(),
			root.fs,
			dialog.New(prompt),
			root.globalFlags,
			envs,
			stdout,
		))

		return nil
	}

	// Sub-commands
	root.AddCommand(
		parameter.AddCommand(p),
		parameter.UpdateCommand(p),
		parameter.DeleteCommand(p),
		parameter.MoveToCommand(p),
		parameter.MoveOutCommand(p),
		parameter.ShowCommand(p),
		parameter.MigrateCommand(p),
		config.Commands(p),
	)

	// Get all sub-commands by full path, for example "config add"
	visitSubCommands(root.Cmd, func(cmd *cobra.Command) (goDeep bool) {
		cmdPath := cmd.CommandPath()
		cmdPath = strings.TrimPrefix(cmdPath, root.Use+` `)
		root.cmdByPath[cmdPath] = cmd
		return true
	})

	// Aliases
	root.addAlias(`rm`, `delete`)
	root.addAlias(`mv`, `move-to`)
	root.addAlias(`ls`, `show`)

	// Add aliases to usage template
	root.Annotations = map[string]string{`aliases`: root.listAliases()}

	return root
}

// Execute command or sub-command.
func (root *RootCommand) Execute() (exitCode int) {
	defer func() {
		exitCode = root.tearDown(exitCode, recover())
	}()

	if err := root.Cmd.Execute(); err != nil {
		root.printError(err)
		return 1
	}
	return 0
}

func (root *RootCommand) listAliases() string {
	// Join aliases to single line
	lines := make([]string, 0, len(root.aliases.Keys()))
	var maxLength int
	for _, cmd := range root.aliases.Keys() {
		aliasesRaw, _ := root.aliases.Get(cmd)
		aliasesStr := strings.Join(aliasesRaw.([]string), `, `)
		lines = append(lines, aliasesStr)
		length := len(cmd)
		if length > maxLength {
			maxLength = length
		}
	}

	// Format
	var out strings.Builder
	for i, cmd := range root.aliases.Keys() {
		tmpl := fmt.Sprintf("  %%-%ds  %%s\n", maxLength)
		out.WriteString(fmt.Sprintf(tmpl, cmd, lines[i]))
	}
	return strings.TrimRight(out.String(), "\n")
}

func (root *RootCommand) addAlias(alias, cmdPath string) {
	target, found := root.cmdByPath[cmdPath]
	if !found {
		panic(errors.Errorf(`cannot create cmd alias "%s": command "%s" not found`, alias, cmdPath))
	}

	// Add alias
	use := strings.Split(target.Use, ` `)
	use[0] = alias
	aliasCmd := *target
	aliasCmd.Use = strings.Join(use, ` `)
	aliasCmd.Hidden = true
	root.AddCommand(&aliasCmd)

	// Store alias for help print
	var aliases []string
	aliasesRaw, found := root.aliases.Get(cmdPath)
	if found {
		aliases = aliasesRaw.([]string)
	}
	aliases = append(aliases, alias)
	root.aliases.Set(cmdPath, aliases)
}

func (root *RootCommand) printError(errRaw error) {
	// Convert to MultiError
	var originalErrs errors.MultiError
	if v, ok := errRaw.(errors.MultiError); ok { // nolint: errorlint
		originalErrs = v
	} else {
		originalErrs = errors.NewMultiError()
		originalErrs.Append(errRaw)
	}

	// Iterate over errors and add hints if needed
	ctx := root.ctx()
	modifiedErrs := errors.NewMultiError()
	var notFound project.NotFoundError
	var conflict remote.VersionConflictError
	for _, err := range originalErrs.WrappedErrors() {
		switch {
		case errors.Is(err, dialog.ErrCanceled):
			root.logger.Info(ctx, `Operation was canceled, no changes were saved.`)
			continue
		case errors.As(err, &notFound):
			root.logger.Infof(ctx, `Configured projects can be listed by the "config show" command.`)
			modifiedErrs.Append(err)
		case errors.As(err, &conflict):
			root.logger.Infof(ctx, `The document was modified by someone else, please run the command again.`)
			modifiedErrs.Append(err)
		default:
			modifiedErrs.Append(err)
		}
	}

	if modifiedErrs.Len() == 0 {
		return
	}

	fullErr := errors.PrefixError(modifiedErrs, "Error")
	root.PrintErrln(errors.Format(fullErr))
}

func (root *RootCommand) setupLogger() {
	// Get log file
	var logFileErr error
	root.logFile, logFileErr = log.NewLogFile(root.globalFlags.LogFile)

	var logFormatErr error
	root.logFormat, logFormatErr = log.NewLogFormat(root.globalFlags.LogFormat)

	// Create logger
	root.logger = log.NewCliLogger(root.OutOrStdout(), root.ErrOrStderr(), root.logFile, root.logFormat, root.globalFlags.Verbose)
	root.loggerReady = true

	// Warn if user specified log file + it cannot be opened
	ctx := root.ctx()
	if logFileErr != nil && root.globalFlags.LogFile != "" {
		root.logger.Warnf(ctx, "Cannot open log file: %s", logFileErr)
	}

	// Warn if user specified invalid log format
	if logFormatErr != nil {
		root.logger.Warnf(ctx, "Invalid log format: %s", logFormatErr)
	}

	// Log info
	root.logger.Debug(ctx, root.Version)
	root.logger.Debugf(ctx, "Running command %v", os.Args)

	if root.logFile == nil {
		root.logger.Debug(ctx, `Log file: -`)
	} else {
		root.logger.Debug(ctx, `Log file: `+root.logFile.Path())
	}
}

// tearDown does clean-up after command execution.
func (root *RootCommand) tearDown(exitCode int, panicErr any) int {
	// Logger may be uninitialized, if error occurred before initialization
	if !root.loggerReady {
		root.setupLogger()
	}

	if panicErr != nil {
		logFilePath := ""
		if root.logFile != nil {
			logFilePath = root.logFile.Path()
		}

		// Process panic
		exitCode = cli.ProcessPanic(root.ctx(), panicErr, root.logger, logFilePath)
	}

	// Close log file
	if err := root.logFile.TearDown(exitCode != 0); err != nil {
		root.PrintErrln(err.Error())
	}
	return exitCode
}

func (root *RootCommand) ctx() context.Context {
	if ctx := root.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func visitSubCommands(root *cobra.Command, callback func(cmd *cobra.Command) (goDeep bool)) {
	for _, cmd := range root.Commands() {
		goDeep := callback(cmd)
		if goDeep {
			visitSubCommands(cmd, callback)
		}
	}
}

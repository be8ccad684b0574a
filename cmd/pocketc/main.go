package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"
	"gopkg.in/urfave/cli.v1"

	"pocketc/pkg/history"
	"pocketc/pkg/interp"
)

const clientIdentifier = "pocketc"

var (
	app = cli.NewApp()

	maxStepsFlag = cli.Int64Flag{
		Name:  "max-steps",
		Usage: "Statement/iteration budget before a run is aborted (0 = unlimited)",
		Value: interp.DefaultMaxSteps,
	}
	noColorFlag = cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable colored diagnostics",
	}
	historyFileFlag = cli.StringFlag{
		Name:  "history",
		Usage: "Path of the execution history file",
	}
	noHistoryFlag = cli.BoolFlag{
		Name:  "no-history",
		Usage: "Do not record this run in the execution history",
	}
	timeFlag = cli.BoolFlag{
		Name:  "time",
		Usage: "Report the elapsed execution time on standard error",
	}
)

func init() {
	app.Name = clientIdentifier
	app.Usage = "run programs written in a small C subset"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		configFileFlag,
		maxStepsFlag,
		noColorFlag,
		historyFileFlag,
		noHistoryFlag,
	}
	app.Commands = []cli.Command{
		runCommand,
		tokensCommand,
		astCommand,
		replCommand,
		historyCommand,
		dumpConfigCommand,
	}
	// A bare file argument runs it.
	app.Action = func(ctx *cli.Context) error {
		if ctx.Args().Present() {
			return runSource(ctx)
		}
		return cli.ShowAppHelp(ctx)
	}
	app.Before = func(ctx *cli.Context) error {
		cfg, err := makeConfig(ctx)
		if err != nil {
			return err
		}
		if cfg.NoColor {
			color.NoColor = true
		}
		return nil
	}
	sort.Sort(cli.CommandsByName(app.Commands))
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var runCommand = cli.Command{
	Action:    runSource,
	Name:      "run",
	Usage:     "Execute a source file ('-' reads standard input)",
	ArgsUsage: "<file>",
	Flags:     []cli.Flag{timeFlag},
	Description: `The run command pushes the file through the whole pipeline and
prints the program output. Warnings and errors go to standard error.`,
}

var tokensCommand = cli.Command{
	Action:    dumpTokens,
	Name:      "tokens",
	Usage:     "Print the token stream of a source file",
	ArgsUsage: "<file>",
}

var astCommand = cli.Command{
	Action:    dumpAST,
	Name:      "ast",
	Usage:     "Print the parsed statements of a source file",
	ArgsUsage: "<file>",
}

// readSource loads the program text for the file commands.
func readSource(ctx *cli.Context) (string, error) {
	path := ctx.Args().First()
	if path == "" {
		return "", fmt.Errorf("missing source file argument")
	}
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func runSource(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	src, err := readSource(ctx)
	if err != nil {
		return err
	}

	res, runErr := interp.RunWithOptions(src, interp.Options{MaxSteps: cfg.MaxSteps})

	if !ctx.GlobalBool(noHistoryFlag.Name) {
		if err := recordRun(cfg, src, res, runErr); err != nil {
			warnColor.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}

	if runErr != nil {
		errColor.Fprintln(os.Stderr, runErr.Error())
		return cli.NewExitError("", 1)
	}
	fmt.Print(res.Output)
	for _, w := range res.Warnings {
		warnColor.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if ctx.Bool(timeFlag.Name) {
		fmt.Fprintf(os.Stderr, "finished in %s\n", res.Duration.Round(time.Millisecond))
	}
	if res.ExitCode != 0 {
		return cli.NewExitError("", res.ExitCode)
	}
	return nil
}

func recordRun(cfg *Config, src string, res *interp.Result, runErr *interp.Error) error {
	store := history.NewStore(cfg.HistoryFile, cfg.HistoryLimit)
	entry := history.Entry{
		ExecutedAt: time.Now(),
		Source:     src,
	}
	if runErr != nil {
		entry.Error = runErr.Error()
	} else {
		entry.Output = res.Output
		entry.Warnings = res.Warnings
		entry.ExitCode = res.ExitCode
		entry.Duration = res.Duration
	}
	return store.Append(entry)
}

func dumpTokens(ctx *cli.Context) error {
	src, err := readSource(ctx)
	if err != nil {
		return err
	}
	tokens, lexErr := interp.Lex(interp.Sanitize(src))
	if lexErr != nil {
		errColor.Fprintln(os.Stderr, lexErr.Error())
		return cli.NewExitError("", 1)
	}
	renderTokenTable(os.Stdout, tokens)
	return nil
}

func dumpAST(ctx *cli.Context) error {
	src, err := readSource(ctx)
	if err != nil {
		return err
	}
	tokens, lexErr := interp.Lex(interp.Sanitize(src))
	if lexErr != nil {
		errColor.Fprintln(os.Stderr, lexErr.Error())
		return cli.NewExitError("", 1)
	}
	body, warnings, parseErr := interp.Parse(tokens)
	if parseErr != nil {
		errColor.Fprintln(os.Stderr, parseErr.Error())
		return cli.NewExitError("", 1)
	}
	for _, st := range body {
		fmt.Println(st.String())
	}
	for _, w := range warnings {
		warnColor.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	return nil
}

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/peterh/liner"
	"gopkg.in/urfave/cli.v1"

	"pocketc/pkg/history"
	"pocketc/pkg/interp"
)

var replCommand = cli.Command{
	Action: runREPL,
	Name:   "repl",
	Usage:  "Start an interactive session",
	Description: `The repl command reads statements interactively. Input that does
not define a main function is wrapped in one before it runs. A snippet
executes once its braces balance and it ends with ';' or '}'.`,
}

func runREPL(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	store := history.NewStore(cfg.HistoryFile, cfg.HistoryLimit)

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	promptColor.Println("pocketc interactive session (:quit to exit, :reset to clear input)")

	var buf []string
	for {
		prompt := "pocketc> "
		if len(buf) > 0 {
			prompt = "    ...> "
		}
		input, err := line.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			buf = nil
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(input) {
		case ":quit", ":q", ":exit":
			return nil
		case ":reset":
			buf = nil
			continue
		case "":
			if len(buf) == 0 {
				continue
			}
		}

		buf = append(buf, input)
		snippet := strings.Join(buf, "\n")
		if !snippetComplete(snippet) {
			continue
		}
		buf = nil
		line.AppendHistory(snippet)

		src := snippet
		if !strings.Contains(snippet, "main") {
			src = "int main(void) {\n" + snippet + "\nreturn 0;\n}\n"
		}

		res, runErr := interp.RunWithOptions(src, interp.Options{MaxSteps: cfg.MaxSteps})
		if !ctx.GlobalBool(noHistoryFlag.Name) {
			entry := history.Entry{ExecutedAt: time.Now(), Source: snippet}
			if runErr != nil {
				entry.Error = runErr.Error()
			} else {
				entry.Output = res.Output
				entry.Warnings = res.Warnings
				entry.ExitCode = res.ExitCode
				entry.Duration = res.Duration
			}
			if err := store.Append(entry); err != nil {
				warnColor.Fprintf(os.Stderr, "warning: %v\n", err)
			}
		}
		if runErr != nil {
			errColor.Println(runErr.Error())
			continue
		}
		fmt.Print(res.Output)
		if res.Output != "" && !strings.HasSuffix(res.Output, "\n") {
			fmt.Println()
		}
		for _, w := range res.Warnings {
			warnColor.Fprintf(os.Stderr, "warning: %s\n", w)
		}
	}
}

// snippetComplete reports whether the buffered input forms a runnable
// unit: braces balance (string literals aside) and the text ends with a
// semicolon or closing brace.
func snippetComplete(snippet string) bool {
	depth := 0
	inString := false
	escaped := false
	for _, r := range snippet {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
		}
	}
	if depth > 0 || inString {
		return false
	}
	trimmed := strings.TrimSpace(snippet)
	return strings.HasSuffix(trimmed, ";") || strings.HasSuffix(trimmed, "}")
}

package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All generators read flagRegistry, so a new flag only needs a registry entry.
type FlagCompletion struct {
	Long      string   // long flag name without "--"
	Short     string   // short flag without "-"
	Help      string   // description text
	Values    []string // suggested values (nil = boolean or free-form)
	ValueName string   // label for the value; empty for boolean flags
	IsFile    bool     // true if the flag takes a file path
}

var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "total", Help: "Number of simulated people", Values: []string{"1000000", "10000000", "300000000"}, ValueName: "count"},
	{Long: "batch-size", Help: "Number of people per batch", Values: []string{"100000", "1000000"}, ValueName: "count"},
	{Long: "flips", Help: "Consecutive heads required", Values: []string{"10", "16", "20", "24"}, ValueName: "flips"},
	{Long: "workers", Help: "Worker pool size", ValueName: "count"},
	{Long: "seed", Help: "Random seed", ValueName: "seed"},
	{Long: "ordered", Help: "Report batches in submission order"},
	{Long: "compact", Help: "Show a progress bar"},
	{Long: "tui", Help: "Show a live dashboard"},
	{Long: "quiet", Short: "q", Help: "Print only the final figures"},
	{Long: "verbose", Short: "v", Help: "Show statistics and resource usage"},
	{Long: "timeout", Help: "Maximum run time", Values: []string{"30s", "1m", "5m", "10m"}, ValueName: "duration"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "log-level", Help: "Diagnostic log level", Values: []string{"debug", "info", "warn", "error", "disabled"}, ValueName: "level"},
	{Long: "metrics", Help: "Print Prometheus metrics"},
	{Long: "env-file", Help: "Dotenv file with overrides", IsFile: true, ValueName: "file"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish", "powershell"}, ValueName: "shell"},
}

// GenerateCompletion writes a completion script for the given shell
// ("bash", "zsh", "fish" or "powershell").
func GenerateCompletion(out io.Writer, shell string) error {
	var script string
	switch shell {
	case "bash":
		script = bashCompletion()
	case "zsh":
		script = zshCompletion()
	case "fish":
		script = fishCompletion()
	case "powershell", "ps":
		script = powerShellCompletion()
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish, powershell)", shell)
	}
	if _, err := io.WriteString(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

// flagNames returns every spelling of the flag, long form first.
func flagNames(f FlagCompletion) []string {
	var names []string
	if f.Long != "" {
		names = append(names, "--"+f.Long)
	}
	if f.Short != "" {
		names = append(names, "-"+f.Short)
	}
	return names
}

func bashCompletion() string {
	var opts []string
	var cases strings.Builder
	for _, f := range flagRegistry {
		opts = append(opts, flagNames(f)...)
		var body string
		switch {
		case f.IsFile:
			body = `COMPREPLY=( $(compgen -f -- "${cur}") )`
		case len(f.Values) > 0:
			body = fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " "))
		default:
			continue
		}
		fmt.Fprintf(&cases, "        %s)\n            %s\n            return 0\n            ;;\n",
			strings.Join(flagNames(f), "|"), body)
	}

	return fmt.Sprintf(`# Bash completion script for coinsim
# Add this to your ~/.bashrc or ~/.bash_completion

_coinsim_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _coinsim_completions coinsim
`, strings.Join(opts, " "), cases.String())
}

func zshCompletion() string {
	var args []string
	for _, f := range flagRegistry {
		suffix := ""
		switch {
		case f.IsFile:
			suffix = fmt.Sprintf(":%s:_files", f.ValueName)
		case len(f.Values) > 0:
			suffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
		case f.ValueName != "":
			suffix = fmt.Sprintf(":%s:", f.ValueName)
		}
		if f.Short != "" {
			args = append(args, fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
				f.Short, f.Long, f.Short, f.Long, f.Help, suffix))
		} else {
			args = append(args, fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, suffix))
		}
	}

	return fmt.Sprintf(`#compdef coinsim

# Zsh completion script for coinsim
# Place this file in a directory listed in $fpath

_coinsim() {
    _arguments -s \
%s
}

_coinsim "$@"
`, strings.Join(args, " \\\n"))
}

func fishCompletion() string {
	lines := []string{
		"# Fish completion script for coinsim",
		"# Add this to ~/.config/fish/completions/coinsim.fish",
		"",
		"complete -c coinsim -f",
	}
	for _, f := range flagRegistry {
		parts := []string{"complete -c coinsim"}
		if f.Short != "" {
			parts = append(parts, "-s "+f.Short)
		}
		parts = append(parts, "-l "+f.Long, fmt.Sprintf("-d '%s'", f.Help))
		switch {
		case f.IsFile:
			parts = append(parts, "-rF")
		case len(f.Values) > 0:
			parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
		case f.ValueName != "":
			parts = append(parts, "-x")
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n") + "\n"
}

func powerShellCompletion() string {
	var options, switches []string
	for _, f := range flagRegistry {
		for _, name := range flagNames(f) {
			options = append(options, fmt.Sprintf("        @{Name = '%s'; Description = '%s' }", name, f.Help))
		}
		if len(f.Values) == 0 {
			continue
		}
		quoted := make([]string, len(f.Values))
		for i, v := range f.Values {
			quoted[i] = "'" + v + "'"
		}
		switches = append(switches, fmt.Sprintf(`        '--%s' {
            @(%s) | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, f.Long, strings.Join(quoted, ", ")))
	}

	return fmt.Sprintf(`# PowerShell completion script for coinsim
# Add this to your $PROFILE

Register-ArgumentCompleter -Native -CommandName coinsim -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
%s
    )

    $previous = $commandAst.CommandElements[-1].ToString()
    if ($wordToComplete -ne '') {
        $previous = $commandAst.CommandElements[-2].ToString()
    }

    switch ($previous) {
%s
    }

    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`, strings.Join(options, ",\n"), strings.Join(switches, "\n"))
}

// Package i18n provides internationalization support for cat-facts-cli.
// All user-facing strings are centralized here for future localization.
package i18n

// Message keys organized by functional area.
// The current implementation uses English as the default.

// Greeting printed by the root command
const (
	MsgGreeting = "Hello from cat-facts-cli!"
)

// Command descriptions
const (
	// Root command
	CmdRootShort = "A CLI tool that wraps the cat-facts API"
	CmdRootLong  = `cat-facts-cli - A CLI tool that wraps the cat-facts API.

Run without arguments to print a greeting.

Examples:
  cat-facts-cli
  cat-facts-cli --debug`

	// Completion command
	CmdCompletionShort = "Generate shell completion scripts"
	CmdCompletionLong  = `Generate the completion script for the given shell.

Bash:
  # Linux
  cat-facts-cli completion bash > /etc/bash_completion.d/cat-facts-cli

  # macOS
  cat-facts-cli completion bash > $(brew --prefix)/etc/bash_completion.d/cat-facts-cli

Zsh:
  # Enable shell completion first if it is not already on:
  echo "autoload -U compinit; compinit" >> ~/.zshrc

  cat-facts-cli completion zsh > "${fpath[1]}/_cat-facts-cli"

Fish:
  cat-facts-cli completion fish > ~/.config/fish/completions/cat-facts-cli.fish

PowerShell:
  cat-facts-cli completion powershell > cat-facts-cli.ps1
  # then source the file from your PowerShell profile`

	// Version template, rendered by cobra for --version
	VersionTemplate = "cat-facts-cli %s\n  Commit: %s\n  Built:  %s\n"
)

// Flag descriptions
const (
	FlagConfig  = "config file (default searches ./.cat-facts-cli.yaml, $HOME/.cat-facts-cli.yaml)"
	FlagVerbose = "show informational log output"
	FlagDebug   = "show debug log output"
	FlagQuiet   = "only log errors"
	FlagNoColor = "disable colored output"
)

// Log messages
const (
	LogConfigLoaded   = "config loaded"
	LogConfigFallback = "using default config"
	LogGreeting       = "writing greeting"
)

// Error messages for the errors package
const (
	// Error operation names
	ErrOpConfig = "config"
	ErrOpOutput = "output"

	// Error messages
	ErrMsgLoadConfig  = "failed to load configuration"
	ErrMsgWriteOutput = "failed to write to standard output"
)

// Config validation messages
const (
	ErrReadConfigFile  = "error reading config file: %w"
	ErrUnmarshalConfig = "error unmarshaling config: %w"
	ErrInvalidLogLevel = "invalid log_level: %s"
)

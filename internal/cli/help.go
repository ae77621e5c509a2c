package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
)

// Custom help styles
var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(DecayBright).
			MarginBottom(1)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(DecayMid).
			Italic(true).
			MarginBottom(1)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(DecayMid).
				MarginTop(1)

	helpFlagStyle = lipgloss.NewStyle().
			Foreground(DecayBright).
			Bold(true)

	helpArgStyle = lipgloss.NewStyle().
			Foreground(WarnAmber).
			Bold(true)

	helpDefaultStyle = lipgloss.NewStyle().
				Foreground(SlateGray).
				Italic(true)
)

// StyledHelpPrinter creates a custom help printer with Lipgloss styling
func StyledHelpPrinter(options kong.HelpOptions) kong.HelpPrinter {
	return kong.HelpPrinter(func(options kong.HelpOptions, ctx *kong.Context) error {
		var sb strings.Builder

		node := ctx.Selected()
		if node == nil {
			node = ctx.Model.Node
		}

		// Title and description
		sb.WriteString(helpTitleStyle.Render(AppName))
		sb.WriteString("\n")

		desc := Tagline
		if node != ctx.Model.Node && node.Help != "" {
			desc = node.Help
		}

		sb.WriteString(helpDescStyle.Render(desc))
		sb.WriteString("\n")

		// Usage
		sb.WriteString(helpSectionStyle.Render("Usage:"))
		sb.WriteString("\n  ")

		if node == ctx.Model.Node {
			sb.WriteString(fmt.Sprintf("%s <command> [flags]", ctx.Model.Name))
		} else {
			sb.WriteString(fmt.Sprintf("%s %s [flags]", ctx.Model.Name, ctx.Command()))
		}

		sb.WriteString("\n")

		// Commands section
		commands := getCommands(node)
		if len(commands) > 0 {
			sb.WriteString("\n")
			sb.WriteString(helpSectionStyle.Render("Commands:"))
			sb.WriteString("\n")

			for _, cmd := range commands {
				sb.WriteString("  ")
				sb.WriteString(helpArgStyle.Render(cmd.name))

				if cmd.help != "" {
					sb.WriteString("  ")
					sb.WriteString(cmd.help)
				}

				sb.WriteString("\n")
			}
		}

		// Arguments section
		args := getArguments(node)
		if len(args) > 0 {
			sb.WriteString("\n")
			sb.WriteString(helpSectionStyle.Render("Arguments:"))
			sb.WriteString("\n")

			for _, arg := range args {
				sb.WriteString("  ")
				sb.WriteString(helpArgStyle.Render(arg.name))

				if arg.help != "" {
					sb.WriteString("  ")
					sb.WriteString(arg.help)
				}

				sb.WriteString("\n")
			}
		}

		// Flags section
		flags := getFlags(node)
		if len(flags) > 0 {
			sb.WriteString("\n")
			sb.WriteString(helpSectionStyle.Render("Flags:"))
			sb.WriteString("\n")

			for _, flag := range flags {
				sb.WriteString("  ")
				sb.WriteString(helpFlagStyle.Render(flag.flags))

				if flag.help != "" {
					sb.WriteString("  ")
					sb.WriteString(flag.help)
				}

				if flag.defaultVal != "" {
					sb.WriteString(" ")
					sb.WriteString(helpDefaultStyle.Render("(default: " + flag.defaultVal + ")"))
				}

				sb.WriteString("\n")
			}
		}

		sb.WriteString("\n")
		fmt.Fprint(ctx.Stdout, sb.String())

		return nil
	})
}

type command struct {
	name string
	help string
}

type argument struct {
	name string
	help string
}

type flag struct {
	flags      string
	help       string
	defaultVal string
}

func getCommands(node *kong.Node) []command {
	var commands []command

	for _, child := range node.Children {
		if child.Hidden {
			continue
		}

		commands = append(commands, command{name: child.Name, help: child.Help})
	}

	return commands
}

func getArguments(node *kong.Node) []argument {
	var args []argument

	for _, arg := range node.Positional {
		args = append(args, argument{name: arg.Summary(), help: arg.Help})
	}

	return args
}

func getFlags(node *kong.Node) []flag {
	var flags []flag

	// Always include help flag
	flags = append(flags, flag{
		flags: "-h, --help",
		help:  "Show context-sensitive help.",
	})

	for _, f := range node.Flags {
		if f.Name == "help" || f.Hidden {
			continue
		}

		var flagStr string
		if f.Short != 0 {
			flagStr = fmt.Sprintf("-%c, --%s", f.Short, f.Name)
		} else {
			flagStr = "--" + f.Name
		}

		if !f.IsBool() && f.PlaceHolder != "" {
			flagStr += "=" + strings.ToUpper(f.PlaceHolder)
		}

		// Only show meaningful defaults
		defaultVal := ""
		if f.HasDefault && !f.IsBool() && f.Default != "" && f.Default != "0" {
			defaultVal = f.Default
		}

		flags = append(flags, flag{
			flags:      flagStr,
			help:       f.Help,
			defaultVal: defaultVal,
		})
	}

	return flags
}

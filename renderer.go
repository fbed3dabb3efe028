package commando

import (
	"errors"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/napalu/commando/i18n"
	"github.com/napalu/commando/internal/messages"
	"github.com/napalu/commando/internal/util"
	"github.com/napalu/commando/types"
)

// DefaultRenderer renders help screens and terminal errors. Colours are used when the output of the
// Command is a terminal unless SetColor overrides it.
type DefaultRenderer struct {
	cmd      *Command
	useColor *bool
	width    int
}

func NewRenderer(cmd *Command) *DefaultRenderer {
	return &DefaultRenderer{cmd: cmd}
}

// SetColor forces colours on or off
func (r *DefaultRenderer) SetColor(enabled bool) {
	r.useColor = &enabled
}

// SetWidth forces the width help text is wrapped to. 0 restores terminal detection.
func (r *DefaultRenderer) SetWidth(width int) {
	r.width = width
}

// Width returns the width help text is wrapped to
func (r *DefaultRenderer) Width() int {
	if r.width > 0 {
		return r.width
	}
	width, _ := util.TerminalSize(r.cmd.Stdout())

	return width
}

// CommandHelp returns the program name header, the help text and the help entry of every option in
// natural order
func (r *DefaultRenderer) CommandHelp() string {
	width := r.Width()
	header := r.style(r.cmd.Stdout(), color.FgWhite, color.BgGreen, color.Bold)

	var sb strings.Builder
	sb.WriteString(header.Sprint(util.Header(" "+r.cmd.Name(), width)))
	sb.WriteString("\n")

	if text := r.cmd.HelpText(); text != "" {
		sb.WriteString("\n")
		sb.WriteString(util.Wrap(text, 0, 0, width))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	for _, option := range r.cmd.sortedOptions() {
		sb.WriteString(r.OptionHelp(option))
		sb.WriteString("\n")
	}

	return sb.String()
}

// OptionHelp returns the flag line (or positional title) followed by the wrapped description
func (r *DefaultRenderer) OptionHelp(option *Option) string {
	width := r.Width()
	bold := r.style(r.cmd.Stdout(), color.Bold)
	underline := r.style(r.cmd.Stdout(), color.Underline)
	red := r.style(r.cmd.Stdout(), color.FgRed)

	var head string
	if option.IsNamed() {
		var sb strings.Builder
		sb.WriteString("\n")
		sb.WriteString(option.Key().Flag())
		for _, alias := range option.Aliases() {
			sb.WriteString("/")
			sb.WriteString(types.Name(alias).Flag())
		}
		if !option.IsBoolean() && !option.IsIncrement() {
			sb.WriteString(" ")
			sb.WriteString(underline.Sprint(r.tr(messages.MsgArgumentPlaceholderKey)))
		}
		sb.WriteString("\n")
		head = sb.String()
	} else if option.Title() != "" {
		head = option.Title() + "\n"
	} else {
		head = r.tr(messages.MsgArgumentTitleKey, option.Key().String()) + "\n"
	}

	var titleLine string
	if option.IsNamed() && option.Title() != "" {
		titleLine = option.Title() + "."
		if option.IsRequired() {
			titleLine += " "
		}
	}
	if option.IsRequired() {
		titleLine += red.Sprint(r.tr(messages.MsgRequiredKey))
	}
	if titleLine != "" {
		titleLine += " "
	}

	description := titleLine + option.Description()
	if util.Truthy(option.Default()) {
		description += " " + r.tr(messages.MsgDefaultKey, option.Default())
	}

	var sb strings.Builder
	sb.WriteString(bold.Sprint(head))
	if description = strings.TrimSpace(description); description != "" {
		for _, line := range strings.Split(description, "\n") {
			sb.WriteString(util.Wrap(line, 5, 1, width))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// TerminalError formats err as "ERROR: <message>" in white bold on red, translated to the language
// of the Command when possible
func (r *DefaultRenderer) TerminalError(err error) string {
	msg := err.Error()
	var tr i18n.TranslatableError
	if errors.As(err, &tr) {
		msg = tr.Translate(r.cmd.Language())
	}

	style := r.style(r.cmd.Stderr(), color.FgWhite, color.BgRed, color.Bold)

	return style.Sprint(r.tr(messages.MsgErrorPrefixKey, msg) + " ")
}

func (r *DefaultRenderer) tr(key string, args ...any) string {
	return i18n.Default().TL(r.cmd.Language(), key, args...)
}

func (r *DefaultRenderer) style(w io.Writer, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	enabled := util.IsTerminal(w)
	if r.useColor != nil {
		enabled = *r.useColor
	}
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c
}

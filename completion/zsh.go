package completion

import (
	"fmt"
	"strings"
)

type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	fn := functionName(programName)
	script.WriteString(fmt.Sprintf(`#compdef %s

_%s() {
    _arguments -s \`, programName, fn))

	for _, flag := range data.Flags {
		desc := escapeZsh(firstLine(flag.Description))

		var action string
		if flag.TakesValue {
			switch {
			case len(flag.Values) > 0:
				action = fmt.Sprintf(":value:(%s)", escapeZsh(strings.Join(patterns(flag.Values), " ")))
			case flag.File:
				action = ":file:_files"
			default:
				action = ":value: "
			}
		}

		// aliases exclude each other unless the flag may be repeated
		exclusion := ""
		if len(flag.Names) > 1 && !flag.Repeatable {
			exclusion = "(" + strings.Join(flag.Names, " ") + ")"
		}
		repeat := ""
		if flag.Repeatable {
			repeat = "*"
		}

		for _, name := range flag.Names {
			script.WriteString(fmt.Sprintf(`
        '%s%s%s[%s]%s' \`, exclusion, repeat, name, desc, action))
		}
	}

	script.WriteString(fmt.Sprintf(`
        '*:argument:_files'
}

_%s "$@"
`, fn))

	return script.String()
}

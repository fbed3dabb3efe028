package completion

import (
	"fmt"
	"strings"
)

type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	for _, flag := range data.Flags {
		cmd := fmt.Sprintf("complete -c %s", programName)
		for _, short := range flag.Short() {
			cmd += " -s " + short
		}
		for _, long := range flag.Long() {
			cmd += " -l " + long
		}

		if flag.TakesValue {
			cmd += " -r"
			switch {
			case len(flag.Values) > 0:
				cmd += fmt.Sprintf(" -f -a '%s'", escapeFish(strings.Join(patterns(flag.Values), " ")))
			case flag.File:
				cmd += " -F"
			}
		} else {
			cmd += " -f"
		}

		if desc := firstLine(flag.Description); desc != "" {
			cmd += fmt.Sprintf(" -d '%s'", escapeFish(desc))
		}
		script.WriteString(cmd + "\n")
	}

	return script.String()
}

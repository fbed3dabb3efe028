package completion

import (
	"fmt"
	"strings"
)

type PowerShellGenerator struct{}

func (g *PowerShellGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`Register-ArgumentCompleter -Native -CommandName '%s' -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $elements = $commandAst.CommandElements | ForEach-Object { $_.ToString() }
    $previous = if ($wordToComplete -eq '') { $elements[-1] } else { $elements[-2] }

    switch ($previous) {`, escapePowerShell(programName)))

	for _, flag := range data.Flags {
		if !flag.TakesValue || len(flag.Values) == 0 {
			continue
		}
		quoted := make([]string, 0, len(flag.Names))
		for _, name := range flag.Names {
			quoted = append(quoted, "'"+escapePowerShell(name)+"'")
		}
		script.WriteString(fmt.Sprintf(`
        { $_ -in %s } {
            @(`, strings.Join(quoted, ", ")))
		for _, v := range flag.Values {
			desc := v.Description
			if desc == "" {
				desc = v.Pattern
			}
			script.WriteString(fmt.Sprintf(`
                [System.Management.Automation.CompletionResult]::new('%s', '%s', 'ParameterValue', '%s')`,
				escapePowerShell(v.Pattern), escapePowerShell(v.Pattern), escapePowerShell(desc)))
		}
		script.WriteString(`
            ) | Where-Object { $_.CompletionText -like "$wordToComplete*" }
            return
        }`)
	}

	script.WriteString(`
    }

    @(`)
	for _, flag := range data.Flags {
		desc := firstLine(flag.Description)
		for _, name := range flag.Names {
			tooltip := desc
			if tooltip == "" {
				tooltip = name
			}
			script.WriteString(fmt.Sprintf(`
        [System.Management.Automation.CompletionResult]::new('%s', '%s', 'ParameterName', '%s')`,
				escapePowerShell(name), escapePowerShell(name), escapePowerShell(tooltip)))
		}
	}
	script.WriteString(`
    ) | Where-Object { $_.CompletionText -like "$wordToComplete*" }
}
`)

	return script.String()
}

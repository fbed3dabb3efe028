package completion

import (
	"fmt"
	"strings"
)

type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data Data) string {
	var script strings.Builder

	fn := functionName(programName)
	script.WriteString(fmt.Sprintf(`#!/bin/bash

_%s_completion() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    case "${prev}" in`, fn))

	for _, flag := range data.Flags {
		if !flag.TakesValue {
			continue
		}
		var reply string
		switch {
		case len(flag.Values) > 0:
			reply = fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "$cur") )`, escapeBash(strings.Join(patterns(flag.Values), " ")))
		case flag.File:
			reply = `COMPREPLY=( $(compgen -f -- "$cur") )`
		default:
			reply = `COMPREPLY=()`
		}
		script.WriteString(fmt.Sprintf(`
        %s)
            %s
            return
            ;;`, strings.Join(flag.Names, "|"), reply))
	}

	script.WriteString(fmt.Sprintf(`
    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "%s" -- "$cur") )
        return
    fi

    COMPREPLY=( $(compgen -f -- "$cur") )
}

complete -F _%s_completion %s
`, strings.Join(data.Names(), " "), fn, programName))

	return script.String()
}

package commando

import (
	"path/filepath"

	"github.com/napalu/commando/completion"
	"github.com/napalu/commando/types"
)

// CompletionData returns the shell completion data of every named option in help order
func (c *Command) CompletionData() completion.Data {
	c.attachHelp()

	var data completion.Data
	for _, option := range c.sortedOptions() {
		if !option.IsNamed() {
			continue
		}

		flag := completion.Flag{
			Names:       []string{option.Key().Flag()},
			Description: option.Description(),
			TakesValue:  !option.IsBoolean() && !option.IsIncrement(),
			Repeatable:  option.IsIncrement(),
			File:        option.IsFile(),
		}
		if flag.Description == "" {
			flag.Description = option.Title()
		}
		for _, alias := range option.Aliases() {
			flag.Names = append(flag.Names, types.Name(alias).Flag())
		}
		for _, choice := range option.Choices() {
			flag.Values = append(flag.Values, completion.Value{Pattern: choice})
		}
		data.Flags = append(data.Flags, flag)
	}

	return data
}

// Completion returns the completion script of shell (bash, zsh, fish or powershell) for the
// options declared so far
func (c *Command) Completion(shell string) (string, error) {
	g, err := completion.GetGenerator(shell)
	if err != nil {
		return "", err
	}

	return g.Generate(filepath.Base(c.Name()), c.CompletionData()), nil
}

// InstallCompletion writes the completion script of shell to the user's completion directory and
// returns the path written
func (c *Command) InstallCompletion(shell string) (string, error) {
	m, err := completion.NewManager(shell, c.Name())
	if err != nil {
		return "", err
	}
	m.Accept(c.CompletionData())

	return m.Save()
}

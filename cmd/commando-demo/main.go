// Command commando-demo greets people and shows most commando features:
//
//	commando-demo -vv --title Dr --lang de Ada
//	commando-demo -c ./*.go --since 2024-01-02 Ada
//	commando-demo --completion bash
//	commando-demo --install-completion zsh
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/napalu/commando"
	"github.com/napalu/commando/completion"
	"github.com/napalu/commando/types"
	"golang.org/x/text/language"
)

func main() {
	cmd := commando.New(os.Args)
	cmd.SetHelp("Greets people. Demonstrates options, flags, positional arguments and their rules.")

	cmd.Argument().
		Require().
		Title("name").
		Describe("A person's name").
		Map(func(v any) any { return strings.TrimSpace(v.(string)) })

	cmd.Option("t").
		Alias("title").
		Describe("When set, use this title to address the person").
		Choices("Mister", "Mr", "Misses", "Mrs", "Miss", "Ms", "Dr").
		Map(func(v any) any {
			switch v {
			case "Mister":
				return "Mr"
			case "Misses":
				return "Mrs"
			}
			return v
		})

	cmd.Flag("v").
		Alias("verbose").
		Describe("More output, repeat for even more").
		Increment(3)

	cmd.Flag("s").
		Alias("shout").
		Describe("Greet loudly").
		Boolean()

	cmd.Flag("c").
		Alias("config").
		Describe("Configuration files to read (glob patterns allowed)").
		File(true, true)

	cmd.Flag("since").
		Describe("Only greet people met after this date").
		Must(commando.IsDate).
		Map(commando.MapToTime).
		Needs("0")

	cmd.Flag("lang").
		Describe("Language of error messages").
		Default("en").
		Must(commando.Matches(`^[a-z]{2}(-[A-Z]{2})?$`))

	cmd.Flag("completion").
		Describe("Print the completion script of a shell and exit").
		Choices(completion.Shells()...)

	cmd.Flag("install-completion").
		Describe("Install the completion script of a shell in the user's completion directory and exit").
		Choices(completion.Shells()...)

	if lang, err := language.Parse(valueOf(os.Args, "--lang", "en")); err == nil {
		cmd.SetLanguage(lang)
	}

	// completion scripts are handled before parsing so that required arguments do not get in the way
	if shell := valueOf(os.Args, "--completion", ""); shell != "" {
		script, err := cmd.Completion(shell)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(commando.StatusError)
		}
		fmt.Print(script)
		return
	}
	if shell := valueOf(os.Args, "--install-completion", ""); shell != "" {
		path, err := cmd.InstallCompletion(shell)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(commando.StatusError)
		}
		fmt.Println("completion script written to", path)
		return
	}

	status, err := cmd.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(status)
	}
	if status != commando.StatusOK || cmd.DidShowHelp() {
		os.Exit(status)
	}

	greeting := "Hello"
	if title, _ := cmd.GetString("title"); title != "" {
		greeting += " " + title
	}
	name, _ := cmd.GetString("0")
	greeting += " " + name + "!"

	if shout, _ := cmd.GetBool("shout"); shout {
		greeting = strings.ToUpper(greeting)
	}
	fmt.Println(greeting)

	verbosity, _ := cmd.GetInt("v")
	if verbosity > 0 {
		if files, err := cmd.GetFiles("config"); err == nil {
			fmt.Printf("read %d config file(s)\n", len(files))
		}
	}
	if verbosity > 1 {
		if since, err := cmd.GetTime("since"); err == nil {
			fmt.Printf("met %s ago\n", time.Since(since).Round(time.Hour))
		}
	}
	if verbosity > 2 {
		cmd.Range(func(key types.Key, value any) bool {
			fmt.Printf("%-10s %v\n", key.Flag(), value)
			return true
		})
	}
}

// valueOf finds the value of flag before parsing, e.g. so that parse errors are already localised
func valueOf(args []string, flag, fallback string) string {
	for i, arg := range args {
		if arg == flag && i+1 < len(args) {
			return args[i+1]
		}
	}

	return fallback
}

package main

import (
	"os"

	"rsoni/hisab/cmd/categorize"
	"rsoni/hisab/cmd/commit"
	"rsoni/hisab/cmd/insight"
	"rsoni/hisab/cmd/list"
	"rsoni/hisab/cmd/parse"
	"rsoni/hisab/cmd/remove"
	"rsoni/hisab/cmd/root"
	"rsoni/hisab/cmd/tax"
	"rsoni/hisab/cmd/wealth"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(commit.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(remove.Cmd)
	root.Cmd.AddCommand(tax.Cmd)
	root.Cmd.AddCommand(insight.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(wealth.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

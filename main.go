package main

import "github.com/KaramelBytes/tabsweep-cli/cmd"

func main() {
	cmd.Execute()
}

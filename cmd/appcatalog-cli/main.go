package main

import "appcatalog/cmd/appcatalog-cli/cmd"

func main() {
	cmd.Execute()
}

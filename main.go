package main

import "github.com/jakerains/configpdfprocessor/cmd"

func main() {
	cmd.Execute()
}

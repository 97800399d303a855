package main

import "github.com/fakeyudi/pastediff/cmd"

func main() {
	cmd.Execute()
}

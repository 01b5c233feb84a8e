package main

import "github.com/kamusis/devguide/cmd"

func main() {
	cmd.Execute()
}

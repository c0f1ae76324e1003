package main

import "github.com/fabianwinter93/pycodex/cmd"

func main() {
	cmd.Execute()
}

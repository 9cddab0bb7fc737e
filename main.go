package main

import "github.com/theirongolddev/fixgrocery/cmd"

func main() {
	cmd.Execute()
}

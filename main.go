package main

import "github.com/marcfrederick/rusht/cmd"

func main() {
	cmd.Execute()
}

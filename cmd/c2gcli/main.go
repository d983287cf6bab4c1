package main

import "github.com/momeni/car2go-client/cmd/c2gcli/command"

func main() {
	command.Execute()
}

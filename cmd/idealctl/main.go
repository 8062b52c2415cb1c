package main

import "github.com/Dirk1989/Ideal/cmd/idealctl/command"

func main() {
	command.Execute()
}

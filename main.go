package main

import "github.com/ryohji/ulisp/cmd"

func main() {
	cmd.Execute()
}

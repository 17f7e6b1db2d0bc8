package main

import "github.com/srazash/linkledger/internal/cli"

func main() {
	cli.Execute()
}

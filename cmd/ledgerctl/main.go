package main

import "github.com/sangkips/vendor-ledger-api/internal/cli"

func main() {
	cli.Execute()
}

package main

import "ideas-listing/internal/cli"

func main() {
	cli.Execute()
}

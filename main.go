package main

import "github.com/smancke/hubconn/cli"

func main() {
	cli.Main()
}

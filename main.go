package main

import "github.com/naka-gawa/standups-report/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/jfmyers9/sharkfin/cmd"

func main() {
	cmd.Execute()
}

package main

import "perfgate/cmd"

func main() {
	cmd.Execute()
}

package main

import "r2-client/cmd"

func main() {
	cmd.Execute()
}

package main

import "dropops/cmd/client/cmd"

func main() {
	cmd.Execute()
}

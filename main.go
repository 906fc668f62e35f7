package main

import "lincloud/cmd"

func main() {
	cmd.Execute()
}

package main

import "VitaMe/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/Gintarich/KarambaIDEA/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/Edem2000/ledgerly/cmd"

func main() {
	cmd.Execute()
}

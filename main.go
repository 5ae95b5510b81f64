package main

import "github.com/nchapman/convosage/cmd"

func main() {
	cmd.Execute()
}

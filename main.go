package main

import "github.com/samhoang/strand/cmd"

func main() {
	cmd.Execute()
}

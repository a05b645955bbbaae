package main

import "github.com/k1LoW/git-imgname/cmd"

func main() {
	cmd.Execute()
}

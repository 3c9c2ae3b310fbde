package main

import "github.com/rakhmonovquvonchbek/taskemon/cmd/taskemon/root"

func main() {
	root.Execute()
}

package main

import "bet-board/cmd"

func main() {
	cmd.Execute()
}

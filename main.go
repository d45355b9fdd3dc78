package main

import "github.com/rpupo63/devfolio-backend/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/sqliteodbc/registerdriver/cmd"

func main() {
	cmd.Execute()
}

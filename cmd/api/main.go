// Package main is the entry point for the product catalog web application.
package main

import "github.com/jdabachine3378-svg/TP-3-Application-CRUD-avec-MySQL-EJS-et-Express/cmd/api/cmd"

func main() {
	cmd.Execute()
}

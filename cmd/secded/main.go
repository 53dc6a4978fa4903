/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/ssargent/secded/cmd/secded/cmd"

func main() {
	cmd.Execute()
}

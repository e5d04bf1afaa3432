// Package main is the entry point for sailctl, the sailing listing CLI.
package main

import "github.com/sailing-search/sailing-listing-service/internal/adapter/cli"

func main() {
	cli.Execute()
}

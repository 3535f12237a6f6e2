/*
Copyright © 2025 abhay
*/
package main

import "github.com/abhay/bmark/cmd"

func main() {
	cmd.Execute()
}

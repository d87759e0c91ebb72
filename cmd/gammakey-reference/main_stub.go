//go:build !windows

package main

import "log"

func main() {
	log.Fatal("gammakey-reference only runs on Windows")
}

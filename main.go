package main

import (
	"flag"
	"os"
)

var (
	silentFlag = flag.Bool("s", false, "suppress the final buffer dump")
	textFlag   = flag.String("t", "", "initial buffer contents")
)

func main() { os.Exit(main1()) }

func main1() int {
	flag.Parse()
	ed := NewEditor(
		WithStdin(os.Stdin),
		WithStdout(os.Stdout),
		WithStderr(os.Stderr),
		WithSilent(*silentFlag),
		WithText(*textFlag),
	)
	if err := ed.Run(); err != nil {
		return 1
	}
	return 0
}

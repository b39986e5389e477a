// bluebot is the console front end of the chess bot. It feeds "%command"
// lines through the same dispatcher the chat client uses and can render any
// position given as FEN.
package main

import (
	"os"
)

const programVersion = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

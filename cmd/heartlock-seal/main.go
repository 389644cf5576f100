// heartlock-seal encrypts a finale message under the card's answer
// letters and prints the base64 blob to paste into
// internal/card/finale.go as sealedFinaleB64.
package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"heartlock/internal/card"
	"heartlock/internal/vault"
)

func main() {
	message := flag.String("message", "", "Finale message to seal (reads stdin when empty; newlines become body lines)")
	flag.Parse()

	text := *message
	if text == "" {
		in, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "reading message from stdin: %v\n", err)
			os.Exit(1)
		}
		text = strings.TrimRight(string(in), "\n")
	}
	if text == "" {
		fmt.Fprintln(os.Stderr, "nothing to seal: pass -message or pipe text on stdin")
		os.Exit(1)
	}

	passphrase := card.Passphrase(card.Deck())

	blob, err := vault.Seal([]byte(text), passphrase)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sealing message: %v\n", err)
		os.Exit(1)
	}

	// Verify the blob opens with the deck before handing it out.
	buf, err := vault.Open(blob, passphrase)
	if err != nil {
		fmt.Fprintf(os.Stderr, "verifying sealed message: %v\n", err)
		os.Exit(1)
	}
	buf.Destroy()

	fmt.Println("Paste into internal/card/finale.go as sealedFinaleB64:")
	fmt.Println()
	fmt.Println(base64.StdEncoding.EncodeToString(blob))
}

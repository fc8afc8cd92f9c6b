package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
)

func main() {
	hexLen := flag.Int("hex-len", 32, "random hex length (must be even)")
	flag.Parse()

	if *hexLen <= 0 || *hexLen%2 != 0 {
		log.Fatalf("invalid hex-len: %d (must be positive and even)", *hexLen)
	}

	keyRaw, err := generateRandomHex(*hexLen)
	if err != nil {
		log.Fatalf("failed to generate consumer key: %v", err)
	}
	secretRaw, err := generateRandomHex(*hexLen)
	if err != nil {
		log.Fatalf("failed to generate consumer secret: %v", err)
	}

	fmt.Println("Generated API credentials")
	fmt.Printf("CONSUMER_KEY=ck_%s\n", keyRaw)
	fmt.Printf("CONSUMER_SECRET=cs_%s\n", secretRaw)
}

func generateRandomHex(n int) (string, error) {
	b := make([]byte, n/2)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

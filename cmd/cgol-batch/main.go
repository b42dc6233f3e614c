// cgol: Word-Seeded Game of Life Simulator
// Copyright (C) 2026  cgol contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Command cgol-batch is the Go-native stand-in for the original chatbot
// tool's "try a batch of random words and keep the best one" behaviour: it
// draws n words from the embedded lexicon, plays each against a running
// cgol server, and prints the highest-scoring result.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"cgol/internal/assistant"
	"cgol/internal/lexicon"
)

func main() {
	addr := flag.String("server", "http://localhost:8080", "cgol server base URL")
	n := flag.Int("n", 5, "number of random words to try")
	flag.Parse()

	if *n <= 0 {
		log.Fatal("-n must be positive")
	}

	client := assistant.New(*addr)
	lex := lexicon.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	best, err := assistant.RunBatch(ctx, client, lex, *n)
	if err != nil {
		fmt.Fprintln(os.Stderr, "batch run failed:", err)
		os.Exit(1)
	}

	payload, err := json.MarshalIndent(best, "", "  ")
	if err != nil {
		log.Fatalf("encoding result: %v", err)
	}
	fmt.Println(string(payload))
}

// path: cmd/server/main.go
// Serves one game over a JSON API. Both players drive the same engine,
// so a shared board between two clients is the expected setup.
package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"strings"

	"taklite_poc/internal/game"
	"taklite_poc/internal/httpx"
	"taklite_poc/internal/shared"
)

func main() {
	addr := flag.String("addr", getenv("TAKLITE_ADDR", ":8080"), "listen address")
	size := flag.Int("size", getenvInt("TAKLITE_SIZE", 5), "board size (3-8)")
	first := flag.String("first", getenv("TAKLITE_FIRST", "white"), "starting color")
	flag.Parse()

	starting, ok := shared.ParseColor(*first)
	if !ok {
		log.Fatalf("invalid starting color %q", *first)
	}

	eng, err := game.NewEngine(*size, starting)
	if err != nil {
		log.Fatalf("engine init: %v", err)
	}
	supply := eng.SupplyFor(starting)
	log.Printf("New %dx%d game, %s to move, %d flats / %d caps per player",
		*size, *size, starting, supply.Flatstones, supply.Capstones)

	srv := httpx.NewServer(eng)
	if err := srv.Listen(*addr); err != nil {
		log.Fatal(err)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"janggi/internal/janggi"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func main() {
	games := flag.Int("games", 100, "number of games to play")
	maxPlies := flag.Int("plies", 300, "max plies per game")
	seed := flag.Int64("seed", getenvInt("JANGGI_SEED", time.Now().UnixNano()), "random seed")
	position := flag.String("position", getenv("JANGGI_POSITION", ""), "starting position text (empty = standard setup)")
	flag.Parse()

	// 每一步都校验棋盘
	janggi.Debug = true

	log.Printf("playing %d games, seed %d", *games, *seed)
	start := time.Now()
	var redWins, blueWins, unfinished, stuck, plies int
	for i := 0; i < *games; i++ {
		res, err := playGame(*position, *seed+int64(i), *maxPlies)
		if err != nil {
			log.Fatalf("game %d (seed %d): %v", i+1, *seed+int64(i), err)
		}
		plies += res.Plies
		if res.Stuck {
			stuck++
			log.Printf("game %d: stuck in check at ply %d", i+1, res.Plies)
		}
		switch res.State {
		case janggi.RedWon:
			redWins++
		case janggi.BlueWon:
			blueWins++
		default:
			unfinished++
		}
	}
	d := time.Since(start)

	fmt.Printf("\n=== %d games in %v ===\n", *games, d.Round(time.Millisecond))
	fmt.Printf("Red won:    %d\n", redWins)
	fmt.Printf("Blue won:   %d\n", blueWins)
	fmt.Printf("Unfinished: %d (stuck %d)\n", unfinished, stuck)
	if d > 0 {
		fmt.Printf("Plies: %d (%.0f/s)\n", plies, float64(plies)/d.Seconds())
	}
}

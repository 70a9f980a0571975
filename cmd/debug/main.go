package main

import (
	"flag"
	"fmt"
	"log"

	"janggi/internal/janggi"
)

func main() {
	position := flag.String("position", "", "position text (empty = standard setup)")
	flag.Parse()

	g := janggi.NewGame()
	if *position != "" {
		var err error
		if g, err = janggi.NewGameFromText(*position); err != nil {
			log.Fatalf("bad position: %v", err)
		}
	}
	fmt.Println("Position:", g.Encode())
	fmt.Printf("Hash: %016x\n", g.Hash())
	fmt.Println("Check:", g.CheckStatus())
	for _, c := range []janggi.Color{janggi.Blue, janggi.Red} {
		fmt.Printf("Legal moves (%s): %d\n", c, len(g.LegalMoves(c)))
	}
}

package main

import (
	"flag"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"janggi/internal/session"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	position := flag.String("position", getenv("JANGGI_POSITION", ""), "starting position text (empty = standard setup)")
	logPath := flag.String("log", getenv("JANGGI_LOG", ""), "write log to this file (the terminal is taken by the board)")
	flag.Parse()

	mgr := session.NewManager()
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		mgr.Logger = log.New(f, "janggi ", log.LstdFlags)
	}

	var s *session.Session
	if *position == "" {
		s = mgr.NewGame()
	} else {
		var err error
		s, err = mgr.NewGameFromText(*position)
		if err != nil {
			log.Fatalf("bad -position: %v", err)
		}
	}

	p := tea.NewProgram(newModel(mgr, s), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
	log.Printf("final position: %s", s.Snapshot().Position)
}

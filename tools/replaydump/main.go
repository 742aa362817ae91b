package main

import (
	"colony-sim/internal/infrastructure/storage"
	"fmt"
	"os"
	"time"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	session, err := storage.NewReplayService("").Load(os.Args[1])
	if err != nil {
		fmt.Printf("Failed to read transcript: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Session:  %s\n", session.SessionID)
	fmt.Printf("Seed:     %d\n", session.Seed)
	fmt.Printf("Recorded: %s\n", time.Unix(session.Timestamp, 0).UTC().Format(time.RFC3339))
	fmt.Printf("Commands: %d\n", len(session.Commands))
	for _, cmd := range session.Commands {
		fmt.Printf("%5d  %s\n", cmd.Seq, cmd.Line)
	}
}

func printHelp() {
	fmt.Println(`Replay Dump - печать записанной сессии
Usage:
  replaydump <file` + storage.FileExt + `>`)
}

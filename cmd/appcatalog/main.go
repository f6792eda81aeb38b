package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"appcatalog/internal/adapters/tui"
	"appcatalog/internal/bootstrap"
	"appcatalog/internal/config"
	"appcatalog/internal/logger"
)

func main() {
	cfg := config.LoadOrDefault()

	// The alt screen owns stderr, so logs go next to the database
	if dbPath, err := config.ExpandPath(cfg.DBPath); err == nil {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err == nil {
			f, err := os.OpenFile(filepath.Join(filepath.Dir(dbPath), "appcatalog.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err == nil {
				defer f.Close()
				logger.Init(logger.Options{
					Level:     cfg.LogLevel,
					Format:    "json",
					Component: "tui",
					Writer:    f,
				})
			}
		}
	}

	rt, err := bootstrap.Open(cfg, "tui")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer rt.Close()

	app := tui.NewApp(rt.Engine)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

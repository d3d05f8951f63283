package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"pomodial/internal/alert"
	"pomodial/internal/config"
	"pomodial/internal/session"
	"pomodial/internal/store"
	"pomodial/internal/tui"
	"pomodial/internal/util"
)

func main() {
	dataRoot := util.DataDir(config.AppName)
	_ = os.MkdirAll(dataRoot, 0o755)

	kv, err := store.Open(filepath.Join(dataRoot, config.DBFileName))
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()

	machine := session.New(kv, alert.New())
	model := tui.NewTimerModel(machine, kv, util.ReportsDir(config.AppName))

	// Mouse support drives the duration dial.
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}

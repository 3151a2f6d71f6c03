package dev

import (
	"fmt"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/robinovitch61/hcols/internal/message"
	"log"
	"os"
)

var debugSet = os.Getenv("HCOLS_DEBUG")
var debugPath = os.Getenv("HCOLS_DEBUG_PATH")

func Debug(msg string) {
	if debugSet == "" {
		return
	}
	if debugPath == "" {
		debugPath = "hcols.log"
	}
	file, err := os.OpenFile(debugPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()
	logger := log.New(file, "", log.Ldate|log.Lmicroseconds)
	logger.Printf("%q", msg)
}

func DebugUpdateMsg(component string, msg tea.Msg) {
	switch msg.(type) {
	case message.DecelerateTickMsg, tea.MouseMsg:
	// skip logging messages that are too frequent
	default:
		Debug("--")
		Debug(fmt.Sprintf("Update %s: %T", component, msg))
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			Debug(fmt.Sprintf("  Key: '%v'", keyMsg.String()))
		}
	}
}

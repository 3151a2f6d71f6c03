package fileio

import (
	"fmt"
	tea "github.com/charmbracelet/bubbletea"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"
)

type SaveCompleteMsg struct {
	FullPath, SuccessMessage, ErrMessage string
}

// GetSaveCommand writes content, one entry per line, to fileName. An empty fileName saves to a timestamped file in the
// working directory; a name without an extension gets .txt
func GetSaveCommand(fileName string, content []string) tea.Cmd {
	return func() tea.Msg {
		savePathWithFileName, err := saveToFile(fileName, content, time.Now())
		if err != nil {
			return SaveCompleteMsg{ErrMessage: err.Error()}
		}
		return SaveCompleteMsg{
			FullPath:       savePathWithFileName,
			SuccessMessage: fmt.Sprintf("Saved to %s", savePathWithFileName),
		}
	}
}

func saveToFile(fileName string, fileContent []string, now time.Time) (string, error) {
	stamp := now.UTC().Format("20060102T150405Z")
	path := "."
	if fileName == "" {
		fileName = stamp
	} else {
		if strings.HasPrefix(fileName, "~") {
			currUser, err := user.Current()
			if err != nil {
				return "", fmt.Errorf("expanding ~: %w", err)
			}
			fileName = currUser.HomeDir + strings.TrimPrefix(fileName, "~")
		}
		if strings.ContainsRune(fileName, os.PathSeparator) {
			path = filepath.Dir(fileName)
			fileName = filepath.Base(fileName)
		}
	}

	if filepath.Ext(fileName) == "" {
		fileName += ".txt"
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(absPath, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", absPath, err)
	}

	pathWithFileName := filepath.Join(absPath, fileName)

	// never overwrite: /home/test.txt -> /home/test_20210101T120000Z.txt
	exists, err := fileOrDirectoryExists(pathWithFileName)
	if err != nil {
		return "", err
	}
	if exists {
		extension := filepath.Ext(pathWithFileName)
		pathWithFileName = strings.TrimSuffix(pathWithFileName, extension) + "_" + stamp + extension
	}

	f, err := os.Create(pathWithFileName)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", pathWithFileName, err)
	}
	defer f.Close()

	for _, line := range fileContent {
		if _, err := f.WriteString(line + "\n"); err != nil {
			return "", fmt.Errorf("writing %s: %w", pathWithFileName, err)
		}
	}
	return pathWithFileName, nil
}

func fileOrDirectoryExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

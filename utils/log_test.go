package utils_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/kevin-chtw/tw_sichuan/utils"
)

func Test_LoggerWritesFile(t *testing.T) {
	dir := t.TempDir()
	log, err := utils.Logger(dir, logrus.DebugLevel)
	if err != nil {
		t.Fatalf("Logger error: %v", err)
	}

	log.Infof("hello %s", "world")

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) == 0 {
		t.Fatal("no log file created")
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, "hello world") || !strings.Contains(content, "[info]") {
		t.Errorf("log content = %q, want formatted info line", content)
	}
}

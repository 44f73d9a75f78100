// Package logger writes the tally's debug log. bubbletea owns the terminal,
// so nothing is ever printed to stdout; every line goes to a file.
package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"
)

// AppDir is the directory under the user's home that holds the log.
const AppDir = ".doudizhu-tally"

const (
	logName    = "debug.log"
	maxLogSize = 10 * 1024 * 1024
)

var (
	logFile *os.File
	logPath string
)

// Init opens ~/.doudizhu-tally/debug.log.
func Init() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("获取用户目录失败: %w", err)
	}
	return InitDir(filepath.Join(home, AppDir))
}

// InitDir opens debug.log inside dir, rotating it first when it has grown
// past maxLogSize.
func InitDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("创建日志目录失败: %w", err)
	}

	path := filepath.Join(dir, logName)
	if err := rotate(path); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("打开日志文件失败: %w", err)
	}

	Close()
	logFile, logPath = f, path
	log.SetOutput(logFile)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)

	LogInfo("日志已初始化: %s", logPath)
	return nil
}

// rotate 超过上限时改名为 debug.log.<unix>
func rotate(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return nil
	}
	backup := fmt.Sprintf("%s.%d", path, time.Now().Unix())
	if err := os.Rename(path, backup); err != nil {
		return fmt.Errorf("轮转日志失败: %w", err)
	}
	return nil
}

// Close closes the log file. Later log calls go nowhere useful until the
// next Init.
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

func LogInfo(format string, args ...any)  { log.Printf("[INFO] "+format, args...) }
func LogError(format string, args ...any) { log.Printf("[ERROR] "+format, args...) }

// LogDebug 诊断信息，只写入文件
func LogDebug(format string, args ...any) { log.Printf("[DEBUG] "+format, args...) }

// LogPanic records a recovered panic with its stack.
func LogPanic(r any) {
	log.Printf("[PANIC] %v\n%s", r, debug.Stack())
}

// GetLogPath returns the current log file path.
func GetLogPath() string {
	return logPath
}

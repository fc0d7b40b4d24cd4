package logger

import (
	"io"
	"log"
	"os"
)

var (
	InfoLog  *log.Logger
	WarnLog  *log.Logger
	ErrorLog *log.Logger
	logFile  *os.File
)

// InitLogger directs log output to both stdout and the given file.
func InitLogger(filename string) error {
	var err error
	logFile, err = os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}

	mw := io.MultiWriter(os.Stdout, logFile)
	InfoLog = log.New(mw, "INFO: ", log.Ldate|log.Ltime)
	WarnLog = log.New(mw, "WARN: ", log.Ldate|log.Ltime)
	ErrorLog = log.New(mw, "ERROR: ", log.Ldate|log.Ltime)
	return nil
}

func Close() {
	if logFile != nil {
		logFile.Close()
	}
}

// Init sets up console-only logging. Called lazily by the level helpers so
// packages can log without explicit initialization.
func Init() {
	InfoLog = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	WarnLog = log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime)
	ErrorLog = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime)
}

func Infof(format string, v ...interface{}) {
	if InfoLog == nil {
		Init()
	}
	InfoLog.Printf(format, v...)
}

func Warnf(format string, v ...interface{}) {
	if WarnLog == nil {
		Init()
	}
	WarnLog.Printf(format, v...)
}

func Errorf(format string, v ...interface{}) {
	if ErrorLog == nil {
		Init()
	}
	ErrorLog.Printf(format, v...)
}

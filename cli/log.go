package cli

import (
	"bytes"
	"fmt"
	"runtime"
	"strings"

	log "github.com/sirupsen/logrus"
)

var logger = log.WithFields(log.Fields{
	"app":    "hubconn",
	"module": "cli",
})

// PanicLogger logs a recovered panic together with its stack trace.
// It has to be deferred directly.
func PanicLogger() {
	if r := recover(); r != nil {
		logger.WithField("origin", identifyLogOrigin()).Errorf("PANIC: %v", r)
		logger.Error(getStackTraceMessage(fmt.Sprintf("%v", r)))
	}
}

func identifyLogOrigin() string {
	var name, file string
	var line int
	var pc [16]uintptr

	n := runtime.Callers(3, pc[:])
	for _, pc := range pc[:n] {
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}
		file, line = fn.FileLine(pc)
		name = fn.Name()
		if !strings.HasPrefix(name, "runtime.") {
			break
		}
	}

	switch {
	case name != "":
		return fmt.Sprintf("%v:%v", name, line)
	case file != "":
		return fmt.Sprintf("%v:%v", file, line)
	}
	return fmt.Sprintf("pc:%x", pc)
}

func getStackTraceMessage(msg string) string {
	var pc [16]uintptr

	n := runtime.Callers(3, pc[:])
	buff := &bytes.Buffer{}
	buff.WriteString(msg)
	buff.WriteString("\n")

	for _, pc := range pc[:n] {
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}
		file, line := fn.FileLine(pc)
		switch name := fn.Name(); {
		case name != "":
			fmt.Fprintf(buff, "! %v:%v\n", name, line)
		case file != "":
			fmt.Fprintf(buff, "! %v:%v\n", file, line)
		}
	}
	return buff.String()
}

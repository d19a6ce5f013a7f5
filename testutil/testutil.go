package testutil

import (
	"bytes"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	log "github.com/sirupsen/logrus"
)

// MockCtrl is a gomock.Controller to use globally
var MockCtrl *gomock.Controller

func init() {
	// disable error output while testing
	// because also negative tests are tested
	log.SetLevel(log.PanicLevel)
}

// NewMockCtrl initializes the `MockCtrl` package var and returns a method to
// finish the controller when test is complete
// **Important**: Don't forget to call the returned method at the end of the test
// Usage:
// 		ctrl, finish := testutil.NewMockCtrl(t)
// 		defer finish()
func NewMockCtrl(t *testing.T) (*gomock.Controller, func()) {
	MockCtrl = gomock.NewController(t)
	return MockCtrl, func() { MockCtrl.Finish() }
}

// EnableDebugForMethod enables debug output throught the current test
// Usage:
//		testutil.EnableDebugForMethod()()
func EnableDebugForMethod() func() {
	reset := log.GetLevel()
	log.SetLevel(log.DebugLevel)
	return func() { log.SetLevel(reset) }
}

// CaptureLog redirects the standard logger into a buffer until the returned func is called.
func CaptureLog() (*bytes.Buffer, func()) {
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	return buf, func() { log.SetOutput(os.Stderr) }
}

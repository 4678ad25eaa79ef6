package log

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/neuronlabs/uni-logger"
)

// captureLogger records every call so routing can be asserted without
// depending on any backend's output format.
type captureLogger struct {
	entries []string
	level   unilogger.Level
}

func (c *captureLogger) record(tag, msg string) {
	c.entries = append(c.entries, tag+":"+msg)
}

func (c *captureLogger) Print(args ...interface{})                   { c.record("P", fmt.Sprint(args...)) }
func (c *captureLogger) Printf(format string, args ...interface{})   { c.record("P", fmt.Sprintf(format, args...)) }
func (c *captureLogger) Println(args ...interface{})                 { c.record("P", fmt.Sprint(args...)) }
func (c *captureLogger) Debug(args ...interface{})                   { c.record("D", fmt.Sprint(args...)) }
func (c *captureLogger) Debugf(format string, args ...interface{})   { c.record("D", fmt.Sprintf(format, args...)) }
func (c *captureLogger) Debug2(args ...interface{})                  { c.record("D2", fmt.Sprint(args...)) }
func (c *captureLogger) Debug2f(format string, args ...interface{})  { c.record("D2", fmt.Sprintf(format, args...)) }
func (c *captureLogger) Debug3(args ...interface{})                  { c.record("D3", fmt.Sprint(args...)) }
func (c *captureLogger) Debug3f(format string, args ...interface{})  { c.record("D3", fmt.Sprintf(format, args...)) }
func (c *captureLogger) Info(args ...interface{})                    { c.record("I", fmt.Sprint(args...)) }
func (c *captureLogger) Infof(format string, args ...interface{})    { c.record("I", fmt.Sprintf(format, args...)) }
func (c *captureLogger) Warning(args ...interface{})                 { c.record("W", fmt.Sprint(args...)) }
func (c *captureLogger) Warningf(format string, args ...interface{}) { c.record("W", fmt.Sprintf(format, args...)) }
func (c *captureLogger) Error(args ...interface{})                   { c.record("E", fmt.Sprint(args...)) }
func (c *captureLogger) Errorf(format string, args ...interface{})   { c.record("E", fmt.Sprintf(format, args...)) }
func (c *captureLogger) Fatal(args ...interface{})                   { c.record("F", fmt.Sprint(args...)) }
func (c *captureLogger) Fatalf(format string, args ...interface{})   { c.record("F", fmt.Sprintf(format, args...)) }
func (c *captureLogger) Panic(args ...interface{})                   { c.record("PN", fmt.Sprint(args...)) }
func (c *captureLogger) Panicf(format string, args ...interface{})   { c.record("PN", fmt.Sprintf(format, args...)) }
func (c *captureLogger) SetLevel(level unilogger.Level)              { c.level = level }

// plainLogger is a capture logger without debug sublevels or level
// setting, for the degraded paths.
type plainLogger struct {
	entries []string
}

func (p *plainLogger) record(tag, msg string) {
	p.entries = append(p.entries, tag+":"+msg)
}

func (p *plainLogger) Print(args ...interface{})                   { p.record("P", fmt.Sprint(args...)) }
func (p *plainLogger) Printf(format string, args ...interface{})   { p.record("P", fmt.Sprintf(format, args...)) }
func (p *plainLogger) Println(args ...interface{})                 { p.record("P", fmt.Sprint(args...)) }
func (p *plainLogger) Debug(args ...interface{})                   { p.record("D", fmt.Sprint(args...)) }
func (p *plainLogger) Debugf(format string, args ...interface{})   { p.record("D", fmt.Sprintf(format, args...)) }
func (p *plainLogger) Info(args ...interface{})                    { p.record("I", fmt.Sprint(args...)) }
func (p *plainLogger) Infof(format string, args ...interface{})    { p.record("I", fmt.Sprintf(format, args...)) }
func (p *plainLogger) Warning(args ...interface{})                 { p.record("W", fmt.Sprint(args...)) }
func (p *plainLogger) Warningf(format string, args ...interface{}) { p.record("W", fmt.Sprintf(format, args...)) }
func (p *plainLogger) Error(args ...interface{})                   { p.record("E", fmt.Sprint(args...)) }
func (p *plainLogger) Errorf(format string, args ...interface{})   { p.record("E", fmt.Sprintf(format, args...)) }
func (p *plainLogger) Fatal(args ...interface{})                   { p.record("F", fmt.Sprint(args...)) }
func (p *plainLogger) Fatalf(format string, args ...interface{})   { p.record("F", fmt.Sprintf(format, args...)) }
func (p *plainLogger) Panic(args ...interface{})                   { p.record("PN", fmt.Sprint(args...)) }
func (p *plainLogger) Panicf(format string, args ...interface{})   { p.record("PN", fmt.Sprintf(format, args...)) }

func resetForTests(t *testing.T) {
	t.Cleanup(func() {
		logger = nil
		debugLeveled = nil
		isDebugLeveled = false
		currentLevel = LINFO
	})
}

func TestNoopWithoutLogger(t *testing.T) {
	resetForTests(t)

	Debug("ignored")
	Debugf("ignored %d", 1)
	Debug2("ignored")
	Debug2f("ignored %d", 2)
	Debug3("ignored")
	Debug3f("ignored %d", 3)
	Info("ignored")
	Infof("ignored %d", 4)
	Warning("ignored")
	Warningf("ignored %d", 5)
	Error("ignored")
	Errorf("ignored %d", 6)

	if Logger() != nil {
		t.Fatalf("expected no logger installed")
	}
}

func TestRoutingWithDebugSublevels(t *testing.T) {
	resetForTests(t)

	capture := &captureLogger{}
	SetLogger(capture)

	Infof("added %d signals", 2)
	Debugf("plain debug")
	Debug2f("second %s", "level")
	Debug3f("third %s", "level")
	Warning("careful")
	Errorf("broke: %d", 9)

	want := []string{
		"I:added 2 signals",
		"D:plain debug",
		"D2:second level",
		"D3:third level",
		"W:careful",
		"E:broke: 9",
	}
	if len(capture.entries) != len(want) {
		t.Fatalf("entries=%d want=%d (%v)", len(capture.entries), len(want), capture.entries)
	}
	for i, w := range want {
		if capture.entries[i] != w {
			t.Fatalf("entry[%d]=%q want=%q", i, capture.entries[i], w)
		}
	}
}

func TestRoutingDegradesWithoutSublevels(t *testing.T) {
	resetForTests(t)

	plain := &plainLogger{}
	SetLogger(plain)

	Debug2f("two %d", 2)
	Debug3("three")

	want := []string{"D:two 2", "D:three"}
	if len(plain.entries) != len(want) {
		t.Fatalf("entries=%v want=%v", plain.entries, want)
	}
	for i, w := range want {
		if plain.entries[i] != w {
			t.Fatalf("entry[%d]=%q want=%q", i, plain.entries[i], w)
		}
	}
}

func TestSetLevel(t *testing.T) {
	resetForTests(t)

	if err := SetLevel(LUNKNOWN); err == nil {
		t.Fatalf("expected error for unknown level")
	}

	capture := &captureLogger{}
	SetLogger(capture)
	if capture.level != LINFO {
		t.Fatalf("install should push current level, got %s", capture.level)
	}

	if err := SetLevel(LDEBUG3); err != nil {
		t.Fatalf("set level: %v", err)
	}
	if Level() != LDEBUG3 {
		t.Fatalf("level=%s want=%s", Level(), LDEBUG3)
	}
	if capture.level != LDEBUG3 {
		t.Fatalf("logger level=%s want=%s", capture.level, LDEBUG3)
	}

	// Same level again is a no-op.
	if err := SetLevel(LDEBUG3); err != nil {
		t.Fatalf("set same level: %v", err)
	}
}

func TestSetLevelWithoutSetter(t *testing.T) {
	resetForTests(t)

	SetLogger(&plainLogger{})
	if err := SetLevel(LERROR); err == nil {
		t.Fatalf("expected error for logger without level setting")
	}
}

func TestBasicLoggerBackend(t *testing.T) {
	resetForTests(t)

	var buf bytes.Buffer
	New(&buf, "", 0)

	Errorf("weights rejected: %s", "bad shape")
	if !strings.Contains(buf.String(), "weights rejected: bad shape") {
		t.Fatalf("backend output missing message: %q", buf.String())
	}
}

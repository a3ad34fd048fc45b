package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"syscall"
	"testing"

	"github.com/go-logr/logr"
)

const mockLogLevel int8 = 0 // zapcore.InfoLevel

func TestGetReturnsSameInstanceOnSubsequentCalls(t *testing.T) {
	logger1 := Get(mockLogLevel)
	logger2 := Get(-1)
	if logger1 == nil {
		t.Fatal("Get should return a non-nil logger")
	}
	if logger1 != logger2 {
		t.Error("Get should return the same logger instance on subsequent calls")
	}
}

func TestGetReturnsNoopLoggerIfGlobalLoggerNil(t *testing.T) {
	Get(mockLogLevel)
	orig := globalLogrLogger
	globalLogrLogger = nil
	defer func() { globalLogrLogger = orig }()

	if got := Get(mockLogLevel); got != &defaultNoopLogger {
		t.Errorf("Get should fall back to the noop logger, got %p", got)
	}
}

func TestWithLoggerAndFromContext(t *testing.T) {
	ctx := context.Background()
	lgr := Get(mockLogLevel)

	ctxWithLogger := WithLogger(ctx, lgr)
	if got := FromContext(ctxWithLogger); got != lgr {
		t.Error("FromContext should return the logger stored by WithLogger")
	}
	if again := WithLogger(ctxWithLogger, lgr); again != ctxWithLogger {
		t.Error("WithLogger should return the same context when the logger is already set")
	}

	other := logr.Discard()
	replaced := WithLogger(ctxWithLogger, &other)
	if got := FromContext(replaced); got != &other {
		t.Error("WithLogger should replace a different logger")
	}
}

func TestFromContextFallbacks(t *testing.T) {
	globalLogger := Get(mockLogLevel)
	if got := FromContext(context.Background()); got != globalLogger {
		t.Error("FromContext should return the global logger if none in context")
	}

	orig := globalLogrLogger
	globalLogrLogger = nil
	defer func() { globalLogrLogger = orig }()

	if got := FromContext(context.Background()); got != &defaultNoopLogger {
		t.Error("FromContext should return defaultNoopLogger if no logger is set")
	}
	if got := GetGlobalLogger(); got != &defaultNoopLogger {
		t.Error("GetGlobalLogger should return defaultNoopLogger when unset")
	}
}

func TestNewWritesJSONWithBuildFields(t *testing.T) {
	var buf bytes.Buffer
	lgr := New(&buf, mockLogLevel)
	lgr.Info("laid out", ItemsKey, 12, TargetKey, "MaxWidth(24)")
	lgr.V(1).Info("hidden at info level")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected exactly one JSON line, got %q: %v", buf.String(), err)
	}
	if entry[MessageKey] != "laid out" {
		t.Errorf("message = %v", entry[MessageKey])
	}
	if entry[ItemsKey] != float64(12) {
		t.Errorf("items = %v", entry[ItemsKey])
	}
	for _, key := range []string{TimeStampKey, CommitKey, VersionKey, BuildTimeKey, GoVersionKey} {
		if _, ok := entry[key]; !ok {
			t.Errorf("missing %q in %v", key, entry)
		}
	}
}

func TestSyncDoesNotPanicWhenGlobalZapLoggerIsNil(t *testing.T) {
	orig := globalZapLogger
	globalZapLogger = nil
	defer func() { globalZapLogger = orig }()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sync should not panic when globalZapLogger is nil, but got panic: %v", r)
		}
	}()
	Sync()
}

func TestIsIgnorableSyncError(t *testing.T) {
	if !isIgnorableSyncError(&os.PathError{Op: "sync", Path: "/dev/stderr", Err: syscall.EINVAL}) {
		t.Error("EINVAL wrapped in PathError should be ignorable")
	}
	if !isIgnorableSyncError(errors.New("sync: The handle is invalid.")) {
		t.Error("Windows invalid handle should be ignorable")
	}
	if isIgnorableSyncError(errors.New("disk full")) {
		t.Error("unrelated errors should not be ignorable")
	}
}

func TestGetNoopLoggerIsNoop(t *testing.T) {
	lgr := GetNoopLogger()
	if lgr != &defaultNoopLogger {
		t.Fatal("GetNoopLogger should return defaultNoopLogger")
	}
	lgr.Info("This should do nothing")
}

func TestWithValuesReturnsNewLogger(t *testing.T) {
	lgr := Get(mockLogLevel)
	newLogger := WithValues(lgr, "key", "value")
	if newLogger == nil || newLogger == lgr {
		t.Error("WithValues should return a new logger instance")
	}
}

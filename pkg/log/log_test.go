package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	matgoerrors "github.com/matgo-dev/matgo/pkg/errors"
)

func TestTestLoggerCapturesOutput(t *testing.T) {
	logger, buffer := NewTestLogger(LevelDebug)

	logger.Info("solve finished", OpKey, "dense.Solve", RowsKey, 3)

	output := buffer.String()
	if !strings.Contains(output, "INFO solve finished") {
		t.Errorf("missing message in output: %q", output)
	}
	if !strings.Contains(output, "op=dense.Solve") {
		t.Errorf("missing op field in output: %q", output)
	}
	if !strings.Contains(output, "matrix.rows=3") {
		t.Errorf("missing rows field in output: %q", output)
	}
}

func TestTestLoggerLevelFiltering(t *testing.T) {
	logger, buffer := NewTestLogger(LevelWarn)

	logger.Debug("dropped")
	logger.Info("dropped too")
	logger.Warn("kept")

	output := buffer.String()
	if strings.Contains(output, "dropped") {
		t.Errorf("messages below the minimum level leaked: %q", output)
	}
	if !strings.Contains(output, "WARN kept") {
		t.Errorf("warn message missing: %q", output)
	}
}

func TestTestLoggerWith(t *testing.T) {
	logger, buffer := NewTestLogger(LevelInfo)

	contextual := logger.With(ComponentKey, "dense")
	contextual.Info("hello")

	if !strings.Contains(buffer.String(), "component=dense") {
		t.Errorf("With fields not included: %q", buffer.String())
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestErrFmtHandlerAddsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil))
	logger := slog.New(handler)

	err := matgoerrors.NewSingularError("dense.Inverse", 0, 0)
	logger.Error("inversion failed", ErrAttr(err))

	var record map[string]any
	if jsonErr := json.Unmarshal(buf.Bytes(), &record); jsonErr != nil {
		t.Fatalf("log output is not valid JSON: %v", jsonErr)
	}
	if _, ok := record[ErrAttrKey]; !ok {
		t.Error("error attribute missing from record")
	}
	stack, ok := record[StacktraceAttrKey].(string)
	if !ok || stack == "" {
		t.Error("stacktrace attribute missing or empty")
	}
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelInfo)

	logger.Debug("dropped")
	logger.Info("multiply finished", OpKey, "dense.Multiply", RowsKey, 2)

	output := buf.String()
	if strings.Contains(output, "dropped") {
		t.Errorf("debug message leaked at info level: %q", output)
	}
	if !strings.Contains(output, `"op":"dense.Multiply"`) {
		t.Errorf("missing op field: %q", output)
	}
	if !strings.Contains(output, `"matrix.rows":2`) {
		t.Errorf("missing rows field: %q", output)
	}

	ctx := context.Background()
	if logger.Enabled(ctx, LevelDebug) {
		t.Error("debug should be disabled at info level")
	}
	if !logger.Enabled(ctx, LevelError) {
		t.Error("error should be enabled at info level")
	}
}

func TestZerologLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelInfo).With(ComponentKey, "viz")

	logger.Info("render finished")

	if !strings.Contains(buf.String(), `"component":"viz"`) {
		t.Errorf("With fields not included: %q", buf.String())
	}
}

func TestInstallWarningBridge(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf)
	InstallWarningBridge(zl)
	defer matgoerrors.SetZerologWarnFunc(nil)

	matgoerrors.Warn(matgoerrors.NewSingularityWarning("dense.Determinant", 1, 2e-13))

	output := buf.String()
	if !strings.Contains(output, `"type":"SingularityWarning"`) {
		t.Errorf("structured warning payload missing: %q", output)
	}
	if !strings.Contains(output, `"pivot_index":1`) {
		t.Errorf("pivot index missing: %q", output)
	}
}

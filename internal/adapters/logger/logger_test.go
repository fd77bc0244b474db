package logger_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/courierbuild/courier/internal/adapters/logger"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(&buf)

	lg.Info("delivering artifact")

	output := buf.String()
	if !strings.Contains(output, "delivering artifact") {
		t.Errorf("Expected output to contain 'delivering artifact', got: %s", output)
	}
	if !strings.Contains(output, "INFO") {
		t.Errorf("Expected output to contain 'INFO', got: %s", output)
	}
}

func TestLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(&buf)

	lg.Warn("ambiguous placeholder")

	output := buf.String()
	if !strings.Contains(output, "WARN") {
		t.Errorf("Expected output to contain 'WARN', got: %s", output)
	}
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(&buf)

	lg.Error(errors.New("download interrupted"))

	output := buf.String()
	if !strings.Contains(output, "download interrupted") {
		t.Errorf("Expected output to contain the error message, got: %s", output)
	}
	if !strings.Contains(output, "ERROR") {
		t.Errorf("Expected output to contain 'ERROR', got: %s", output)
	}
}

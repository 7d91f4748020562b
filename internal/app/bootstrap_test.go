package app

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// логгер-заглушка
type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

func TestApplyGinMode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"release", gin.ReleaseMode},
		{"RELEASE", gin.ReleaseMode},
		{"test", gin.TestMode},
		{"debug", gin.DebugMode},
		{"", gin.DebugMode},
		{"  release  ", gin.ReleaseMode},
		{"bogus", gin.DebugMode}, // неизвестное значение → debug
	}
	for _, tt := range tests {
		applyGinMode(context.Background(), tt.in, nopLogger{})
		if got := gin.Mode(); got != tt.want {
			t.Fatalf("applyGinMode(%q): mode=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAppRun_GracefulShutdown(t *testing.T) {
	// HTTP-сервер на случайном свободном порту
	srv := &http.Server{
		Addr:    "127.0.0.1:0",
		Handler: http.NewServeMux(),
	}

	a := &App{
		Logger:     nopLogger{},
		HTTPServer: srv,
	}

	// Запуск и быстрая остановка
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	if err := a.Run(ctx); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

package main

import (
	"context"
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// logMsg is a regular string containing a log message. It is typed for
// identification as [tea.Msg] within a [tea.Program].
type logMsg string

// progressMsg is a [tea.Msg] carrying the running transfer progress.
type progressMsg struct {
	copied int64
	total  int64
}

// doneMsg is a [tea.Msg] signalling the end of the transfer.
type doneMsg struct {
	err error
}

// UIHandler is the principal implementation of the command-line user
// interface.
type UIHandler struct {
	program *tea.Program

	LogWriter *TeaLogWriter

	Ready  atomic.Bool
	Failed atomic.Bool
}

// NewUIHandler returns a pointer to a new [UIHandler] for a transfer
// between the given paths.
func NewUIHandler(ctx context.Context, cancel context.CancelFunc, srcPath, dstPath string) *UIHandler {
	handler := &UIHandler{}

	model := NewTeaModel(handler, srcPath, dstPath, cancel)
	handler.program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	handler.LogWriter = NewTeaLogWriter(handler.program)

	return handler
}

// Launch starts the command-line user interface (the [tea.Program]).
func (uiHandler *UIHandler) Launch() error {
	defer uiHandler.LogWriter.Stop()

	if _, err := uiHandler.program.Run(); err != nil {
		uiHandler.Failed.Store(true)

		return fmt.Errorf("(ui) %w", err)
	}

	return nil
}

// Progress forwards the running transfer progress into the [tea.Program].
func (uiHandler *UIHandler) Progress(copied, total int64) {
	uiHandler.program.Send(progressMsg{copied: copied, total: total})
}

// Done signals the end of the transfer to the [tea.Program].
func (uiHandler *UIHandler) Done(err error) {
	uiHandler.program.Send(doneMsg{err: err})
}

// TeaLogWriter is an implementation of an [io.Writer], for use inside a
// [slog.Handler], that sends any logs to a [tea.Program] as [tea.Msg].
type TeaLogWriter struct {
	program  *tea.Program
	doneChan chan struct{}
	logChan  chan logMsg
}

// NewTeaLogWriter returns a pointer to a new [TeaLogWriter]. It also starts
// the internal log processing function, which should eventually be stopped
// e.g. with a deferred [TeaLogWriter.Stop] call.
func NewTeaLogWriter(program *tea.Program) *TeaLogWriter {
	wr := &TeaLogWriter{
		program:  program,
		doneChan: make(chan struct{}),
		logChan:  make(chan logMsg, 1000), //nolint:mnd
	}

	go wr.processLogs()

	return wr
}

// Stop destroys the [TeaLogWriter] and stops any log message processing.
// This should be called when no more logs are actively being sent, as any
// in-flight or late logs will be discarded after calling this method.
func (wr *TeaLogWriter) Stop() {
	close(wr.doneChan)
}

// processLogs sends any received logs to the [tea.Program] as [tea.Msg].
func (wr *TeaLogWriter) processLogs() {
	for {
		select {
		case <-wr.doneChan:
			return
		case msg := <-wr.logChan:
			wr.program.Send(msg)
		}
	}
}

// Write queues a log line for the [tea.Program], dropping it when the
// interface is stopped or the queue is full.
func (wr *TeaLogWriter) Write(p []byte) (int, error) {
	select {
	case <-wr.doneChan:
		return len(p), nil
	default:
	}

	select {
	case wr.logChan <- logMsg(p):
	default:
	}

	return len(p), nil
}

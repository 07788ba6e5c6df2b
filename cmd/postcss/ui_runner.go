package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/morishitter/postcss/internal/driver"
	"github.com/morishitter/postcss/internal/ui"
)

type processOutcome struct {
	results []driver.FileResult
	err     error
}

func runProcessWithUI(ctx context.Context, title string, req *driver.ProcessRequest) ([]driver.FileResult, error) {
	if req == nil {
		return nil, fmt.Errorf("missing process request")
	}
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan processOutcome, 1)

	go func() {
		reqCopy := *req
		reqCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.ProcessFiles(ctx, reqCopy)
		outcomeCh <- processOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, req.Files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}

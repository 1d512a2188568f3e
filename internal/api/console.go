package api

import (
	"context"
	"fmt"
	"io"

	"cover-meter/internal/domain/entity"
	"cover-meter/internal/domain/port"
)

// Console печатает итог прогона в терминал
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Notify(ctx context.Context, summary *entity.BatchRunSummary) error {
	_ = ctx
	_, err := fmt.Fprintf(c.out, "Complete\n\n%s\n", summary.Details())
	return err
}

var _ port.SummaryNotifier = (*Console)(nil)

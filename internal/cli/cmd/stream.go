package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/bnema/xiboic/internal/cli"
	"github.com/bnema/xiboic/internal/cli/styles"
	"github.com/bnema/xiboic/internal/domain/entity"
	"github.com/bnema/xiboic/internal/logging"
	"github.com/bnema/xiboic/pkg/xiboic"
)

var streamWatch bool

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Run actions read from stdin, one per line",
	Long: `Read actions from stdin and run them as a widget would, through the
visibility queue. While the widget is hidden (widget.location carries
visible=0) actions are buffered; a "visible" line releases them in order.

Lines:
  info | expire
  trigger <code>
  extend <seconds> | set-duration <seconds>
  visible        mark the widget visible and run the buffer
  flush          run the buffer without changing visibility
Blank lines and lines starting with # are ignored.

With --watch, edits to the config file re-point the player connection
without restarting the stream.`,
	Args: cobra.NoArgs,
	RunE: runStream,
}

func init() {
	rootCmd.AddCommand(streamCmd)
	streamCmd.Flags().BoolVarP(&streamWatch, "watch", "w", false, "reload the player connection when the config file changes")
}

// streamPrinter serialises output from the transport goroutines.
type streamPrinter struct {
	mu       sync.Mutex
	out      io.Writer
	renderer *styles.ActionRenderer
}

func (p *streamPrinter) println(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, s)
}

func (p *streamPrinter) callbacks(label string) []xiboic.ActionOption {
	return []xiboic.ActionOption{
		xiboic.OnSuccess(func(resp *xiboic.Response) { p.println(p.renderer.RenderResult(label, resp, nil)) }),
		xiboic.OnError(func(err error) { p.println(p.renderer.RenderResult(label, nil, err)) }),
	}
}

func runStream(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx := logging.WithContext(cmd.Context(), *logging.FromContext(app.Ctx()))
	ctx = logging.WithComponent(ctx, "stream")
	log := logging.FromContext(ctx)

	if streamWatch {
		if err := app.WatchConfig(); err != nil {
			log.Warn().Err(err).Msg("config watch disabled")
		}
	}

	printer := &streamPrinter{out: os.Stdout, renderer: styles.NewActionRenderer(app.Theme)}
	printer.println(printer.renderer.RenderContext(app.ExecutionContext(), app.Client.TargetID(), app.Origin()))

	err := streamLines(ctx, app, printer, cmd.InOrStdin())
	app.Client.Wait()

	if pending := app.Client.QueueLen(); pending > 0 {
		log.Warn().Int("pending", pending).Msg("input ended while hidden, buffered actions dropped")
	}
	return err
}

func streamLines(ctx context.Context, app *cli.App, printer *streamPrinter, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := streamLine(ctx, app, printer, line); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Int("line", lineNo).Msg("skipping line")
		}
	}
	return scanner.Err()
}

func streamLine(ctx context.Context, app *cli.App, printer *streamPrinter, line string) error {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "visible":
		n := app.Client.SetVisible(ctx)
		logging.FromContext(ctx).Info().Int("ran", n).Msg("widget visible")
		return nil
	case "flush":
		n := app.Client.RunQueue(ctx)
		logging.FromContext(ctx).Info().Int("ran", n).Msg("queue flushed")
		return nil
	}

	action, err := entity.ParseAction(fields[0])
	if err != nil {
		return err
	}

	var (
		code    string
		seconds int
	)
	switch action {
	case entity.ActionTrigger:
		if len(fields) != 2 {
			return fmt.Errorf("trigger needs exactly one code")
		}
		code = fields[1]
	case entity.ActionExtend, entity.ActionSetDuration:
		if len(fields) != 2 {
			return fmt.Errorf("%s needs a number of seconds", action)
		}
		if seconds, err = parseSeconds(fields[1]); err != nil {
			return err
		}
	default:
		if len(fields) != 1 {
			return fmt.Errorf("%s takes no argument", action)
		}
	}

	label := actionLabel(action, code, seconds)
	run := func(...any) {
		opts := printer.callbacks(label)
		switch action {
		case entity.ActionInfo:
			app.Client.Info(ctx, opts...)
		case entity.ActionTrigger:
			app.Client.Trigger(ctx, code, opts...)
		case entity.ActionExpire:
			app.Client.ExpireNow(ctx, opts...)
		case entity.ActionExtend:
			app.Client.ExtendWidgetDuration(ctx, seconds, opts...)
		case entity.ActionSetDuration:
			app.Client.SetWidgetDuration(ctx, seconds, opts...)
		}
	}

	if app.Client.AddToQueue(ctx, run) {
		logging.FromContext(ctx).Debug().Str("action", label).Int("queued", app.Client.QueueLen()).Msg("widget hidden, action buffered")
	}
	return nil
}

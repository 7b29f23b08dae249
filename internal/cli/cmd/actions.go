package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/xiboic/internal/cli/styles"
	"github.com/bnema/xiboic/internal/domain/entity"
	"github.com/bnema/xiboic/pkg/xiboic"
)

var actionTarget string

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Request player information",
	Long:  `Send GET /info to the player (or the preview handler) and print the reply.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runAction(cmd, entity.ActionInfo, "", 0)
	},
}

var triggerCmd = &cobra.Command{
	Use:   "trigger <code> [code...]",
	Short: "Fire one or more trigger codes",
	Long: `Send POST /trigger for each code. Several codes are sent concurrently
and every result is printed in argument order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTrigger,
}

var expireCmd = &cobra.Command{
	Use:   "expire",
	Short: "End the widget now",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runAction(cmd, entity.ActionExpire, "", 0)
	},
}

var extendCmd = &cobra.Command{
	Use:   "extend <seconds>",
	Short: "Extend the widget duration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds, err := parseSeconds(args[0])
		if err != nil {
			return err
		}
		return runAction(cmd, entity.ActionExtend, "", seconds)
	},
}

var setDurationCmd = &cobra.Command{
	Use:   "set-duration <seconds>",
	Short: "Replace the widget duration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds, err := parseSeconds(args[0])
		if err != nil {
			return err
		}
		return runAction(cmd, entity.ActionSetDuration, "", seconds)
	},
}

func init() {
	for _, c := range []*cobra.Command{infoCmd, triggerCmd, expireCmd, extendCmd, setDurationCmd} {
		c.Flags().StringVarP(&actionTarget, "target", "t", "", "target identifier for this call")
		rootCmd.AddCommand(c)
	}
}

// parseSeconds only checks the argument is an integer. Range checks are
// left to the player.
func parseSeconds(arg string) (int, error) {
	seconds, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid seconds %q: %w", arg, err)
	}
	return seconds, nil
}

func targetOptions() []xiboic.ActionOption {
	if actionTarget == "" {
		return nil
	}
	return []xiboic.ActionOption{xiboic.Target(xiboic.ParseTargetID(actionTarget))}
}

func actionLabel(action entity.Action, code string, seconds int) string {
	switch action {
	case entity.ActionTrigger:
		return "trigger " + code
	case entity.ActionExtend, entity.ActionSetDuration:
		return fmt.Sprintf("%s %ds", action, seconds)
	default:
		return string(action)
	}
}

func runAction(cmd *cobra.Command, action entity.Action, code string, seconds int) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewActionRenderer(app.Theme)
	fmt.Println(renderer.RenderContext(app.ExecutionContext(), app.Client.TargetID(), app.Origin()))

	resp, err := app.Client.Do(cmd.Context(), action, code, seconds, targetOptions()...)
	fmt.Println(renderer.RenderResult(actionLabel(action, code, seconds), resp, err))
	return err
}

type triggerResult struct {
	resp *entity.Response
	err  error
}

func runTrigger(cmd *cobra.Command, codes []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewActionRenderer(app.Theme)
	fmt.Println(renderer.RenderContext(app.ExecutionContext(), app.Client.TargetID(), app.Origin()))

	results := make([]triggerResult, len(codes))
	g, ctx := errgroup.WithContext(cmd.Context())
	for i, code := range codes {
		g.Go(func() error {
			resp, err := app.Client.Do(ctx, entity.ActionTrigger, code, 0, targetOptions()...)
			results[i] = triggerResult{resp: resp, err: err}
			return nil
		})
	}
	_ = g.Wait()

	var failed int
	for i, code := range codes {
		fmt.Println(renderer.RenderResult(actionLabel(entity.ActionTrigger, code, 0), results[i].resp, results[i].err))
		if results[i].err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d triggers failed", failed, len(codes))
	}
	return nil
}

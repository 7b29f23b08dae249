package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/xiboic/internal/application/usecase"
	"github.com/bnema/xiboic/internal/cli/styles"
	"github.com/bnema/xiboic/internal/domain/entity"
	"github.com/bnema/xiboic/internal/infrastructure/dom"
)

const lockFilePerm = 0o644

var (
	lockUnlock bool
	lockOnly   string
	lockOutput string
)

var lockCmd = &cobra.Command{
	Use:   "lock <file>",
	Short: "Lock widget interactions in an HTML file",
	Long: `Apply the interaction locks to a widget page: disable text selection,
the context menu and pinch zoom. --unlock reverts a page locked earlier,
restoring the original viewport.

The result is written to --output, or to stdout when no output is given.

Examples:
  xiboic lock widget.html -o widget.locked.html
  xiboic lock widget.html --only zoom,context
  xiboic lock widget.locked.html --unlock -o widget.html`,
	Args: cobra.ExactArgs(1),
	RunE: runLock,
}

func init() {
	rootCmd.AddCommand(lockCmd)
	lockCmd.Flags().BoolVar(&lockUnlock, "unlock", false, "remove the locks instead of applying them")
	lockCmd.Flags().StringVar(&lockOnly, "only", "", "comma separated subset: text, context, zoom (default all)")
	lockCmd.Flags().StringVarP(&lockOutput, "output", "o", "", "write the document to this file instead of stdout")
}

func runLock(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	locks, err := entity.ParseInteractionLocks(lockOnly)
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open widget page: %w", err)
	}
	doc, err := dom.Parse(f)
	_ = f.Close()
	if err != nil {
		return err
	}

	uc := usecase.NewLockInteractionsUseCase(doc)
	if err := uc.Apply(app.Ctx(), locks, !lockUnlock); err != nil {
		return fmt.Errorf("apply interaction locks: %w", err)
	}

	if lockOutput == "" {
		return doc.Render(os.Stdout)
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(lockOutput, buf.Bytes(), lockFilePerm); err != nil {
		return fmt.Errorf("write %s: %w", lockOutput, err)
	}

	fmt.Println(styles.NewLockRenderer(app.Theme).Render(locks, !lockUnlock, lockOutput))
	return nil
}

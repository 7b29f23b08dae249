package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/xiboic/internal/application/port"
	"github.com/bnema/xiboic/internal/domain/entity"
	"github.com/bnema/xiboic/internal/logging"
	"github.com/rs/zerolog"
)

const (
	// TextSelectionStyleMarker identifies the injected no-select style rule.
	TextSelectionStyleMarker = "lock-text-selection-style"

	// ContextMenuAttribute is set on <body> to suppress the context menu.
	ContextMenuAttribute = "oncontextmenu"
	// ContextMenuSuppress is the handler body that cancels the menu.
	ContextMenuSuppress = "return false;"

	// ViewportContentAttribute holds the viewport directives.
	ViewportContentAttribute = "content"
	// ViewportBackupAttribute stores the original directives while locked.
	ViewportBackupAttribute = "data-viewport-backup"
	// ViewportNoContent is the backup value recorded when the viewport had
	// no content attribute, so unlock removes it instead of emptying it.
	ViewportNoContent = "xiboic:no-content"
	// PinchZoomDirectives are appended to the viewport while locked.
	PinchZoomDirectives = "maximum-scale=1.0, user-scalable=no"
)

const textSelectionCSS = "* {" +
	"-webkit-touch-callout: none;" +
	"-webkit-user-select: none;" +
	"-khtml-user-select: none;" +
	"-moz-user-select: none;" +
	"-ms-user-select: none;" +
	"user-select: none;" +
	"}"

// LockInteractionsUseCase toggles the input behaviours a signage widget
// usually wants disabled. Every toggle is idempotent and reversible.
type LockInteractionsUseCase struct {
	doc port.WidgetDocument
}

// NewLockInteractionsUseCase creates the lock façade over a widget document.
func NewLockInteractionsUseCase(doc port.WidgetDocument) *LockInteractionsUseCase {
	return &LockInteractionsUseCase{doc: doc}
}

// LockTextSelection injects (lock) or removes (unlock) the no-select style.
// Only the style carrying TextSelectionStyleMarker is ever removed.
func (uc *LockInteractionsUseCase) LockTextSelection(ctx context.Context, lock bool) error {
	log := uc.logger(ctx, "text-selection", lock)

	if !lock {
		removed := uc.doc.RemoveStyles(TextSelectionStyleMarker)
		log.Debug().Int("removed", removed).Msg("text selection unlocked")
		return nil
	}

	if uc.doc.HasStyle(TextSelectionStyleMarker) {
		log.Debug().Msg("text selection already locked")
		return nil
	}
	if err := uc.doc.AppendStyle(TextSelectionStyleMarker, textSelectionCSS); err != nil {
		return fmt.Errorf("lock text selection: %w", err)
	}
	log.Debug().Msg("text selection locked")
	return nil
}

// LockContextMenu sets or clears the body level context menu suppression.
func (uc *LockInteractionsUseCase) LockContextMenu(ctx context.Context, lock bool) error {
	log := uc.logger(ctx, "context-menu", lock)

	if !lock {
		uc.doc.RemoveAttribute(entity.ElementBody, ContextMenuAttribute)
		log.Debug().Msg("context menu unlocked")
		return nil
	}

	if err := uc.doc.SetAttribute(entity.ElementBody, ContextMenuAttribute, ContextMenuSuppress); err != nil {
		return fmt.Errorf("lock context menu: %w", err)
	}
	log.Debug().Msg("context menu locked")
	return nil
}

// LockPinchZoom appends zoom restricting directives to the viewport meta
// tag, keeping the original value on the element so unlock restores it
// byte for byte. Locking twice does not append twice. A document without
// a viewport tag is left untouched.
func (uc *LockInteractionsUseCase) LockPinchZoom(ctx context.Context, lock bool) error {
	log := uc.logger(ctx, "pinch-zoom", lock)

	backup, locked := uc.doc.Attribute(entity.ElementViewport, ViewportBackupAttribute)

	if !lock {
		if !locked {
			log.Debug().Msg("pinch zoom not locked")
			return nil
		}
		if backup == ViewportNoContent {
			uc.doc.RemoveAttribute(entity.ElementViewport, ViewportContentAttribute)
		} else if err := uc.doc.SetAttribute(entity.ElementViewport, ViewportContentAttribute, backup); err != nil {
			return fmt.Errorf("unlock pinch zoom: %w", err)
		}
		uc.doc.RemoveAttribute(entity.ElementViewport, ViewportBackupAttribute)
		log.Debug().Msg("pinch zoom unlocked")
		return nil
	}

	if locked {
		log.Debug().Msg("pinch zoom already locked")
		return nil
	}

	original, hasContent := uc.doc.Attribute(entity.ElementViewport, ViewportContentAttribute)
	saved := original
	if !hasContent {
		saved = ViewportNoContent
	}
	if err := uc.doc.SetAttribute(entity.ElementViewport, ViewportBackupAttribute, saved); err != nil {
		if errors.Is(err, entity.ErrElementNotFound) {
			log.Warn().Msg("no viewport meta tag, pinch zoom left unchanged")
			return nil
		}
		return fmt.Errorf("lock pinch zoom: %w", err)
	}
	if err := uc.doc.SetAttribute(entity.ElementViewport, ViewportContentAttribute, restrictZoom(original)); err != nil {
		return fmt.Errorf("lock pinch zoom: %w", err)
	}
	log.Debug().Msg("pinch zoom locked")
	return nil
}

// LockAll applies every lock with the same flag, in a fixed order:
// text selection, context menu, pinch zoom.
func (uc *LockInteractionsUseCase) LockAll(ctx context.Context, lock bool) error {
	return uc.Apply(ctx, entity.AllInteractions, lock)
}

// Apply toggles the selected locks in the same fixed order as LockAll.
// Every selected lock is attempted; failures are joined.
func (uc *LockInteractionsUseCase) Apply(ctx context.Context, locks entity.InteractionLock, lock bool) error {
	var errs []error
	if locks.Has(entity.LockTextSelection) {
		errs = append(errs, uc.LockTextSelection(ctx, lock))
	}
	if locks.Has(entity.LockContextMenu) {
		errs = append(errs, uc.LockContextMenu(ctx, lock))
	}
	if locks.Has(entity.LockPinchZoom) {
		errs = append(errs, uc.LockPinchZoom(ctx, lock))
	}
	return errors.Join(errs...)
}

func (uc *LockInteractionsUseCase) logger(ctx context.Context, lock string, locked bool) *zerolog.Logger {
	l := logging.FromContext(ctx).With().
		Str("component", "interaction-lock").
		Str("lock", lock).
		Bool("locked", locked).
		Logger()
	return &l
}

// restrictZoom appends the zoom directives to a viewport content value.
func restrictZoom(content string) string {
	trimmed := strings.TrimRight(content, " ,;")
	if strings.TrimSpace(trimmed) == "" {
		return PinchZoomDirectives
	}
	return trimmed + ", " + PinchZoomDirectives
}

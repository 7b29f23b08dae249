package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/bnema/xiboic/internal/application/port"
	"github.com/bnema/xiboic/internal/domain/entity"
	"github.com/bnema/xiboic/internal/logging"
)

// VisibleParam is the query parameter the player uses to tell a widget
// whether it starts on screen.
const VisibleParam = "visible"

// DetectContextInput holds what the detector inspects.
type DetectContextInput struct {
	// LocationURL is the widget's own URL as loaded by the player.
	LocationURL string
	// Probe inspects the hosting environment. Nil means "not a preview".
	Probe port.HostProbe
}

// DetectContextUseCase computes the execution context flags once at startup.
type DetectContextUseCase struct{}

// NewDetectContextUseCase creates a new DetectContextUseCase.
func NewDetectContextUseCase() *DetectContextUseCase {
	return &DetectContextUseCase{}
}

// Execute runs both checks and returns the resulting flags.
func (uc *DetectContextUseCase) Execute(ctx context.Context, input DetectContextInput) entity.ExecutionContext {
	log := logging.FromContext(ctx).With().Str("component", "context-detector").Logger()

	result := entity.ExecutionContext{
		Visible: DetectVisibility(input.LocationURL),
		Preview: DetectPreview(ctx, input.Probe),
	}

	log.Debug().
		Bool("visible", result.Visible).
		Bool("preview", result.Preview).
		Msg("execution context detected")
	return result
}

// DetectVisibility reads the visible query parameter from rawURL.
// "1" (or any numeric form equal to one) means visible, any other value
// means hidden, and a missing or empty parameter defaults to visible.
// Unparseable URLs also default to visible.
func DetectVisibility(rawURL string) bool {
	if rawURL == "" {
		return true
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return true
	}
	values, ok := u.Query()[VisibleParam]
	if !ok || len(values) == 0 {
		return true
	}
	value := strings.TrimSpace(values[0])
	if value == "" {
		return true
	}
	n, err := strconv.ParseFloat(value, 64)
	return err == nil && n == 1
}

// DetectPreview asks probe whether an authoring tool hosts the widget.
// Errors and panics raised while probing mean "not a preview".
func DetectPreview(ctx context.Context, probe port.HostProbe) (preview bool) {
	if probe == nil {
		return false
	}
	log := logging.FromContext(ctx).With().Str("component", "context-detector").Logger()

	defer func() {
		if r := recover(); r != nil {
			log.Debug().Str("panic", fmt.Sprint(r)).Msg("preview probe panicked, assuming live player")
			preview = false
		}
	}()

	ok, err := probe.IsPreviewHost(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("preview probe failed, assuming live player")
		return false
	}
	return ok
}

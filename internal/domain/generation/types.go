package generation

import (
	"image"
	"strings"

	"qrstudio/internal/common"
	"qrstudio/internal/domain/render"
)

// InputType selects the validation rule and payload formatting
type InputType string

const (
	InputURL   InputType = "url"
	InputPhone InputType = "phone"
	InputText  InputType = "text"
)

// ParseInputType accepts "url", "phone" or "text" in any case
func ParseInputType(s string) (InputType, bool) {
	switch kind := InputType(strings.ToLower(strings.TrimSpace(s))); kind {
	case InputURL, InputPhone, InputText:
		return kind, true
	}
	return "", false
}

// State of the debounced generator
type State int

const (
	StateIdle State = iota
	StatePendingTimer
	StateGenerating
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePendingTimer:
		return "pending"
	case StateGenerating:
		return "generating"
	default:
		return "unknown"
	}
}

// Settings is the full user-editable generator input
type Settings struct {
	Input       string          `json:"input"`
	Type        InputType       `json:"type"`
	Foreground  string          `json:"foreground"`
	Background  string          `json:"background"`
	Transparent bool            `json:"transparent"`
	Shape       render.ShapeKey `json:"shape"`
	BoxSize     int             `json:"box_size"`
	Border      int             `json:"border"`
	Level       render.ECLevel  `json:"level"`
	Gradient    *GradientConfig `json:"gradient,omitempty"`
}

// GradientConfig is set when a gradient preset is selected
type GradientConfig struct {
	Mask   render.MaskKind     `json:"mask"`
	Colors render.GradientPair `json:"colors"`
}

// Signature captures every parameter that affects the full-resolution output.
// It is comparable, so equal signatures can be detected with ==.
type Signature struct {
	Input        string
	Type         InputType
	Foreground   string
	Background   string
	Transparent  bool
	Shape        render.ShapeKey
	BoxSize      int
	Border       int
	Level        render.ECLevel
	GradientMask render.MaskKind
	Gradient     render.GradientPair
}

// Signature derives the change-detection key for s
func (s Settings) Signature() Signature {
	sig := Signature{
		Input:       s.Input,
		Type:        s.Type,
		Foreground:  s.Foreground,
		Background:  s.Background,
		Transparent: s.Transparent,
		Shape:       s.Shape,
		BoxSize:     s.BoxSize,
		Border:      s.Border,
		Level:       s.Level,
	}
	if s.Gradient != nil {
		sig.GradientMask = s.Gradient.Mask
		sig.Gradient = s.Gradient.Colors
	}
	return sig
}

// ColorSpec maps settings onto the renderer's color model
func (s Settings) ColorSpec() render.ColorSpec {
	spec := render.ColorSpec{
		Mask:        render.MaskSolid,
		Foreground:  s.Foreground,
		Background:  s.Background,
		Transparent: s.Transparent,
	}
	if s.Gradient != nil && s.Gradient.Mask.IsGradient() {
		spec.Mask = s.Gradient.Mask
		spec.Gradient = s.Gradient.Colors
	}
	return spec
}

// Validator checks input and formats it into the encoded payload
type Validator interface {
	Validate(input string, kind InputType) error
	Payload(input string, kind InputType) (string, error)
}

// Listener receives generator results. Calls arrive on the event loop goroutine.
type Listener interface {
	OnGenerationState(state State)
	OnGenerationComplete(img *image.NRGBA, sig Signature)
	OnGenerationFailed(reason error)
}

// DefaultSettings is the state of a fresh session
func DefaultSettings() Settings {
	return Settings{
		Type:        InputURL,
		Foreground:  common.DefaultForeground,
		Background:  common.DefaultBackground,
		Transparent: true,
		Shape:       render.ShapeSquare,
		BoxSize:     common.DefaultBoxSize,
		Border:      common.DefaultBorder,
		Level:       render.ECMedium,
	}
}

package wheel

// RGBA is a render color as stored in the config document.
type RGBA [4]int

// Palette carries the colors consumed by the renderer. The core passes these
// through untouched.
type Palette struct {
	Segment RGBA `json:"segment"`
	Hover   RGBA `json:"hover"`
	Back    RGBA `json:"back"`
	Border  RGBA `json:"border"`
	Text    RGBA `json:"text"`
}

// Settings holds wheel geometry, dwell timing, and the activation key pair.
// Loaded once at startup and mutated only through an explicit settings apply.
type Settings struct {
	WheelRadius         int       `json:"wheel_radius"`
	InnerRadius         int       `json:"inner_radius"`
	DwellMs             int       `json:"folder_dwell_ms"`
	AutoContinueExtraMs int       `json:"auto_continue_extra_ms"`
	ActivationKeys      [2]string `json:"activation_keys"`
	FontSize            int       `json:"font_size"`
	Colors              Palette   `json:"colors"`
}

// DefaultSettings mirrors the values the original shipped with.
func DefaultSettings() Settings {
	return Settings{
		WheelRadius:         180,
		InnerRadius:         50,
		DwellMs:             400,
		AutoContinueExtraMs: 200,
		ActivationKeys:      [2]string{"super", "alt"},
		FontSize:            9,
		Colors: Palette{
			Segment: RGBA{50, 50, 55, 200},
			Hover:   RGBA{80, 120, 200, 200},
			Back:    RGBA{90, 60, 60, 200},
			Border:  RGBA{100, 100, 110, 180},
			Text:    RGBA{220, 220, 220, 255},
		},
	}
}

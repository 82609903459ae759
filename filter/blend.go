package filter

// BlendMode selects a compositing operator or blend mode.
//
// The ordering follows the Porter-Duff operators first and the W3C
// Compositing and Blending Level 1 modes after them.
type BlendMode uint8

const (
	// Porter-Duff modes (standard compositing operators)
	BlendClear           BlendMode = iota // Result: 0 (clear destination)
	BlendSource                           // Result: S (replace with source)
	BlendDestination                      // Result: D (keep destination)
	BlendSourceOver                       // Result: S + D*(1-Sa) [default]
	BlendDestinationOver                  // Result: S*(1-Da) + D
	BlendSourceIn                         // Result: S*Da
	BlendDestinationIn                    // Result: D*Sa
	BlendSourceOut                        // Result: S*(1-Da)
	BlendDestinationOut                   // Result: D*(1-Sa)
	BlendSourceAtop                       // Result: S*Da + D*(1-Sa)
	BlendDestinationAtop                  // Result: S*(1-Da) + D*Sa
	BlendXor                              // Result: S*(1-Da) + D*(1-Sa)
	BlendPlus                             // Result: S + D (clamped)
	BlendModulate                         // Result: S*D

	// Separable blend modes
	BlendMultiply   // S * D
	BlendScreen     // 1 - (1-S)*(1-D)
	BlendOverlay    // HardLight with swapped layers
	BlendDarken     // min(S, D)
	BlendLighten    // max(S, D)
	BlendColorDodge // D / (1 - S)
	BlendColorBurn  // 1 - (1 - D) / S
	BlendHardLight  // Multiply or Screen depending on source
	BlendSoftLight  // Soft version of HardLight
	BlendDifference // |S - D|
	BlendExclusion  // S + D - 2*S*D

	// Non-separable blend modes
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
)

var blendModeNames = [...]string{
	BlendClear:           "Clear",
	BlendSource:          "Source",
	BlendDestination:     "Destination",
	BlendSourceOver:      "SourceOver",
	BlendDestinationOver: "DestinationOver",
	BlendSourceIn:        "SourceIn",
	BlendDestinationIn:   "DestinationIn",
	BlendSourceOut:       "SourceOut",
	BlendDestinationOut:  "DestinationOut",
	BlendSourceAtop:      "SourceAtop",
	BlendDestinationAtop: "DestinationAtop",
	BlendXor:             "Xor",
	BlendPlus:            "Plus",
	BlendModulate:        "Modulate",
	BlendMultiply:        "Multiply",
	BlendScreen:          "Screen",
	BlendOverlay:         "Overlay",
	BlendDarken:          "Darken",
	BlendLighten:         "Lighten",
	BlendColorDodge:      "ColorDodge",
	BlendColorBurn:       "ColorBurn",
	BlendHardLight:       "HardLight",
	BlendSoftLight:       "SoftLight",
	BlendDifference:      "Difference",
	BlendExclusion:       "Exclusion",
	BlendHue:             "Hue",
	BlendSaturation:      "Saturation",
	BlendColor:           "Color",
	BlendLuminosity:      "Luminosity",
}

// String returns the name of the blend mode.
func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return "Unknown"
}

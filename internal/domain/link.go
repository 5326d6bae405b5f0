package domain

// LinkEntry is one row of a block's link list.
//
// It is NOT tied to the editor, Redis or any display surface.
// The same structure flows through edit sessions, persisted
// configuration and rendering.
type LinkEntry struct {
	// Title is the display text. Required whenever the row carries a url.
	Title string `json:"title"`

	// URL is the raw user input, not yet resolved.
	// Example: https://docs.example.com, /node/1, <front>
	URL string `json:"url"`

	// Weight determines display order; lower sorts first.
	// Values are kept as authored, not renumbered.
	Weight int `json:"weight"`

	// Enabled controls whether the row is shown at render time.
	// Always true for unlocked blocks; user-toggled for locked blocks.
	Enabled bool `json:"enabled"`
}

// TargetKind discriminates the Target variant.
type TargetKind int

const (
	// TargetExternal is an absolute URI rendered as-is.
	TargetExternal TargetKind = iota
	// TargetRoute is an internal named route (bracket token with brackets stripped).
	TargetRoute
	// TargetUserPath is a literal user-supplied path, query or fragment.
	TargetUserPath
)

func (k TargetKind) String() string {
	switch k {
	case TargetExternal:
		return "external"
	case TargetRoute:
		return "route"
	case TargetUserPath:
		return "user_path"
	default:
		return "unknown"
	}
}

// MarshalText makes TargetKind render as its name in JSON payloads.
func (k TargetKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Target is the resolved destination of an accepted url.
type Target struct {
	Kind TargetKind `json:"kind"`

	// Value holds the absolute URI, the route name, or the literal path,
	// depending on Kind.
	Value string `json:"value"`
}

// ResolvedLink is the render-time output: display text plus a navigable target.
type ResolvedLink struct {
	Text   string `json:"text"`
	Target Target `json:"target"`
}

package defaults

// Config represents the top-level structure of the defaults file:
// block IDs mapping to their fixed default link rows, in display order.
type Config map[string][]DefaultLink

// DefaultLink is one seeded row of a locked block.
type DefaultLink struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// Package viz renders vectors, trace runs and the catalog in the terminal.
//
//   - [Playground]: Bubble Tea model for driving a vector by hand
//   - [PlotTrace]: asciigraph chart of size and capacity per step
//   - [RenderCatalog]: lipgloss rendering of authors and their books
//   - Theme selection with 3 built-in color schemes
//
// # Key Bindings
//
//	b / f   - Push back / push front
//	p / o   - Pop back / pop front
//	x       - Remove the element under the cursor
//	c       - Clear (capacity is kept)
//	←/→ h/l - Move the cursor
//	r       - Reset to the initial capacity
//	t       - Cycle color themes
//	?       - Show help overlay
package viz

package compiler

import (
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/specialistvlad/lvforge/internal/model"
)

// displayID is the id the lvgl block uses to reference the display stanza.
const displayID = "main_display"

// emitBoilerplate writes the hardware stanzas that precede the lvgl block:
// the esphome header, the display driver placeholder parameterized by the
// display config, and any image resources.
func emitBoilerplate(root *yaml.Node, p *model.Project) {
	esphome := mappingNode()
	put(esphome, "name", strNode("lvgl-display"))
	put(root, "esphome", esphome)

	display := mappingNode()
	// The concrete driver is board-specific; the emitted platform is a
	// placeholder the user swaps for their panel.
	put(display, "platform", strNode("ili9xxx"))
	put(display, "id", strNode(displayID))
	dimensions := mappingNode()
	put(dimensions, "width", intNode(p.Display.Width))
	put(dimensions, "height", intNode(p.Display.Height))
	put(display, "dimensions", dimensions)
	put(display, "auto_clear_enabled", boolNode(false))

	displaySeq := sequenceNode()
	displaySeq.Content = append(displaySeq.Content, display)
	put(root, "display", displaySeq)

	if len(p.Images) > 0 {
		names := make([]string, 0, len(p.Images))
		for name := range p.Images {
			names = append(names, name)
		}
		sort.Strings(names)

		images := sequenceNode()
		for _, name := range names {
			img := mappingNode()
			put(img, "file", strNode(p.Images[name]))
			put(img, "id", strNode(name))
			images.Content = append(images.Content, img)
		}
		put(root, "image", images)
	}
}

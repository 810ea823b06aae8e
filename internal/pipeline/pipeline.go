// Package pipeline runs response text through segmentation and rendering.
package pipeline

import (
	"github.com/mithrel/blockfmt/internal/render"
	"github.com/mithrel/blockfmt/internal/segment"
	"github.com/mithrel/blockfmt/pkg/api"
)

// Process segments text and renders every block with r. A nil r uses the
// default highlight keywords.
func Process(text string, r *render.Renderer) api.Document {
	if r == nil {
		r = render.New(render.NewHighlighter(render.DefaultKeywords...))
	}
	blocks := segment.Segment(text)
	return api.Document{
		Blocks: blocks,
		Units:  r.RenderAll(blocks),
	}
}

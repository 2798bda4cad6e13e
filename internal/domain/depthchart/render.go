package depthchart

import "github.com/valyala/bytebufferpool"

const (
	positionSeparator = " – "
	playerSeparator   = ", "
	lineSeparator     = "\n"
)

// GetFullDepthChart renders one line per non-empty position:
//
//	QB – (#12, Tom Brady), (#11, John Cena)
//
// An empty chart renders as "".
func (c *DepthChart) GetFullDepthChart() string {
	return RenderSnapshot(c.Snapshot())
}

func RenderSnapshot(depths []PositionDepth) string {
	if len(depths) == 0 {
		return ""
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for i, depth := range depths {
		if i > 0 {
			_, _ = buf.WriteString(lineSeparator)
		}
		_, _ = buf.WriteString(depth.Position)
		_, _ = buf.WriteString(positionSeparator)
		for j, p := range depth.Players {
			if j > 0 {
				_, _ = buf.WriteString(playerSeparator)
			}
			_, _ = buf.WriteString(p.String())
		}
	}

	return buf.String()
}

package screens

import (
	"github.com/rook-computer/starfield/internal/render"
	"github.com/rook-computer/starfield/internal/state"
)

// BootScreen is shown until the first starfield is ready, and whenever there
// is no frame to show.
type BootScreen struct{}

func (BootScreen) Draw(r render.Drawer, st state.State) {
	_, h := r.Size()
	switch {
	case st.Phase == state.ERROR:
		r.DrawTextCentered("render failed", render.TextStyle{Size: 40})
		w, _ := r.Size()
		r.DrawText(st.Err, w/2, h/2+60, render.TextStyle{Size: 20, Color: render.Dimmed, Align: render.TextAlignCenter})
	case st.Message != "":
		r.DrawTextCentered(st.Message, render.TextStyle{Size: 40})
	default:
		r.DrawTextCentered("generating starfield", render.TextStyle{Size: 40})
	}

	if st.Network.URL != "" {
		w, _ := r.Size()
		r.DrawText(st.Network.URL, w/2, h-80, render.TextStyle{Size: 24, Color: render.Dimmed, Align: render.TextAlignCenter})
	}
}

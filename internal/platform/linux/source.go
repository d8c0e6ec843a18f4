//go:build linux

package linux

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"
	ps "github.com/mitchellh/go-ps"

	"github.com/mj1618/winlist/internal/decode"
	"github.com/mj1618/winlist/internal/model"
	"github.com/mj1618/winlist/internal/platform"
)

// Source implements platform.Source against the X server named by $DISPLAY.
type Source struct{}

// NewSource creates a new X11 window source.
func NewSource() *Source {
	return &Source{}
}

// Snapshot opens a connection and captures the client stacking order. The
// connection stays open until Release.
func (s *Source) Snapshot() (platform.Snapshot, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("%w: connect to X server: %w", platform.ErrUnavailable, err)
	}

	clients, err := ewmh.ClientListStackingGet(xu)
	if err != nil {
		clients, err = ewmh.ClientListGet(xu)
	}
	if err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("%w: read EWMH client list: %w", platform.ErrUnavailable, err)
	}

	current, err := ewmh.CurrentDesktopGet(xu)
	if err != nil {
		current = sticky
	}

	visible := make([]xproto.Window, 0, len(clients))
	for _, win := range frontToBack(clients) {
		types, _ := ewmh.WmWindowTypeGet(xu, win)
		states, _ := ewmh.WmStateGet(xu, win)
		if excluded(types, states) {
			continue
		}
		if current != sticky {
			if desktop, err := ewmh.WmDesktopGet(xu, win); err == nil && !onCurrentDesktop(desktop, current) {
				continue
			}
		}
		visible = append(visible, win)
	}
	return &snapshot{xu: xu, windows: visible}, nil
}

type snapshot struct {
	xu      *xgbutil.XUtil
	windows []xproto.Window
}

func (s *snapshot) Count() int { return len(s.windows) }

func (s *snapshot) At(i int) platform.Element {
	if s.xu == nil {
		panic("linux: At called after Release")
	}
	if i < 0 || i >= len(s.windows) {
		panic(fmt.Sprintf("linux: element %d out of range [0,%d)", i, len(s.windows)))
	}
	return element{xu: s.xu, win: s.windows[i]}
}

func (s *snapshot) Release() {
	if s.xu == nil {
		return
	}
	s.xu.Conn().Close()
	s.xu = nil
}

type element struct {
	xu  *xgbutil.XUtil
	win xproto.Window
}

// Describe reads the window's properties and encodes them. A window that
// was destroyed after the snapshot has no geometry and is not described.
func (e element) Describe() (string, bool) {
	geom, err := xwindow.New(e.xu, e.win).DecorGeometry()
	if err != nil {
		return "", false
	}

	types, _ := ewmh.WmWindowTypeGet(e.xu, e.win)
	states, _ := ewmh.WmStateGet(e.xu, e.win)

	w := model.Window{
		Number: int(e.win),
		Name:   e.title(),
		Bounds: model.Bounds{
			X:      geom.X(),
			Y:      geom.Y(),
			Width:  geom.Width(),
			Height: geom.Height(),
		},
		Layer:        layerFor(types, states),
		Alpha:        1,
		IsOnscreen:   1,
		MemoryUsage:  memoryEstimate(geom.Width(), geom.Height()),
		SharingState: sharingReadOnly,
		StoreType:    storeBuffered,
	}
	if v, err := xprop.PropValNum(xprop.GetProperty(e.xu, e.win, "_NET_WM_WINDOW_OPACITY")); err == nil {
		w.Alpha = opacity(v)
	}
	if pid, err := ewmh.WmPidGet(e.xu, e.win); err == nil {
		w.OwnerPID = int(pid)
	}
	w.OwnerName = e.owner(w.OwnerPID)

	text, err := decode.Encode(w)
	if err != nil {
		return "", false
	}
	return text, true
}

func (e element) title() string {
	if name, err := ewmh.WmNameGet(e.xu, e.win); err == nil && name != "" {
		return name
	}
	name, _ := icccm.WmNameGet(e.xu, e.win)
	return name
}

// owner names the owning process, falling back to the WM_CLASS class.
func (e element) owner(pid int) string {
	if pid > 0 {
		if p, err := ps.FindProcess(pid); err == nil && p != nil {
			return filepath.Base(p.Executable())
		}
	}
	if class, err := icccm.WmClassGet(e.xu, e.win); err == nil && class != nil {
		if class.Class != "" {
			return class.Class
		}
		return class.Instance
	}
	return ""
}

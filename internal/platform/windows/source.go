//go:build windows

package windows

import (
	"fmt"
	"sync"
	"unsafe"

	ps "github.com/mitchellh/go-ps"
	"golang.org/x/sys/windows"

	"github.com/mj1618/winlist/internal/decode"
	"github.com/mj1618/winlist/internal/model"
	"github.com/mj1618/winlist/internal/platform"
)

const gwlExStyle = -20

var (
	user32                         = windows.NewLazySystemDLL("user32.dll")
	procGetWindowRect              = user32.NewProc("GetWindowRect")
	procGetWindowTextW             = user32.NewProc("GetWindowTextW")
	procGetWindowLongW             = user32.NewProc("GetWindowLongW")
	procIsIconic                   = user32.NewProc("IsIconic")
	procGetLayeredWindowAttributes = user32.NewProc("GetLayeredWindowAttributes")
)

type rect struct {
	Left, Top, Right, Bottom int32
}

// EnumWindows callbacks cannot be freed, so one is shared by every snapshot.
var (
	enumCallback = windows.NewCallback(enumWindowsProc)
	foundWindows []windows.HWND
	enumMu       sync.Mutex
)

func enumWindowsProc(hwnd windows.HWND, _ uintptr) uintptr {
	if windows.IsWindowVisible(hwnd) && !isIconic(hwnd) {
		foundWindows = append(foundWindows, hwnd)
	}
	return 1 // continue enumeration
}

// Source implements platform.Source with EnumWindows.
type Source struct{}

// NewSource creates a new Win32 window source.
func NewSource() *Source {
	return &Source{}
}

// Snapshot enumerates visible, non-minimized top-level windows in z-order.
// Windows without area and untitled tool windows are left out.
func (s *Source) Snapshot() (platform.Snapshot, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	foundWindows = nil
	if err := windows.EnumWindows(enumCallback, nil); err != nil {
		return nil, fmt.Errorf("%w: EnumWindows: %w", platform.ErrUnavailable, err)
	}

	return &snapshot{windows: listedWindows(foundWindows, readInfo)}, nil
}

func readInfo(hwnd windows.HWND) windowInfo {
	var r rect
	if !windowRect(hwnd, &r) {
		return windowInfo{}
	}
	return windowInfo{
		exStyle: windowLong(hwnd, gwlExStyle),
		title:   windowText(hwnd),
		width:   int(r.Right - r.Left),
		height:  int(r.Bottom - r.Top),
		ok:      true,
	}
}

// snapshot holds window handles, which need no release; Release only marks
// the snapshot as spent.
type snapshot struct {
	windows  []windows.HWND
	released bool
}

func (s *snapshot) Count() int { return len(s.windows) }

func (s *snapshot) At(i int) platform.Element {
	if s.released {
		panic("windows: At called after Release")
	}
	if i < 0 || i >= len(s.windows) {
		panic(fmt.Sprintf("windows: element %d out of range [0,%d)", i, len(s.windows)))
	}
	return element{hwnd: s.windows[i]}
}

func (s *snapshot) Release() { s.released = true }

type element struct {
	hwnd windows.HWND
}

// Describe reads the window's attributes and encodes them. A window closed
// after the snapshot is not described.
func (e element) Describe() (string, bool) {
	var r rect
	if !windowRect(e.hwnd, &r) {
		return "", false
	}
	width, height := int(r.Right-r.Left), int(r.Bottom-r.Top)

	exStyle := windowLong(e.hwnd, gwlExStyle)
	title := windowText(e.hwnd)

	var pid uint32
	windows.GetWindowThreadProcessId(e.hwnd, &pid)

	w := model.Window{
		Number:       int(uint32(uintptr(e.hwnd))),
		Name:         title,
		OwnerPID:     int(pid),
		OwnerName:    ownerName(int(pid)),
		Bounds:       model.Bounds{X: int(r.Left), Y: int(r.Top), Width: width, Height: height},
		Layer:        layerFor(exStyle),
		Alpha:        windowAlpha(e.hwnd, exStyle),
		IsOnscreen:   1,
		MemoryUsage:  memoryEstimate(width, height),
		SharingState: sharingReadOnly,
		StoreType:    storeBuffered,
	}

	text, err := decode.Encode(w)
	if err != nil {
		return "", false
	}
	return text, true
}

func windowRect(hwnd windows.HWND, r *rect) bool {
	ok, _, _ := procGetWindowRect.Call(uintptr(hwnd), uintptr(unsafe.Pointer(r)))
	return ok != 0
}

func isIconic(hwnd windows.HWND) bool {
	ret, _, _ := procIsIconic.Call(uintptr(hwnd))
	return ret != 0
}

func windowLong(hwnd windows.HWND, index int32) uint32 {
	ret, _, _ := procGetWindowLongW.Call(uintptr(hwnd), uintptr(index))
	return uint32(ret)
}

func windowText(hwnd windows.HWND) string {
	buf := make([]uint16, 512)
	n, _, _ := procGetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

func windowAlpha(hwnd windows.HWND, exStyle uint32) float64 {
	var (
		key   uint32
		alpha byte
		flags uint32
	)
	ret, _, _ := procGetLayeredWindowAttributes.Call(
		uintptr(hwnd),
		uintptr(unsafe.Pointer(&key)),
		uintptr(unsafe.Pointer(&alpha)),
		uintptr(unsafe.Pointer(&flags)),
	)
	if ret == 0 {
		return 1
	}
	return alphaFor(exStyle, alpha, flags)
}

func ownerName(pid int) string {
	if pid <= 0 {
		return ""
	}
	p, err := ps.FindProcess(pid)
	if err != nil || p == nil {
		return ""
	}
	return appName(p.Executable())
}

//go:build darwin && cgo

package darwin

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>
#include <CoreFoundation/CoreFoundation.h>
#include <stdlib.h>
#include <string.h>

// Returns an owned CFArrayRef of window dictionaries, or NULL.
static const void *wl_copy_window_list(void) {
    return CGWindowListCopyWindowInfo(
        kCGWindowListOptionOnScreenOnly | kCGWindowListExcludeDesktopElements,
        kCGNullWindowID);
}

static long wl_array_count(const void *array) {
    return (long)CFArrayGetCount((CFArrayRef)array);
}

// Borrowed; valid while the array is retained.
static const void *wl_array_at(const void *array, long i) {
    return CFArrayGetValueAtIndex((CFArrayRef)array, (CFIndex)i);
}

// Returns a malloc'd UTF-8 copy of the element's description, or NULL.
// The intermediate CFString is always released.
static char *wl_copy_description(const void *ref) {
    if (ref == NULL) {
        return NULL;
    }
    CFStringRef desc = CFCopyDescription((CFTypeRef)ref);
    if (desc == NULL) {
        return NULL;
    }

    char *out = NULL;
    const char *fast = CFStringGetCStringPtr(desc, kCFStringEncodingUTF8);
    if (fast != NULL) {
        out = strdup(fast);
    } else {
        CFIndex size = CFStringGetMaximumSizeForEncoding(CFStringGetLength(desc), kCFStringEncodingUTF8) + 1;
        out = malloc((size_t)size);
        if (out != NULL && !CFStringGetCString(desc, out, size, kCFStringEncodingUTF8)) {
            free(out);
            out = NULL;
        }
    }
    CFRelease(desc);
    return out;
}

static void wl_release(const void *ref) {
    if (ref != NULL) {
        CFRelease((CFTypeRef)ref);
    }
}
*/
import "C"
import (
	"fmt"
	"unsafe"

	"github.com/mj1618/winlist/internal/platform"
)

// Source implements platform.Source with CGWindowListCopyWindowInfo.
type Source struct{}

// NewSource creates a new macOS window source.
func NewSource() *Source {
	return &Source{}
}

// Snapshot copies the list of on-screen windows, excluding desktop elements.
func (s *Source) Snapshot() (platform.Snapshot, error) {
	ref := C.wl_copy_window_list()
	if ref == nil {
		return nil, fmt.Errorf("%w: CGWindowListCopyWindowInfo returned NULL%s", platform.ErrUnavailable, permissionHint())
	}
	return &snapshot{ref: ref, count: int(C.wl_array_count(ref))}, nil
}

// snapshot owns one CFArrayRef.
type snapshot struct {
	ref   unsafe.Pointer
	count int
}

func (s *snapshot) Count() int { return s.count }

func (s *snapshot) At(i int) platform.Element {
	if s.ref == nil {
		panic("darwin: At called after Release")
	}
	if i < 0 || i >= s.count {
		panic(fmt.Sprintf("darwin: element %d out of range [0,%d)", i, s.count))
	}
	return element{ref: C.wl_array_at(s.ref, C.long(i))}
}

func (s *snapshot) Release() {
	if s.ref == nil {
		return
	}
	C.wl_release(s.ref)
	s.ref = nil
}

// element borrows a CFDictionaryRef from its snapshot.
type element struct {
	ref unsafe.Pointer
}

func (e element) Describe() (string, bool) {
	cstr := C.wl_copy_description(e.ref)
	if cstr == nil {
		return "", false
	}
	defer C.free(unsafe.Pointer(cstr))

	text := C.GoString(cstr)
	return text, text != ""
}

package decode

import (
	"fmt"

	"github.com/mj1618/winlist/internal/model"
	"github.com/mj1618/winlist/internal/plist"
)

// Document builds the canonical description of w using the same keys the
// macOS window server uses. Index is not part of the document.
func Document(w model.Window) plist.Dict {
	d := plist.Dict{
		KeyAlpha: plist.Real(w.Alpha),
		KeyBounds: plist.Dict{
			KeyHeight: plist.Integer(w.Bounds.Height),
			KeyWidth:  plist.Integer(w.Bounds.Width),
			KeyX:      plist.Integer(w.Bounds.X),
			KeyY:      plist.Integer(w.Bounds.Y),
		},
		KeyIsOnscreen:   plist.Integer(w.IsOnscreen),
		KeyLayer:        plist.Integer(w.Layer),
		KeyMemoryUsage:  plist.Integer(w.MemoryUsage),
		KeyNumber:       plist.Integer(w.Number),
		KeyOwnerName:    plist.String(w.OwnerName),
		KeyOwnerPID:     plist.Integer(w.OwnerPID),
		KeySharingState: plist.Integer(w.SharingState),
		KeyStoreType:    plist.Integer(w.StoreType),
	}
	if w.Name != "" {
		d[KeyName] = plist.String(w.Name)
	}
	return d
}

// Encode renders w as an XML property list that Decode accepts. Backends
// without a native description use it to produce their canonical text.
func Encode(w model.Window) (string, error) {
	out, err := plist.Marshal(Document(w))
	if err != nil {
		return "", fmt.Errorf("encode window %d: %w", w.Number, err)
	}
	return string(out), nil
}

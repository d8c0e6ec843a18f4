package platform

// Source produces snapshots of the on-screen windows.
type Source interface {
	// Snapshot asks the window server for all on-screen, non-desktop windows.
	// Ownership of the returned Snapshot passes to the caller, which must
	// call Release exactly once.
	Snapshot() (Snapshot, error)
}

// Snapshot is an ordered, point-in-time collection of native window records.
type Snapshot interface {
	// Count returns the number of elements in the snapshot.
	Count() int

	// At returns the element at index i, 0 <= i < Count(). The element is
	// borrowed: it is only valid until Release. An out-of-range index is a
	// programming error and panics.
	At(i int) Element

	// Release frees the native collection. Calls after the first are no-ops.
	Release()
}

// Element is one borrowed native window record.
type Element interface {
	// Describe returns the element's canonical property-list text. It
	// reports false when the native layer has no description for it.
	Describe() (string, bool)
}

package lca

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrNoManualEntry indicates a name missing from the catalog with no
	// manual entry source configured to fall back on.
	ErrNoManualEntry = constError("nanoparticle not in catalog and no manual entry available")

	// ErrManualEntryFailed wraps any failure reported by a ManualEntry.
	ErrManualEntryFailed = constError("manual entry failed")
)

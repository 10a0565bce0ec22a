package types

// Module is a self-contained unit managing one application's
// configuration. The orchestrator drives modules polymorphically from an
// explicit ordered list; there is no name-based dispatch.
type Module interface {
	// Name returns the module's display name.
	Name() string

	// Folder returns the module's snapshot subdirectory name. Folder
	// names uniquely identify modules within a snapshot.
	Folder() string

	// Detect reports whether the module's live system configuration is
	// discoverable on this machine.
	Detect() bool

	// Gather copies live configuration into dest (the module's snapshot
	// subdirectory), templating absolute paths. Gathering twice with no
	// system-side change produces byte-identical output.
	Gather(dest string) (Outcome, error)

	// Install copies configuration from src (the module's snapshot
	// subdirectory) back into live system locations. Returns
	// OutcomeSkipped when the operator declines an overwrite or an
	// optional program installation.
	Install(src string) (Outcome, error)
}

// Hinter is implemented by modules that want to surface a follow-up
// command after a successful install (e.g. reloading the shell profile).
type Hinter interface {
	PostInstallHint() string
}

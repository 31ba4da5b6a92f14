package zfs

// ResolverState is the lifecycle of the write-log device lookup
type ResolverState int

const (
	// Unresolved means no topology has been read successfully yet
	Unresolved ResolverState = iota
	// Cached means a device was found and is reused for the session
	Cached
	// Absent means the topology was read and has no log device
	Absent
)

func (s ResolverState) String() string {
	switch s {
	case Cached:
		return "cached"
	case Absent:
		return "absent"
	default:
		return "unresolved"
	}
}

// deviceResolver finds the write-log device once per session. Cached and
// Absent are terminal; a failed topology read stays Unresolved so the next
// tick tries again.
type deviceResolver struct {
	state  ResolverState
	device logDevice
}

// resolve returns the device and the state after this call. topology is
// only invoked while Unresolved.
func (r *deviceResolver) resolve(topology func() (string, error)) (logDevice, ResolverState, error) {
	if r.state != Unresolved {
		return r.device, r.state, nil
	}

	text, err := topology()
	if err != nil {
		return logDevice{}, Unresolved, err
	}

	if dev, ok := findLogDevice(text); ok {
		r.device = dev
		r.state = Cached
	} else {
		r.state = Absent
	}
	return r.device, r.state, nil
}

package access

// State tags a permission snapshot. Checks against a snapshot that is
// not Ready return false, so callers can tell "denied" from "unknown
// yet" via IsLoading and avoid enabling controls early.
type State uint8

const (
	StateLoading State = iota
	StateReady
	StateFailed
)

type Snapshot struct {
	state State
	set   PermissionSet
	err   error
}

func NewLoadingSnapshot() Snapshot {
	return Snapshot{state: StateLoading}
}

func NewSnapshot(set PermissionSet) Snapshot {
	return Snapshot{state: StateReady, set: set}
}

func NewFailedSnapshot(err error) Snapshot {
	return Snapshot{state: StateFailed, err: err}
}

func (s Snapshot) IsLoading() bool {
	return s.state == StateLoading
}

func (s Snapshot) Err() error {
	return s.err
}

func (s Snapshot) Has(permission string) bool {
	if s.state != StateReady {
		return false
	}

	return s.set.Has(permission)
}

func (s Snapshot) Can(resource, action string) bool {
	return s.Has(resource + ":" + action)
}

func (s Snapshot) HasAny(permissions ...string) bool {
	if s.state != StateReady {
		return false
	}

	return s.set.HasAny(permissions...)
}

func (s Snapshot) HasAll(permissions ...string) bool {
	if s.state != StateReady {
		return false
	}

	return s.set.HasAll(permissions...)
}

// Convenience disjunctions over known grants. The legacy "projects"
// naming is checked alongside the canonical resource until the schema
// migration completes.

func (s Snapshot) CanManageMembers() bool {
	return s.HasAny("members:manage", "members:edit")
}

func (s Snapshot) CanCreateProjects() bool {
	return s.HasAny(ResourceProjects+":create", "projects:create")
}

func (s Snapshot) CanUploadDocuments() bool {
	return s.HasAny(ResourceDocuments+":create", ResourceAttachment+":create")
}

func (s Snapshot) CanAssignTasks() bool {
	return s.HasAny(ResourceTasks+":assign", ResourceTasks+":edit")
}

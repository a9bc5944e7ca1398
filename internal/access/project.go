package access

// ProjectAccess is the per-project tri-state check. Each operation
// resolves independently: nil means still loading, the three fields
// may become defined in any order.
type ProjectAccess struct {
	View  *bool `json:"view"`
	Edit  *bool `json:"edit"`
	Admin *bool `json:"admin"`
}

func (a ProjectAccess) IsLoading() bool {
	return a.View == nil || a.Edit == nil || a.Admin == nil
}

// CanView returns false while the view check is unresolved.
func (a ProjectAccess) CanView() bool {
	return a.View != nil && *a.View
}

func (a ProjectAccess) CanEdit() bool {
	return a.Edit != nil && *a.Edit
}

func (a ProjectAccess) CanAdmin() bool {
	return a.Admin != nil && *a.Admin
}

func Bool(v bool) *bool {
	return &v
}
